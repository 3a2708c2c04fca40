// Command comite-agua es el cliente de oficina del comité de agua: registra
// pagos, reimprime recibos y exporta reportes desde el backend REST.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Wayams/comite-agua/internal/application/payments"
	"github.com/Wayams/comite-agua/internal/application/reports"
	"github.com/Wayams/comite-agua/internal/infrastructure/api"
	"github.com/Wayams/comite-agua/internal/infrastructure/excel"
	"github.com/Wayams/comite-agua/internal/infrastructure/pdf"
	"github.com/Wayams/comite-agua/internal/infrastructure/viewer"
	"github.com/Wayams/comite-agua/pkg/config"
	"github.com/Wayams/comite-agua/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "comite-agua",
		Short: "Gestión de pagos y reportes del servicio de agua",
		Long: `comite-agua registra pagos de servicio de agua contra el backend del
comité, emite el recibo oficial en PDF y exporta los reportes de la
oficina a PDF apaisado o a hoja de cálculo.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(pagosCmd())
	rootCmd.AddCommand(reportesCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app agrupa los servicios ya cableados que usan los comandos.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	client   *api.Client
	pagos    *payments.Service
	reportes *reports.Service
}

// newApp carga configuración, inicia sesión con las credenciales del
// entorno y construye los casos de uso.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	client := api.NewClient(api.Config{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout(),
		MaxRetries: cfg.API.MaxRetries,
	}, log)

	if cfg.API.User == "" || cfg.API.Password == "" {
		return nil, fmt.Errorf("configure API_USER y API_CLAVE para iniciar sesión")
	}
	if err := client.Login(ctx, cfg.API.User, cfg.API.Password); err != nil {
		return nil, err
	}

	receipts := pdf.NewReceiptGenerator(cfg.Docs.ReceiptsDir, cfg.Docs.OrgName)
	reportsPDF := pdf.NewReportGenerator(cfg.Docs.ReportsDir)

	return &app{
		cfg:      cfg,
		log:      log,
		client:   client,
		pagos:    payments.NewService(client, receipts, viewer.NewOSViewer(), log),
		reportes: reports.NewService(client, reportsPDF, excel.NewExporter(), log),
	}, nil
}
