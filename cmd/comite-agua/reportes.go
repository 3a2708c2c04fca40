package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Wayams/comite-agua/internal/domain/entity"
)

func reportesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reportes",
		Short: "Reportes de la oficina: morosos, ingresos y detalle de pagos",
	}

	cmd.AddCommand(reporteCmd("morosos", "Suscriptores con más de 35 días sin pagar",
		func(ctx context.Context, a *app) (*entity.ReportDataset, error) { return a.reportes.Morosos(ctx) }))
	cmd.AddCommand(reporteCmd("ingresos", "Ingresos agrupados por mes",
		func(ctx context.Context, a *app) (*entity.ReportDataset, error) { return a.reportes.Ingresos(ctx) }))
	cmd.AddCommand(reporteCmd("pagos-usuario", "Detalle de pagos por suscriptor",
		func(ctx context.Context, a *app) (*entity.ReportDataset, error) { return a.reportes.PagosPorUsuario(ctx) }))

	return cmd
}

// reporteCmd arma el subcomando de un reporte: sin banderas imprime la
// tabla en pantalla; con --pdf o --excel exporta el documento.
func reporteCmd(use, short string, fetch func(context.Context, *app) (*entity.ReportDataset, error)) *cobra.Command {
	var (
		toPDF   bool
		toExcel string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			dataset, err := fetch(cmd.Context(), app)
			if err != nil {
				return err
			}

			if toPDF {
				path, err := app.reportes.ExportPDF(dataset)
				if err != nil {
					return err
				}
				fmt.Println("PDF generado:", path)
			}
			if toExcel != "" {
				dest := toExcel
				if info, err := os.Stat(dest); err == nil && info.IsDir() {
					dest = dest + string(os.PathSeparator) + app.reportes.DefaultExcelFilename(dataset)
				}
				if err := app.reportes.ExportExcel(dataset, dest); err != nil {
					return err
				}
				fmt.Println("Excel generado:", dest)
			}
			if toPDF || toExcel != "" {
				return nil
			}

			return printDataset(os.Stdout, dataset)
		},
	}

	cmd.Flags().BoolVar(&toPDF, "pdf", false, "exporta el reporte a PDF apaisado")
	cmd.Flags().StringVar(&toExcel, "excel", "", "exporta a .xlsx en la ruta o directorio indicado")
	return cmd
}

// printDataset imprime el reporte como tabla de texto. Las celdas se
// muestran tal como llegan del backend: los montos ya vienen como strings
// "Q 700.00" y el resto (IDs, conteos) no es moneda.
func printDataset(out io.Writer, dataset *entity.ReportDataset) error {
	fmt.Fprintln(out, dataset.Title)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, h := range dataset.Headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)

	for _, row := range dataset.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			if cell != nil {
				fmt.Fprint(w, cell)
			}
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d filas\n", len(dataset.Rows))
	return nil
}
