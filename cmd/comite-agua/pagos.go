package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Wayams/comite-agua/internal/application/payments"
	"github.com/Wayams/comite-agua/internal/domain/entity"
	"github.com/Wayams/comite-agua/internal/domain/format"
)

func pagosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagos",
		Short: "Registro y consulta de pagos de agua",
	}
	cmd.AddCommand(pagosListarCmd())
	cmd.AddCommand(pagosRegistrarCmd())
	cmd.AddCommand(pagosReciboCmd())
	cmd.AddCommand(pagosSuscriptoresCmd())
	cmd.AddCommand(pagosMesesCmd())
	return cmd
}

func pagosListarCmd() *cobra.Command {
	var buscar string

	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista los pagos registrados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			rows, err := app.pagos.List(cmd.Context(), buscar)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSUSCRIPTOR\tPAJA\tFECHA\tMONTO\tMES\tMÉTODO")
			for _, r := range rows {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Subscriber, r.Connection, r.Date, r.Amount, r.Month, r.Method)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&buscar, "buscar", "", "filtra por nombre o número de paja")
	return cmd
}

func pagosRegistrarCmd() *cobra.Command {
	var input payments.RegisterInput

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Registra un pago y emite el recibo en PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			result, err := app.pagos.Register(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("Pago registrado: %s por %s\n",
				entity.ReceiptNumber(result.Payment.ID),
				format.CurrencyOrRaw(result.Payment.Amount))
			fmt.Println("Recibo:", result.Receipt.Path)
			return nil
		},
	}

	cmd.Flags().IntVar(&input.UserID, "usuario", 0, "ID del suscriptor (obligatorio)")
	cmd.Flags().StringVar(&input.Amount, "monto", "", "monto en quetzales, p. ej. 125.00 (obligatorio)")
	cmd.Flags().StringVar(&input.MonthPaid, "mes", "", `mes pagado, p. ej. "Enero 2025" (obligatorio)`)
	cmd.Flags().StringVar(&input.Date, "fecha", time.Now().Format("2006-01-02"), "fecha del pago (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.Method, "metodo", entity.MetodoEfectivo, "método de pago")
	cmd.Flags().StringVar(&input.Note, "observacion", "", "observación opcional")
	_ = cmd.MarkFlagRequired("usuario")
	_ = cmd.MarkFlagRequired("monto")
	_ = cmd.MarkFlagRequired("mes")
	return cmd
}

func pagosReciboCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recibo <id-pago>",
		Short: "Reimprime el recibo de un pago existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id de pago inválido: %q", args[0])
			}

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			path, err := app.pagos.RegenerateReceipt(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Println("Recibo regenerado:", path)
			return nil
		},
	}
}

func pagosSuscriptoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suscriptores",
		Short: "Lista los suscriptores activos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			subscribers, err := app.pagos.ActiveSubscribers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tPAJA\tTELÉFONO")
			for _, s := range subscribers {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.FullName(), s.ConnectionNumber, s.Phone)
			}
			return w.Flush()
		},
	}
}

func pagosMesesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meses",
		Short: "Muestra las etiquetas de mes válidas para --mes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, label := range format.MonthOptions(time.Now()) {
				fmt.Println(label)
			}
			return nil
		},
	}
}
