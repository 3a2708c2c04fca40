package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// loginCmd verifica que las credenciales del entorno sirvan contra el
// backend y muestra hasta cuándo es válida la sesión.
func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verifica las credenciales contra el backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("Sesión iniciada correctamente.")
			if expiry, ok := app.client.SessionExpiry(); ok {
				fmt.Println("La sesión expira:", expiry.Local().Format("02/01/2006 15:04"))
			}
			return nil
		},
	}
}
