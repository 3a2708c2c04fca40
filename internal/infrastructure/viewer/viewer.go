// Package viewer abre documentos con la aplicación predeterminada del
// sistema operativo del usuario.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OSViewer pide al entorno de escritorio abrir un archivo con su manejador
// por defecto. El lanzamiento es fire-and-forget: no se espera a que el
// visor termine ni se vigila su ciclo de vida.
type OSViewer struct{}

// NewOSViewer construye el visor del sistema.
func NewOSViewer() *OSViewer { return &OSViewer{} }

// Open lanza el visor predeterminado para path.
func (v *OSViewer) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("viewer: abrir %s: %w", path, err)
	}
	return nil
}
