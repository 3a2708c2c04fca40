package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrDuplicate    = errors.New("ya existe un pago registrado para ese mes")
)

// FormatError indica que un valor no pudo representarse como moneda o fecha.
// Nunca se propaga fuera del motor de documentos: el llamador degrada al
// valor crudo en lugar de abortar el documento completo.
type FormatError struct {
	Value any
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formato: valor no representable: %v", e.Value)
}

// LayoutIOError indica que no se pudo crear el directorio o escribir el
// archivo de un documento PDF. Se reporta al llamador como una única falla.
type LayoutIOError struct {
	Path string
	Err  error
}

func (e *LayoutIOError) Error() string {
	return fmt.Sprintf("documento: escritura de %s: %v", e.Path, e.Err)
}

func (e *LayoutIOError) Unwrap() error { return e.Err }

// ExportTargetError indica que el destino elegido para una exportación es
// inválido o que la escritura falló.
type ExportTargetError struct {
	Path string
	Err  error
}

func (e *ExportTargetError) Error() string {
	return fmt.Sprintf("exportación: destino %s: %v", e.Path, e.Err)
}

func (e *ExportTargetError) Unwrap() error { return e.Err }
