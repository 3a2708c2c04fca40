// Package reports consulta los reportes del backend y los convierte en
// documentos exportables (PDF apaisado y hoja de cálculo).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/internal/domain/entity"
	"github.com/Wayams/comite-agua/internal/infrastructure/excel"
	"github.com/Wayams/comite-agua/pkg/logger"
)

// Títulos de los reportes; aparecen en el documento y en el nombre del
// archivo generado.
const (
	TitleMorosos         = "Morosos (Más de 35 días)"
	TitleIngresos        = "Ingresos por Mes"
	TitlePagosPorUsuario = "Detalle de Pagos por Usuario"
)

// Service orquesta la consulta y exportación de reportes. Las filas se
// usan tal como llegan del backend: sin ordenar, filtrar ni deduplicar.
type Service struct {
	api   BackendAPI
	pdf   PDFGenerator
	excel SpreadsheetExporter
	log   *logger.Logger
	now   func() time.Time
}

// NewService construye el caso de uso de reportes.
func NewService(backend BackendAPI, pdf PDFGenerator, spreadsheet SpreadsheetExporter, log *logger.Logger) *Service {
	return &Service{api: backend, pdf: pdf, excel: spreadsheet, log: log, now: time.Now}
}

// Morosos consulta los suscriptores con más de 35 días sin pagar.
func (s *Service) Morosos(ctx context.Context) (*entity.ReportDataset, error) {
	result, err := s.api.MorososReport(ctx)
	if err != nil {
		return nil, err
	}
	return s.dataset(TitleMorosos, result.Headers, result.Rows)
}

// Ingresos consulta los ingresos agrupados por mes de pago.
func (s *Service) Ingresos(ctx context.Context) (*entity.ReportDataset, error) {
	result, err := s.api.IngresosReport(ctx)
	if err != nil {
		return nil, err
	}
	return s.dataset(TitleIngresos, result.Headers, result.Rows)
}

// PagosPorUsuario consulta el detalle de todos los pagos por suscriptor.
func (s *Service) PagosPorUsuario(ctx context.Context) (*entity.ReportDataset, error) {
	result, err := s.api.PagosUsuarioReport(ctx)
	if err != nil {
		return nil, err
	}
	return s.dataset(TitlePagosPorUsuario, result.Headers, result.Rows)
}

func (s *Service) dataset(title string, headers []string, rows [][]any) (*entity.ReportDataset, error) {
	ds := &entity.ReportDataset{Title: title, Headers: headers, Rows: rows}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// ExportPDF genera el PDF del reporte consultado. Sin datos no hay nada
// que exportar.
func (s *Service) ExportPDF(dataset *entity.ReportDataset) (string, error) {
	if len(dataset.Rows) == 0 {
		return "", fmt.Errorf("%w: no hay datos para exportar, genere un reporte primero", domain.ErrInvalidInput)
	}
	path, err := s.pdf.Generate(dataset)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("ruta", path).Str("reporte", dataset.Title).Msg("reporte PDF generado")
	return path, nil
}

// ExportExcel escribe el reporte como .xlsx en el destino elegido por el
// usuario.
func (s *Service) ExportExcel(dataset *entity.ReportDataset, destPath string) error {
	if len(dataset.Rows) == 0 {
		return fmt.Errorf("%w: no hay datos para exportar, genere un reporte primero", domain.ErrInvalidInput)
	}
	if destPath == "" {
		return fmt.Errorf("%w: debe indicar el archivo de destino", domain.ErrInvalidInput)
	}
	if err := s.excel.Export(dataset, destPath); err != nil {
		return err
	}
	s.log.Info().Str("ruta", destPath).Str("reporte", dataset.Title).Msg("reporte exportado a Excel")
	return nil
}

// DefaultExcelFilename es el nombre sugerido para el diálogo de guardado.
func (s *Service) DefaultExcelFilename(dataset *entity.ReportDataset) string {
	return excel.DefaultFilename(dataset.Title, s.now())
}
