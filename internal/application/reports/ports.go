package reports

import (
	"context"

	"github.com/Wayams/comite-agua/internal/domain/entity"
	"github.com/Wayams/comite-agua/internal/infrastructure/api"
)

// BackendAPI es la porción del cliente REST que consumen los reportes.
type BackendAPI interface {
	MorososReport(ctx context.Context) (*api.ReportResult, error)
	IngresosReport(ctx context.Context) (*api.ReportResult, error)
	PagosUsuarioReport(ctx context.Context) (*api.ReportResult, error)
}

// PDFGenerator produce el PDF apaisado de un reporte y devuelve su ruta.
type PDFGenerator interface {
	Generate(dataset *entity.ReportDataset) (string, error)
}

// SpreadsheetExporter escribe el reporte como hoja de cálculo en destPath.
type SpreadsheetExporter interface {
	Export(dataset *entity.ReportDataset, destPath string) error
}
