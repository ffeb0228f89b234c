package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/export"
)

type overviewProvider interface {
	Overview(ctx context.Context, req dto.OverviewRequest) (*dto.OverviewResponse, error)
}

// ExportResult carries rendered export bytes with transport metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the week overview as CSV or PDF.
type ExportService struct {
	overview overviewProvider
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(overview overviewProvider, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		overview: overview,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

var exportHeaders = []string{"Week", "Vak", "Lesstof", "Huiswerk", "Deadlines", "Opmerkingen"}

// Export renders the filtered overview in the requested format.
func (s *ExportService) Export(ctx context.Context, req dto.OverviewRequest, format string) (*ExportResult, error) {
	overview, err := s.overview.Overview(ctx, req)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: exportHeaders}
	for _, week := range overview.Weeks {
		for _, vak := range overview.Subjects {
			data, ok := week.Subjects[vak]
			if !ok {
				continue
			}
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Week":        week.Week.ID.String(),
				"Vak":         vak,
				"Lesstof":     strings.Join(data.Lesstof, "; "),
				"Huiswerk":    strings.Join(data.Huiswerk, "; "),
				"Deadlines":   strings.Join(data.Deadlines, "; "),
				"Opmerkingen": strings.Join(data.Opmerkingen, "; "),
			})
		}
	}

	switch strings.ToLower(format) {
	case "csv", "":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{Content: content, ContentType: "text/csv", Filename: "weekoverzicht.csv"}, nil
	case "pdf":
		content, err := s.pdf.Render(dataset, "Weekoverzicht")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{Content: content, ContentType: "application/pdf", Filename: "weekoverzicht.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}
