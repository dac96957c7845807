package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"visitreg/internal/infra"
	"visitreg/internal/model"
)

// exportColumns is the shared column order of both export formats.
var exportColumns = []string{"name", "cin", "phone", "reason", "status", "date"}

// ExportService renders an already-filtered visitor list to a byte stream.
// Pure formatting: no state, no side effects. A failure mid-render returns an
// error and no output.
type ExportService interface {
	CSV(visitors []model.Visitor) ([]byte, error)
	PDF(visitors []model.Visitor) ([]byte, error)
}

type exportService struct{}

func NewExportService() ExportService { return &exportService{} }

// CSV writes one RFC-4180 record per visitor with a header row.
func (s *exportService) CSV(visitors []model.Visitor) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("export: write csv header: %w", err)
	}
	for i := range visitors {
		v := &visitors[i]
		record := []string{
			v.Name,
			v.CIN,
			v.Phone,
			v.Reason,
			v.Status,
			v.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) PDF(visitors []model.Visitor) ([]byte, error) {
	var buf bytes.Buffer
	if err := infra.RenderVisitorListPDF(&buf, visitors); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
