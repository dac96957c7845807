package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"visitreg/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() []model.Visitor {
	base := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	return []model.Visitor{
		{
			ID: uuid.New(), Name: "Youssef El Amrani", CIN: "AB123456",
			Phone: "0612345678", Reason: "Delivery", Status: model.StatusEntered,
			CreatedAt: base,
		},
		{
			ID: uuid.New(), Name: `Sara "Sam" Alaoui`, CIN: "CD789012",
			Phone: "0699999999", Reason: "Meeting, then lunch", Status: model.StatusExited,
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
}

func TestExportCSV_RoundTrip(t *testing.T) {
	svc := NewExportService()
	visitors := exportFixture()

	out, err := svc.CSV(visitors)
	require.NoError(t, err)

	// Re-parse the output: quoting of commas and quotes must survive.
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one record per visitor")

	assert.Equal(t, []string{"name", "cin", "phone", "reason", "status", "date"}, records[0])
	assert.Equal(t, []string{
		"Youssef El Amrani", "AB123456", "0612345678",
		"Delivery", "Entered", "2024-03-15 09:30:00",
	}, records[1])
	assert.Equal(t, []string{
		`Sara "Sam" Alaoui`, "CD789012", "0699999999",
		"Meeting, then lunch", "Exited", "2024-03-15 11:30:00",
	}, records[2])
}

func TestExportCSV_Empty(t *testing.T) {
	svc := NewExportService()

	out, err := svc.CSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "empty export still carries the header row")
}

func TestExportPDF_ProducesDocument(t *testing.T) {
	svc := NewExportService()

	out, err := svc.PDF(exportFixture())
	require.NoError(t, err)
	require.True(t, len(out) > 4)
	assert.Equal(t, "%PDF", string(out[:4]), "output must be a PDF document")
}

func TestExportPDF_EmptyList(t *testing.T) {
	svc := NewExportService()

	out, err := svc.PDF(nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
