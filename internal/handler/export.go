package handler

import (
	"net/http"
	"time"

	"visitreg/internal/apierror"
	"visitreg/internal/dto"
	"visitreg/internal/repository"
	"visitreg/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams the filtered visitor list as CSV or PDF. It reads
// models straight from the repository so the export service receives the raw
// rows rather than response DTOs.
type ExportHandler struct {
	visitors repository.VisitorRepository
	export   service.ExportService
}

func NewExportHandler(visitors repository.VisitorRepository, export service.ExportService) *ExportHandler {
	return &ExportHandler{visitors: visitors, export: export}
}

// Export godoc
// @Summary Export the filtered visitor history
// @Tags stats
// @Security BearerAuth
// @Param format     query string true  "csv | pdf"
// @Param status     query string false "Exact status match"
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date   query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param search     query string false "Case-insensitive substring over name or cin"
// @Produce octet-stream
// @Success 200
// @Failure 400 {object} apierror.APIError
// @Router /visitor-history/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "pdf" {
		c.JSON(http.StatusBadRequest, apierror.New("format must be csv or pdf"))
		return
	}

	var filter dto.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	rows, err := h.visitors.History(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	stamp := time.Now().Format("2006-01-02")
	switch format {
	case "csv":
		data, err := h.export.CSV(rows)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="visitors_`+stamp+`.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := h.export.PDF(rows)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="visitors_`+stamp+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
