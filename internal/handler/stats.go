package handler

import (
	"net/http"

	"visitreg/internal/apierror"
	"visitreg/internal/dto"
	"visitreg/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Stats godoc
// @Summary Dashboard aggregates
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /visitor-stats [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary Filtered visitor history, newest first
// @Tags stats
// @Security BearerAuth
// @Param status     query string false "Exact status match"
// @Param start_date query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end_date   query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param search     query string false "Case-insensitive substring over name or cin"
// @Produce json
// @Success 200 {array} dto.VisitorResponse
// @Router /visitor-history [get]
func (h *StatsHandler) History(c *gin.Context) {
	var filter dto.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.History(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
