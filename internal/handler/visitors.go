package handler

import (
	"net/http"

	"visitreg/internal/apierror"
	"visitreg/internal/dto"
	"visitreg/internal/middleware"
	"visitreg/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VisitorsHandler struct{ svc service.VisitorService }

func NewVisitorsHandler(svc service.VisitorService) *VisitorsHandler {
	return &VisitorsHandler{svc: svc}
}

// Create godoc
// @Summary Register a visitor
// @Tags visitors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateVisitorRequest true "Visitor details"
// @Success 201 {object} dto.VisitorResponse
// @Failure 400 {object} apierror.ValidationError
// @Failure 409 {object} apierror.APIError
// @Router /visitors [post]
func (h *VisitorsHandler) Create(c *gin.Context) {
	var req dto.CreateVisitorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VisitorsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VisitorsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update is a full-field replace, admin only.
func (h *VisitorsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateVisitorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.GetIdentity(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus sets the presence status. Any authenticated identity, any of
// the three values, in any order.
func (h *VisitorsHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete permanently removes a visitor, admin only.
func (h *VisitorsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
