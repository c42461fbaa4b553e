package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"complaintdesk/internal/service"
)

// DepartmentHandler bundles department endpoints.
type DepartmentHandler struct {
	svc service.DepartmentService
	log *zap.Logger
}

// NewDepartmentHandler creates a handler layer.
func NewDepartmentHandler(svc service.DepartmentService, log *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{svc: svc, log: log}
}

// List godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} model.Department
// @Failure 500 {object} errors.ErrorResponse
// @Router /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, "list departments", err)
	}
	return c.JSON(http.StatusOK, departments)
}
