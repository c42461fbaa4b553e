package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"complaintdesk/internal/service"
)

// ComplaintHandler handles complaint endpoints.
type ComplaintHandler struct {
	complaintService service.ComplaintService
	log              *zap.Logger
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(complaintService service.ComplaintService, log *zap.Logger) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService, log: log}
}

// CreateComplaintRequest represents a complaint submission.
type CreateComplaintRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	DepartmentID uint   `json:"department_id" validate:"required"`
	Priority     string `json:"priority"`
	Anonymous    bool   `json:"anonymous"`
}

// CreateComplaintResponse carries the id of a new complaint. For anonymous
// complaints the id is the only way to look the complaint up again.
type CreateComplaintResponse struct {
	Message     string `json:"message"`
	ComplaintID string `json:"complaint_id"`
}

// UpdateStatusRequest represents a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create godoc
// @Summary Submit a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateComplaintRequest true "Complaint"
// @Success 201 {object} CreateComplaintResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, "create complaint", err)
	}

	var req CreateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	complaint, err := h.complaintService.Create(c.Request().Context(), user, service.CreateComplaintInput{
		Title:        req.Title,
		Description:  req.Description,
		DepartmentID: req.DepartmentID,
		Priority:     req.Priority,
		Anonymous:    req.Anonymous,
	})
	if err != nil {
		return respondError(c, h.log, "create complaint", err)
	}

	return c.JSON(http.StatusCreated, CreateComplaintResponse{
		Message:     "Complaint submitted",
		ComplaintID: complaint.ID,
	})
}

// List godoc
// @Summary List complaints visible to the caller
// @Description Admins see every complaint; other users see the complaints they submitted under their name.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ComplaintRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, "list complaints", err)
	}

	records, err := h.complaintService.List(c.Request().Context(), user)
	if err != nil {
		return respondError(c, h.log, "list complaints", err)
	}
	return c.JSON(http.StatusOK, records)
}

// GetAnonymous godoc
// @Summary Look up an anonymous complaint
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} model.ComplaintRecord
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/anonymous/{id} [get]
func (h *ComplaintHandler) GetAnonymous(c echo.Context) error {
	record, err := h.complaintService.GetAnonymous(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, "get anonymous complaint", err)
	}
	return c.JSON(http.StatusOK, record)
}

// UpdateStatus godoc
// @Summary Update complaint status (admin only)
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/{id} [put]
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, "update status", err)
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	if err := h.complaintService.UpdateStatus(c.Request().Context(), user, c.Param("id"), req.Status); err != nil {
		return respondError(c, h.log, "update status", err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Status updated"})
}
