package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/newrayan/leads-service/internal/domain"
	"github.com/newrayan/leads-service/internal/service"
	"github.com/newrayan/leads-service/internal/validation"
	"github.com/newrayan/leads-service/pkg/response"
	"github.com/newrayan/leads-service/pkg/validator"
)

type SubmissionHandler struct {
	service *service.SubmissionService
}

func NewSubmissionHandler(service *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

type MarkContactedRequest struct {
	Sent *bool `json:"sent" validate:"required"`
}

// CreateSubmission godoc
// @Summary Create a contact submission
// @Description Validates and stores a lead-capture form submission, returning the WhatsApp booking link
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body domain.SubmissionCandidate true "Form submission"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ValidationFailedResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c echo.Context) error {
	var candidate domain.SubmissionCandidate
	if err := c.Bind(&candidate); err != nil {
		return response.BadRequest(c, err)
	}

	submission, bookingURL, err := h.service.Create(c.Request().Context(), candidate)
	if err != nil {
		var validationErr *validation.ValidationError
		if errors.As(err, &validationErr) {
			return response.ValidationFailed(c, validationErr.Fields)
		}
		return response.InternalServerError(c, err)
	}

	return response.Created(c, "تم إرسال النموذج بنجاح", map[string]any{
		"id":          submission.ID,
		"whatsappUrl": bookingURL,
	})
}

// ListSubmissions godoc
// @Summary List submissions
// @Description Returns every submission, newest first, for the admin dashboard
// @Tags submissions
// @Produce json
// @Param x-admin-api-key header string true "Admin API key"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/submissions [get]
func (h *SubmissionHandler) ListSubmissions(c echo.Context) error {
	submissions, err := h.service.List(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, submissions)
}

// GetStats godoc
// @Summary Submission statistics
// @Description Returns total, contacted and pending submission counts
// @Tags submissions
// @Produce json
// @Param x-admin-api-key header string true "Admin API key"
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/submissions/stats [get]
func (h *SubmissionHandler) GetStats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, stats)
}

// MarkContacted godoc
// @Summary Set the contacted flag
// @Description Marks a submission contacted (re-stamping contactedAt) or reverts it to pending
// @Tags submissions
// @Accept json
// @Produce json
// @Param x-admin-api-key header string true "Admin API key"
// @Param id path string true "Submission ID"
// @Param body body MarkContactedRequest true "Desired contacted state"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/submissions/{id}/contacted [patch]
func (h *SubmissionHandler) MarkContacted(c echo.Context) error {
	var req MarkContactedRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return validator.HandleBindingError(c, err)
	}

	submission, err := h.service.MarkContacted(c.Request().Context(), c.Param("id"), *req.Sent)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return response.NotFound(c, "submission not found")
		}
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, map[string]any{
		"submission": submission,
	})
}

// OpenWhatsApp godoc
// @Summary Compose the follow-up WhatsApp link
// @Description Builds the operator's wa.me deep link for a submission and marks it contacted
// @Tags submissions
// @Produce json
// @Param x-admin-api-key header string true "Admin API key"
// @Param id path string true "Submission ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/submissions/{id}/whatsapp [post]
func (h *SubmissionHandler) OpenWhatsApp(c echo.Context) error {
	url, submission, err := h.service.OpenWhatsApp(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			return response.NotFound(c, "submission not found")
		}
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, map[string]any{
		"url":        url,
		"submission": submission,
	})
}
