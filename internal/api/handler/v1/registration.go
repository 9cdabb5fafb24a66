package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/api/handler/v1/request"
	"github.com/yizeng/campus-events/internal/api/handler/v1/response"
	"github.com/yizeng/campus-events/internal/domain"
)

type RegistrationService interface {
	Register(ctx context.Context, eventID, studentID uuid.UUID) (domain.Registration, error)
	Cancel(ctx context.Context, registrationID uuid.UUID, reason string) (domain.Registration, error)
	Search(ctx context.Context, term string) ([]domain.RegistrationSearchResult, error)
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register a student for an event
// @Description  Rejections are checked in order: event status, registration deadline, capacity, existing registration.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "event and student"
// @Success      201      {object}  domain.Registration
// @Failure      400      {object}  response.Err  "validation error, event inactive, deadline passed or capacity exceeded"
// @Failure      404      {object}  response.Err  "event or student not found"
// @Failure      409      {object}  response.Err  "already registered"
// @Failure      503      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /registrations [post]
// @Router       /register [post]
func (h *RegistrationHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventID, studentID := req.IDs()
	registration, err := h.svc.Register(ctx.Request.Context(), eventID, studentID)
	if err != nil {
		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// HandleCancelRegistration godoc
// @Summary      Cancel a registration
// @Description  Cancelling twice is rejected with 404.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        registrationID  path      string                             true   "registration ID"  format(uuid)
// @Param        request         body      request.CancelRegistrationRequest  false  "cancellation reason"
// @Success      200             {object}  domain.Registration
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /registrations/{registrationID} [delete]
func (h *RegistrationHandler) HandleCancelRegistration(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "registrationID")
	if !ok {
		return
	}

	var req request.CancelRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.Cancel(ctx.Request.Context(), id, req.SanitizedReason())
	if err != nil {
		err = fmt.Errorf("v1.HandleCancelRegistration -> h.svc.Cancel -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleSearchRegistrations godoc
// @Summary      Search active registrations by student name, email or event title
// @Tags         registrations
// @Produce      json
// @Param        q    query     string  true  "search term"
// @Success      200  {array}   domain.RegistrationSearchResult
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations/search [get]
func (h *RegistrationHandler) HandleSearchRegistrations(ctx *gin.Context) {
	var query request.SearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	query.Normalize()
	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	results, err := h.svc.Search(ctx.Request.Context(), query.Q)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchRegistrations -> h.svc.Search -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, results)
}
