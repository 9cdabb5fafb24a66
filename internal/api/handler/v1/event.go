package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/api/handler/v1/request"
	"github.com/yizeng/campus-events/internal/api/handler/v1/response"
	"github.com/yizeng/campus-events/internal/domain"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.EventDetail, error)
	GetEvent(ctx context.Context, id uuid.UUID) (domain.EventDetail, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	CancelEvent(ctx context.Context, id uuid.UUID) (domain.Event, error)
	GetEventStats(ctx context.Context, id uuid.UUID) (domain.EventStats, error)
}

type EventHandler struct {
	svc EventService
	now func() time.Time
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
		now: time.Now,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Start may be at most one hour in the past. The registration deadline must not be after the start.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "event details"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.ValidateAt(h.now()); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleListEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        college_id  query     string  false  "college ID"  format(uuid)
// @Param        event_type  query     string  false  "event type"  Enums(workshop, hackathon, tech_talk, fest)
// @Param        status      query     string  false  "status, active by default"  Enums(active, cancelled)
// @Success      200         {array}   domain.EventDetail
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	var query request.ListEventsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	events, err := h.svc.ListEvents(ctx.Request.Context(), query.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event with registration and attendance counts
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "event ID"  format(uuid)
// @Success      200      {object}  domain.EventDetail
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "eventID")
	if !ok {
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Replace the mutable fields of an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      string                      true  "event ID"  format(uuid)
// @Param        request  body      request.UpdateEventRequest  true  "event details"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "eventID")
	if !ok {
		return
	}

	var req request.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.ValidateAt(h.now()); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), req.ToDomain(id))
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCancelEvent godoc
// @Summary      Cancel an active event
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "event ID"  format(uuid)
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleCancelEvent(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "eventID")
	if !ok {
		return
	}

	event, err := h.svc.CancelEvent(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleCancelEvent -> h.svc.CancelEvent -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleGetEventStats godoc
// @Summary      Get registration, attendance and feedback statistics of an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      string  true  "event ID"  format(uuid)
// @Success      200      {object}  domain.EventStats
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/stats [get]
func (h *EventHandler) HandleGetEventStats(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "eventID")
	if !ok {
		return
	}

	stats, err := h.svc.GetEventStats(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEventStats -> h.svc.GetEventStats -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
