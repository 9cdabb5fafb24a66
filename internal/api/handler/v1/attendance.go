package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yizeng/campus-events/internal/api/handler/v1/request"
	"github.com/yizeng/campus-events/internal/api/handler/v1/response"
	"github.com/yizeng/campus-events/internal/domain"
)

type AttendanceService interface {
	MarkAttendance(ctx context.Context, registrationID uuid.UUID, method domain.CheckInMethod) (domain.Attendance, error)
	SubmitFeedback(ctx context.Context, attendanceID uuid.UUID, rating int, comment string) (domain.Attendance, error)
}

type AttendanceHandler struct {
	svc AttendanceService
}

func NewAttendanceHandler(svc AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		svc: svc,
	}
}

// HandleMarkAttendance godoc
// @Summary      Check a registered student in
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request  body      request.AttendanceRequest  true  "registration and check-in method"
// @Success      201      {object}  domain.Attendance
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err  "registration not found or cancelled"
// @Failure      409      {object}  response.Err  "already checked in"
// @Failure      500      {object}  response.Err
// @Router       /attendance [post]
func (h *AttendanceHandler) HandleMarkAttendance(ctx *gin.Context) {
	var req request.AttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registrationID, method := req.ToDomain()
	attendance, err := h.svc.MarkAttendance(ctx.Request.Context(), registrationID, method)
	if err != nil {
		err = fmt.Errorf("v1.HandleMarkAttendance -> h.svc.MarkAttendance -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusCreated, attendance)
}

// HandleSubmitFeedback godoc
// @Summary      Rate an attended event
// @Description  A later submission overwrites the earlier rating and comment.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request  body      request.FeedbackRequest  true  "rating 1 to 5 and optional comment"
// @Success      200      {object}  domain.Attendance
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /feedback [post]
func (h *AttendanceHandler) HandleSubmitFeedback(ctx *gin.Context) {
	var req request.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	attendanceID, rating, comment := req.ToDomain()
	attendance, err := h.svc.SubmitFeedback(ctx.Request.Context(), attendanceID, rating, comment)
	if err != nil {
		err = fmt.Errorf("v1.HandleSubmitFeedback -> h.svc.SubmitFeedback -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, attendance)
}
