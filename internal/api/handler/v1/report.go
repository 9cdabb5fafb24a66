package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/campus-events/internal/api/handler/v1/request"
	"github.com/yizeng/campus-events/internal/api/handler/v1/response"
	"github.com/yizeng/campus-events/internal/domain"
)

type ReportService interface {
	EventPopularity(ctx context.Context) ([]domain.EventPopularity, error)
	StudentParticipation(ctx context.Context) ([]domain.StudentParticipation, error)
	CollegePerformance(ctx context.Context) ([]domain.CollegePerformance, error)
	SystemOverview(ctx context.Context) (domain.SystemOverview, error)
	EventTypeAnalytics(ctx context.Context) ([]domain.EventTypeAnalytics, error)
	TopActiveStudents(ctx context.Context, limit int) ([]domain.ActiveStudent, error)
	FilteredReport(ctx context.Context, reportType string, filter domain.EventFilter) ([]domain.FilteredEventReport, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleEventPopularity godoc
// @Summary      Rank events by registrations
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.EventPopularity
// @Failure      500  {object}  response.Err
// @Router       /reports/event-popularity [get]
func (h *ReportHandler) HandleEventPopularity(ctx *gin.Context) {
	report, err := h.svc.EventPopularity(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleEventPopularity -> h.svc.EventPopularity -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleStudentParticipation godoc
// @Summary      Participation level of every active student
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.StudentParticipation
// @Failure      500  {object}  response.Err
// @Router       /reports/student-participation [get]
func (h *ReportHandler) HandleStudentParticipation(ctx *gin.Context) {
	report, err := h.svc.StudentParticipation(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleStudentParticipation -> h.svc.StudentParticipation -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleCollegePerformance godoc
// @Summary      Registrations, attendance and ratings per college
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.CollegePerformance
// @Failure      500  {object}  response.Err
// @Router       /reports/college-performance [get]
func (h *ReportHandler) HandleCollegePerformance(ctx *gin.Context) {
	report, err := h.svc.CollegePerformance(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleCollegePerformance -> h.svc.CollegePerformance -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleSystemOverview godoc
// @Summary      System-wide totals
// @Tags         reports
// @Produce      json
// @Success      200  {object}  domain.SystemOverview
// @Failure      500  {object}  response.Err
// @Router       /reports/system-overview [get]
func (h *ReportHandler) HandleSystemOverview(ctx *gin.Context) {
	report, err := h.svc.SystemOverview(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSystemOverview -> h.svc.SystemOverview -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleEventTypeAnalytics godoc
// @Summary      Registrations, attendance and ratings per event type
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.EventTypeAnalytics
// @Failure      500  {object}  response.Err
// @Router       /reports/event-type-analytics [get]
func (h *ReportHandler) HandleEventTypeAnalytics(ctx *gin.Context) {
	report, err := h.svc.EventTypeAnalytics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleEventTypeAnalytics -> h.svc.EventTypeAnalytics -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleTopActiveStudents godoc
// @Summary      Students who attended the most events
// @Tags         reports
// @Produce      json
// @Param        limit  query     int  false  "number of students, 3 by default, at most 50"
// @Success      200    {array}   domain.ActiveStudent
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /reports/top-active-students [get]
func (h *ReportHandler) HandleTopActiveStudents(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("limit must be an integer: %w", err)))
			return
		}
		limit = n
	}

	report, err := h.svc.TopActiveStudents(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleTopActiveStudents -> h.svc.TopActiveStudents -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleFilteredReport godoc
// @Summary      Active events report filtered by college and event type
// @Tags         reports
// @Produce      json
// @Param        college_id  query     string  false  "college ID"  format(uuid)
// @Param        event_type  query     string  false  "event type"  Enums(hackathon, workshop, tech_talk, fest)
// @Param        type        query     string  false  "report type"  Enums(events)
// @Success      200         {array}   domain.FilteredEventReport
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /reports/filter [get]
func (h *ReportHandler) HandleFilteredReport(ctx *gin.Context) {
	var query request.ReportFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	report, err := h.svc.FilteredReport(ctx.Request.Context(), query.ReportType(), query.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleFilteredReport -> h.svc.FilteredReport -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}
