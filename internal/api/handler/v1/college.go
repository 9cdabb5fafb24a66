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

type CollegeService interface {
	CreateCollege(ctx context.Context, college domain.College) (domain.College, error)
	ListColleges(ctx context.Context) ([]domain.CollegeSummary, error)
	GetCollege(ctx context.Context, id uuid.UUID) (domain.CollegeSummary, error)
	ListCollegeEvents(ctx context.Context, id uuid.UUID) ([]domain.EventDetail, error)
}

type CollegeHandler struct {
	svc CollegeService
}

func NewCollegeHandler(svc CollegeService) *CollegeHandler {
	return &CollegeHandler{
		svc: svc,
	}
}

// HandleCreateCollege godoc
// @Summary      Create a college
// @Tags         colleges
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCollegeRequest  true  "college details"
// @Success      201      {object}  domain.College
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /colleges [post]
func (h *CollegeHandler) HandleCreateCollege(ctx *gin.Context) {
	var req request.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	college, err := h.svc.CreateCollege(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCollege -> h.svc.CreateCollege -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusCreated, college)
}

// HandleListColleges godoc
// @Summary      List colleges with event and student counts
// @Tags         colleges
// @Produce      json
// @Success      200  {array}   domain.CollegeSummary
// @Failure      500  {object}  response.Err
// @Router       /colleges [get]
func (h *CollegeHandler) HandleListColleges(ctx *gin.Context) {
	colleges, err := h.svc.ListColleges(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListColleges -> h.svc.ListColleges -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, colleges)
}

// HandleGetCollege godoc
// @Summary      Get a college
// @Tags         colleges
// @Produce      json
// @Param        collegeID  path      string  true  "college ID"  format(uuid)
// @Success      200        {object}  domain.CollegeSummary
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /colleges/{collegeID} [get]
func (h *CollegeHandler) HandleGetCollege(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "collegeID")
	if !ok {
		return
	}

	college, err := h.svc.GetCollege(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetCollege -> h.svc.GetCollege -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, college)
}

// HandleListCollegeEvents godoc
// @Summary      List the active events of a college
// @Tags         colleges
// @Produce      json
// @Param        collegeID  path      string  true  "college ID"  format(uuid)
// @Success      200        {array}   domain.EventDetail
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /colleges/{collegeID}/events [get]
func (h *CollegeHandler) HandleListCollegeEvents(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "collegeID")
	if !ok {
		return
	}

	events, err := h.svc.ListCollegeEvents(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCollegeEvents -> h.svc.ListCollegeEvents -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}
