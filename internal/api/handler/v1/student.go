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

type StudentService interface {
	CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	ListStudents(ctx context.Context, collegeID *uuid.UUID) ([]domain.StudentWithCollege, error)
	SearchStudents(ctx context.Context, term string) ([]domain.StudentWithCollege, error)
	FindByEmail(ctx context.Context, email string) (domain.StudentWithCollege, error)
	DeactivateStudent(ctx context.Context, id uuid.UUID) error
	ListRegistrations(ctx context.Context, studentID uuid.UUID) ([]domain.StudentRegistration, error)
	ListAvailableEvents(ctx context.Context, studentID uuid.UUID) ([]domain.AvailableEvent, error)
	ListPendingFeedback(ctx context.Context, studentID uuid.UUID) ([]domain.PendingFeedback, error)
}

type StudentHandler struct {
	svc StudentService
}

func NewStudentHandler(svc StudentService) *StudentHandler {
	return &StudentHandler{
		svc: svc,
	}
}

// HandleCreateStudent godoc
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateStudentRequest  true  "student details"
// @Success      201      {object}  domain.Student
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /students [post]
func (h *StudentHandler) HandleCreateStudent(ctx *gin.Context) {
	var req request.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	student, err := h.svc.CreateStudent(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateStudent -> h.svc.CreateStudent -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// HandleListStudents godoc
// @Summary      List active students
// @Tags         students
// @Produce      json
// @Param        college_id  query     string  false  "college ID"  format(uuid)
// @Success      200         {array}   domain.StudentWithCollege
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /students [get]
func (h *StudentHandler) HandleListStudents(ctx *gin.Context) {
	var query request.ListStudentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	students, err := h.svc.ListStudents(ctx.Request.Context(), query.CollegeIDOrNil())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStudents -> h.svc.ListStudents -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// HandleStudentLogin godoc
// @Summary      Look up an active student by email
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      request.StudentLookupRequest  true  "student email"
// @Success      200      {object}  domain.StudentWithCollege
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /students/login [post]
func (h *StudentHandler) HandleStudentLogin(ctx *gin.Context) {
	var req request.StudentLookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	student, err := h.svc.FindByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		err = fmt.Errorf("v1.HandleStudentLogin -> h.svc.FindByEmail -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// HandleSearchStudents godoc
// @Summary      Search active students by name, email or student number
// @Tags         students
// @Produce      json
// @Param        q    query     string  true  "search term"
// @Success      200  {array}   domain.StudentWithCollege
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /students/search [get]
func (h *StudentHandler) HandleSearchStudents(ctx *gin.Context) {
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

	students, err := h.svc.SearchStudents(ctx.Request.Context(), query.Q)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchStudents -> h.svc.SearchStudents -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// HandleDeactivateStudent godoc
// @Summary      Deactivate a student
// @Tags         students
// @Produce      json
// @Param        studentID  path      string  true  "student ID"  format(uuid)
// @Success      200        {object}  response.Message
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /students/{studentID} [delete]
func (h *StudentHandler) HandleDeactivateStudent(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "studentID")
	if !ok {
		return
	}

	if err := h.svc.DeactivateStudent(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeactivateStudent -> h.svc.DeactivateStudent -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "student deactivated"})
}

// HandleListStudentRegistrations godoc
// @Summary      List the registrations of a student with attendance and feedback
// @Tags         students
// @Produce      json
// @Param        studentID  path      string  true  "student ID"  format(uuid)
// @Success      200        {array}   domain.StudentRegistration
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /students/{studentID}/registrations [get]
func (h *StudentHandler) HandleListStudentRegistrations(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "studentID")
	if !ok {
		return
	}

	registrations, err := h.svc.ListRegistrations(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleListStudentRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleListAvailableEvents godoc
// @Summary      List upcoming events of the student's college that are open for registration
// @Tags         students
// @Produce      json
// @Param        studentID  path      string  true  "student ID"  format(uuid)
// @Success      200        {array}   domain.AvailableEvent
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /students/{studentID}/available-events [get]
func (h *StudentHandler) HandleListAvailableEvents(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "studentID")
	if !ok {
		return
	}

	events, err := h.svc.ListAvailableEvents(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAvailableEvents -> h.svc.ListAvailableEvents -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleListPendingFeedback godoc
// @Summary      List attended events the student has not rated yet
// @Tags         students
// @Produce      json
// @Param        studentID  path      string  true  "student ID"  format(uuid)
// @Success      200        {array}   domain.PendingFeedback
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /students/{studentID}/pending-feedback [get]
func (h *StudentHandler) HandleListPendingFeedback(ctx *gin.Context) {
	id, ok := pathUUID(ctx, "studentID")
	if !ok {
		return
	}

	pending, err := h.svc.ListPendingFeedback(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPendingFeedback -> h.svc.ListPendingFeedback -> %w", err)
		response.RenderErr(ctx, response.FromError(err))
		return
	}

	ctx.JSON(http.StatusOK, pending)
}
