package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/api/handler/v1/request"
	"github.com/pointspace/pointspace-api/internal/api/handler/v1/response"
	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/service"
)

type StudentService interface {
	GetStudents(ctx context.Context, spaceID uuid.UUID, groupFilter *uuid.UUID) ([]domain.Student, error)
	GetStudent(ctx context.Context, id uuid.UUID) (domain.Student, error)
	CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	UpdateStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	DeleteStudent(ctx context.Context, spaceID, id uuid.UUID) error
}

type StudentHandler struct {
	svc      StudentService
	spaceSvc SpaceAccessVerifier
}

func NewStudentHandler(svc StudentService, spaceSvc SpaceAccessVerifier) *StudentHandler {
	return &StudentHandler{
		svc:      svc,
		spaceSvc: spaceSvc,
	}
}

// HandleGetStudents godoc
// @Summary      List the space's students
// @Description  With group_id set, covers that group and its whole subtree.
// @Tags         students
// @Produce      json
// @Param        spaceID   path      string  true   "space ID"
// @Param        group_id  query     string  false  "filter by group subtree"
// @Success      200       {array}   domain.Student
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /spaces/{spaceID}/students [get]
// @Security     BearerAuth
func (h *StudentHandler) HandleGetStudents(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupFilter, respErr := parseUUIDQuery(ctx, "group_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	students, err := h.svc.GetStudents(ctx.Request.Context(), spaceID, groupFilter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStudents -> h.svc.GetStudents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// HandleGetStudent godoc
// @Summary      Get a student
// @Tags         students
// @Produce      json
// @Param        spaceID    path      string  true  "space ID"
// @Param        studentID  path      string  true  "student ID"
// @Success      200        {object}  domain.Student
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /spaces/{spaceID}/students/{studentID} [get]
// @Security     BearerAuth
func (h *StudentHandler) HandleGetStudent(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studentID, respErr := parseUUIDParam(ctx, "studentID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	student, err := h.svc.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("student", "id", studentID))
			return
		}

		err = fmt.Errorf("v1.HandleGetStudent -> h.svc.GetStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if student.SpaceID != spaceID {
		response.RenderErr(ctx, response.ErrNotFound("student", "id", studentID))
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// HandleCreateStudent godoc
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                  true  "space ID"
// @Param        request  body      request.StudentRequest  true  "request body"
// @Success      201      {object}  domain.Student
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/students [post]
// @Security     BearerAuth
func (h *StudentHandler) HandleCreateStudent(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	student, err := h.svc.CreateStudent(ctx.Request.Context(), domain.Student{
		Name:      req.Name,
		DOB:       req.DOB,
		Gender:    req.Gender,
		ImagePath: req.ImagePath,
		Embedding: req.Embedding,
		GroupID:   req.GroupID,
		MentorID:  req.MentorID,
		SpaceID:   spaceID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateStudent -> h.svc.CreateStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// HandleUpdateStudent godoc
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        spaceID    path      string                  true  "space ID"
// @Param        studentID  path      string                  true  "student ID"
// @Param        request    body      request.StudentRequest  true  "request body"
// @Success      200        {object}  domain.Student
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /spaces/{spaceID}/students/{studentID} [put]
// @Security     BearerAuth
func (h *StudentHandler) HandleUpdateStudent(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studentID, respErr := parseUUIDParam(ctx, "studentID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	student, err := h.svc.UpdateStudent(ctx.Request.Context(), domain.Student{
		ID:        studentID,
		Name:      req.Name,
		DOB:       req.DOB,
		Gender:    req.Gender,
		ImagePath: req.ImagePath,
		Embedding: req.Embedding,
		GroupID:   req.GroupID,
		MentorID:  req.MentorID,
		SpaceID:   spaceID,
	})
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("student", "id", studentID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStudent -> h.svc.UpdateStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// HandleDeleteStudent godoc
// @Summary      Delete a student
// @Tags         students
// @Produce      json
// @Param        spaceID    path      string  true  "space ID"
// @Param        studentID  path      string  true  "student ID"
// @Success      200        {object}  response.MessageResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /spaces/{spaceID}/students/{studentID} [delete]
// @Security     BearerAuth
func (h *StudentHandler) HandleDeleteStudent(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studentID, respErr := parseUUIDParam(ctx, "studentID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteStudent(ctx.Request.Context(), spaceID, studentID); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("student", "id", studentID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteStudent -> h.svc.DeleteStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "student deleted"})
}
