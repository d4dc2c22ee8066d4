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

type AttendanceService interface {
	SaveAttendance(ctx context.Context, spaceID, studentID, eventID uuid.UUID, isPresent bool, selection domain.Selection, profileID uuid.UUID) (domain.EventStudent, error)
	GetEventAttendance(ctx context.Context, spaceID, eventID uuid.UUID) ([]domain.EventStudent, error)
	GetStudentAttendance(ctx context.Context, studentID uuid.UUID) ([]domain.EventStudent, error)
	GetEventTypeAttendance(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]domain.EventStudent, error)
}

type AttendanceHandler struct {
	svc        AttendanceService
	studentSvc StudentService
	spaceSvc   SpaceAccessVerifier
}

func NewAttendanceHandler(svc AttendanceService, studentSvc StudentService, spaceSvc SpaceAccessVerifier) *AttendanceHandler {
	return &AttendanceHandler{
		svc:        svc,
		studentSvc: studentSvc,
		spaceSvc:   spaceSvc,
	}
}

func (h *AttendanceHandler) resolveStudent(ctx *gin.Context, spaceID, studentID uuid.UUID) *response.Err {
	student, err := h.studentSvc.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return response.ErrNotFound("student", "id", studentID)
		}

		err = fmt.Errorf("v1.resolveStudent -> h.studentSvc.GetStudent -> %w", err)
		return response.ErrInternalServerError(err)
	}

	if student.SpaceID != spaceID {
		return response.ErrNotFound("student", "id", studentID)
	}

	return nil
}

// HandleGetAttendance godoc
// @Summary      List attendance records
// @Description  Exactly one of event_id, student_id or event_type_id selects the direction.
// @Tags         attendance
// @Produce      json
// @Param        spaceID        path      string  true   "space ID"
// @Param        event_id       query     string  false  "by event"
// @Param        student_id     query     string  false  "by student"
// @Param        event_type_id  query     string  false  "by event type"
// @Success      200            {array}   domain.EventStudent
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      403            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /spaces/{spaceID}/attendance [get]
// @Security     BearerAuth
func (h *AttendanceHandler) HandleGetAttendance(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, respErr := parseUUIDQuery(ctx, "event_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studentID, respErr := parseUUIDQuery(ctx, "student_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventTypeID, respErr := parseUUIDQuery(ctx, "event_type_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var (
		records []domain.EventStudent
		err     error
	)

	switch {
	case eventID != nil:
		records, err = h.svc.GetEventAttendance(ctx.Request.Context(), spaceID, *eventID)
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", *eventID))
			return
		}
	case studentID != nil:
		if respErr = h.resolveStudent(ctx, spaceID, *studentID); respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}

		records, err = h.svc.GetStudentAttendance(ctx.Request.Context(), *studentID)
	case eventTypeID != nil:
		records, err = h.svc.GetEventTypeAttendance(ctx.Request.Context(), spaceID, *eventTypeID)
	default:
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("one of event_id, student_id or event_type_id is required")))
		return
	}

	if err != nil {
		err = fmt.Errorf("v1.HandleGetAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// HandleSaveAttendance godoc
// @Summary      Save a student's attendance for an event
// @Description  Idempotent per (student, event): resaving replaces the record and its ledger row instead of stacking.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                         true  "space ID"
// @Param        request  body      request.SaveAttendanceRequest  true  "request body"
// @Success      200      {object}  domain.EventStudent
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/attendance [post]
// @Security     BearerAuth
func (h *AttendanceHandler) HandleSaveAttendance(ctx *gin.Context) {
	profileID, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaveAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if respErr = h.resolveStudent(ctx, spaceID, req.StudentID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	record, err := h.svc.SaveAttendance(ctx.Request.Context(), spaceID, req.StudentID, req.EventID, req.IsPresent, domain.Selection(req.ExtraPoints), profileID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", req.EventID))
			return
		}

		err = fmt.Errorf("v1.HandleSaveAttendance -> h.svc.SaveAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, record)
}
