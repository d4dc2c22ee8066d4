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

type MissingService interface {
	GetMissings(ctx context.Context, spaceID uuid.UUID, studentID *uuid.UUID) ([]domain.Missing, error)
	CreateMissing(ctx context.Context, missing domain.Missing) (domain.Missing, error)
	UpdateMissing(ctx context.Context, missing domain.Missing) (domain.Missing, error)
	DeleteMissing(ctx context.Context, spaceID, id uuid.UUID) error
}

type MissingHandler struct {
	svc      MissingService
	spaceSvc SpaceAccessVerifier
}

func NewMissingHandler(svc MissingService, spaceSvc SpaceAccessVerifier) *MissingHandler {
	return &MissingHandler{
		svc:      svc,
		spaceSvc: spaceSvc,
	}
}

// HandleGetMissings godoc
// @Summary      List absence notes
// @Tags         missings
// @Produce      json
// @Param        spaceID     path      string  true   "space ID"
// @Param        student_id  query     string  false  "filter by student"
// @Success      200         {array}   domain.Missing
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /spaces/{spaceID}/missings [get]
// @Security     BearerAuth
func (h *MissingHandler) HandleGetMissings(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	studentID, respErr := parseUUIDQuery(ctx, "student_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	missings, err := h.svc.GetMissings(ctx.Request.Context(), spaceID, studentID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMissings -> h.svc.GetMissings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, missings)
}

// HandleCreateMissing godoc
// @Summary      Record an absence note
// @Tags         missings
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                  true  "space ID"
// @Param        request  body      request.MissingRequest  true  "request body"
// @Success      201      {object}  domain.Missing
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/missings [post]
// @Security     BearerAuth
func (h *MissingHandler) HandleCreateMissing(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.MissingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	missing, err := h.svc.CreateMissing(ctx.Request.Context(), domain.Missing{
		StudentID: req.StudentID,
		Date:      req.Date,
		Type:      req.Type,
		Notes:     req.Notes,
		Persons:   req.Persons,
		SpaceID:   spaceID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateMissing -> h.svc.CreateMissing -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, missing)
}

// HandleUpdateMissing godoc
// @Summary      Update an absence note
// @Tags         missings
// @Accept       json
// @Produce      json
// @Param        spaceID    path      string                  true  "space ID"
// @Param        missingID  path      string                  true  "missing ID"
// @Param        request    body      request.MissingRequest  true  "request body"
// @Success      200        {object}  domain.Missing
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /spaces/{spaceID}/missings/{missingID} [put]
// @Security     BearerAuth
func (h *MissingHandler) HandleUpdateMissing(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	missingID, respErr := parseUUIDParam(ctx, "missingID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.MissingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	missing, err := h.svc.UpdateMissing(ctx.Request.Context(), domain.Missing{
		ID:        missingID,
		StudentID: req.StudentID,
		Date:      req.Date,
		Type:      req.Type,
		Notes:     req.Notes,
		Persons:   req.Persons,
		SpaceID:   spaceID,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("missing record", "id", missingID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateMissing -> h.svc.UpdateMissing -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, missing)
}

// HandleDeleteMissing godoc
// @Summary      Delete an absence note
// @Tags         missings
// @Produce      json
// @Param        spaceID    path      string  true  "space ID"
// @Param        missingID  path      string  true  "missing ID"
// @Success      200        {object}  response.MessageResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /spaces/{spaceID}/missings/{missingID} [delete]
// @Security     BearerAuth
func (h *MissingHandler) HandleDeleteMissing(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	missingID, respErr := parseUUIDParam(ctx, "missingID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteMissing(ctx.Request.Context(), spaceID, missingID); err != nil {
		if errors.Is(err, service.ErrMissingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("missing record", "id", missingID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteMissing -> h.svc.DeleteMissing -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "missing record deleted"})
}
