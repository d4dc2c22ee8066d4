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

type ActivityService interface {
	GetActivities(ctx context.Context, spaceID uuid.UUID, eventID *uuid.UUID) ([]domain.Activity, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, spaceID, id uuid.UUID) error
	SetGroupPoints(ctx context.Context, spaceID, activityID, groupID uuid.UUID, points int, comment *string, profileID uuid.UUID) error
	GetPoints(ctx context.Context, spaceID uuid.UUID, activityID, groupID *uuid.UUID) ([]domain.ActivityGroupPoints, error)
}

type ActivityHandler struct {
	svc      ActivityService
	spaceSvc SpaceAccessVerifier
}

func NewActivityHandler(svc ActivityService, spaceSvc SpaceAccessVerifier) *ActivityHandler {
	return &ActivityHandler{
		svc:      svc,
		spaceSvc: spaceSvc,
	}
}

// HandleGetActivities godoc
// @Summary      List the space's activities
// @Tags         activities
// @Produce      json
// @Param        spaceID   path      string  true   "space ID"
// @Param        event_id  query     string  false  "filter by event"
// @Success      200       {array}   domain.Activity
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /spaces/{spaceID}/activities [get]
// @Security     BearerAuth
func (h *ActivityHandler) HandleGetActivities(ctx *gin.Context) {
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

	activities, err := h.svc.GetActivities(ctx.Request.Context(), spaceID, eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActivities -> h.svc.GetActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                   true  "space ID"
// @Param        request  body      request.ActivityRequest  true  "request body"
// @Success      201      {object}  domain.Activity
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/activities [post]
// @Security     BearerAuth
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := h.svc.CreateActivity(ctx.Request.Context(), domain.Activity{
		Name:        req.Name,
		Description: req.Description,
		EventID:     req.EventID,
		SpaceID:     spaceID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateActivity -> h.svc.CreateActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, activity)
}

// HandleUpdateActivity godoc
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        spaceID     path      string                   true  "space ID"
// @Param        activityID  path      string                   true  "activity ID"
// @Param        request     body      request.ActivityRequest  true  "request body"
// @Success      200         {object}  domain.Activity
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /spaces/{spaceID}/activities/{activityID} [put]
// @Security     BearerAuth
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activityID, respErr := parseUUIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity, err := h.svc.UpdateActivity(ctx.Request.Context(), domain.Activity{
		ID:          activityID,
		Name:        req.Name,
		Description: req.Description,
		EventID:     req.EventID,
		SpaceID:     spaceID,
	})
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", activityID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateActivity -> h.svc.UpdateActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Param        spaceID     path      string  true  "space ID"
// @Param        activityID  path      string  true  "activity ID"
// @Success      200         {object}  response.MessageResponse
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /spaces/{spaceID}/activities/{activityID} [delete]
// @Security     BearerAuth
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activityID, respErr := parseUUIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteActivity(ctx.Request.Context(), spaceID, activityID); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", activityID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteActivity -> h.svc.DeleteActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "activity deleted"})
}

// HandleGetActivityPoints godoc
// @Summary      List group scores for activities
// @Tags         activities
// @Produce      json
// @Param        spaceID      path      string  true   "space ID"
// @Param        activity_id  query     string  false  "filter by activity"
// @Param        group_id     query     string  false  "filter by group"
// @Success      200          {array}   domain.ActivityGroupPoints
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /spaces/{spaceID}/activities/points [get]
// @Security     BearerAuth
func (h *ActivityHandler) HandleGetActivityPoints(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activityID, respErr := parseUUIDQuery(ctx, "activity_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, respErr := parseUUIDQuery(ctx, "group_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	points, err := h.svc.GetPoints(ctx.Request.Context(), spaceID, activityID, groupID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActivityPoints -> h.svc.GetPoints -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, points)
}

// HandleSetActivityPoints godoc
// @Summary      Set one group's score for an activity
// @Description  Idempotent per (activity, group): resetting replaces the prior score and its ledger row.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                            true  "space ID"
// @Param        request  body      request.SetActivityPointsRequest  true  "request body"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/activities/points [post]
// @Security     BearerAuth
func (h *ActivityHandler) HandleSetActivityPoints(ctx *gin.Context) {
	profileID, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SetActivityPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.SetGroupPoints(ctx.Request.Context(), spaceID, req.ActivityID, req.GroupID, req.Points, req.Comment, profileID)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "id", req.ActivityID))
			return
		}

		err = fmt.Errorf("v1.HandleSetActivityPoints -> h.svc.SetGroupPoints -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "points saved"})
}
