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

type EventTypeService interface {
	GetEventTypes(ctx context.Context, spaceID uuid.UUID) ([]domain.EventType, error)
	CreateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	UpdateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	DeleteEventType(ctx context.Context, spaceID, id uuid.UUID) error
}

type EventTypeHandler struct {
	svc      EventTypeService
	spaceSvc SpaceAccessVerifier
}

func NewEventTypeHandler(svc EventTypeService, spaceSvc SpaceAccessVerifier) *EventTypeHandler {
	return &EventTypeHandler{
		svc:      svc,
		spaceSvc: spaceSvc,
	}
}

func extraPointsFromRequest(categories []request.ExtraPointCategory) []domain.ExtraPointCategory {
	extraPoints := make([]domain.ExtraPointCategory, 0, len(categories))
	for _, c := range categories {
		extraPoints = append(extraPoints, domain.ExtraPointCategory{
			Name:       c.Name,
			UnitPoints: c.Points,
			MaxUnits:   c.MaxPoints,
		})
	}

	return extraPoints
}

// HandleGetEventTypes godoc
// @Summary      List the space's event types
// @Tags         event-types
// @Produce      json
// @Param        spaceID  path      string  true  "space ID"
// @Success      200      {array}   domain.EventType
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/event-types [get]
// @Security     BearerAuth
func (h *EventTypeHandler) HandleGetEventTypes(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventTypes, err := h.svc.GetEventTypes(ctx.Request.Context(), spaceID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEventTypes -> h.svc.GetEventTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, eventTypes)
}

// HandleCreateEventType godoc
// @Summary      Create an event type
// @Tags         event-types
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                    true  "space ID"
// @Param        request  body      request.EventTypeRequest  true  "request body"
// @Success      201      {object}  domain.EventType
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/event-types [post]
// @Security     BearerAuth
func (h *EventTypeHandler) HandleCreateEventType(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventType, err := h.svc.CreateEventType(ctx.Request.Context(), domain.EventType{
		Name:              req.Name,
		Icon:              req.Icon,
		AttendancePoints:  req.AttendancePoints,
		AcceptsActivities: req.AcceptsActivities,
		ExtraPoints:       extraPointsFromRequest(req.ExtraPoints),
		SpaceID:           spaceID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEventType -> h.svc.CreateEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, eventType)
}

// HandleUpdateEventType godoc
// @Summary      Update an event type
// @Description  Category edits only affect future scoring; stored attendance keeps its points.
// @Tags         event-types
// @Accept       json
// @Produce      json
// @Param        spaceID      path      string                    true  "space ID"
// @Param        eventTypeID  path      string                    true  "event type ID"
// @Param        request      body      request.EventTypeRequest  true  "request body"
// @Success      200          {object}  domain.EventType
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /spaces/{spaceID}/event-types/{eventTypeID} [put]
// @Security     BearerAuth
func (h *EventTypeHandler) HandleUpdateEventType(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventTypeID, respErr := parseUUIDParam(ctx, "eventTypeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	eventType, err := h.svc.UpdateEventType(ctx.Request.Context(), domain.EventType{
		ID:                eventTypeID,
		Name:              req.Name,
		Icon:              req.Icon,
		AttendancePoints:  req.AttendancePoints,
		AcceptsActivities: req.AcceptsActivities,
		ExtraPoints:       extraPointsFromRequest(req.ExtraPoints),
		SpaceID:           spaceID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "id", eventTypeID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEventType -> h.svc.UpdateEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, eventType)
}

// HandleDeleteEventType godoc
// @Summary      Delete an event type
// @Tags         event-types
// @Produce      json
// @Param        spaceID      path      string  true  "space ID"
// @Param        eventTypeID  path      string  true  "event type ID"
// @Success      200          {object}  response.MessageResponse
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /spaces/{spaceID}/event-types/{eventTypeID} [delete]
// @Security     BearerAuth
func (h *EventTypeHandler) HandleDeleteEventType(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventTypeID, respErr := parseUUIDParam(ctx, "eventTypeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteEventType(ctx.Request.Context(), spaceID, eventTypeID); err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "id", eventTypeID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEventType -> h.svc.DeleteEventType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "event type deleted"})
}
