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

type EventService interface {
	GetEvents(ctx context.Context, spaceID uuid.UUID, activeOnly bool) ([]domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, spaceID, id uuid.UUID) error
}

type EventHandler struct {
	svc      EventService
	spaceSvc SpaceAccessVerifier
}

func NewEventHandler(svc EventService, spaceSvc SpaceAccessVerifier) *EventHandler {
	return &EventHandler{
		svc:      svc,
		spaceSvc: spaceSvc,
	}
}

// HandleGetEvents godoc
// @Summary      List the space's events
// @Description  With active=true, only events whose date range covers now; undated events always qualify.
// @Tags         events
// @Produce      json
// @Param        spaceID  path      string  true   "space ID"
// @Param        active   query     bool    false  "only currently active events"
// @Success      200      {array}   domain.Event
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/events [get]
// @Security     BearerAuth
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	activeOnly := ctx.Query("active") == "true"

	events, err := h.svc.GetEvents(ctx.Request.Context(), spaceID, activeOnly)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                true  "space ID"
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		EventTypeID: req.EventTypeID,
		SpaceID:     spaceID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event type", "id", req.EventTypeID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                true  "space ID"
// @Param        eventID  path      string                true  "event ID"
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/events/{eventID} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, respErr := parseUUIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:          eventID,
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		EventTypeID: req.EventTypeID,
		SpaceID:     spaceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
		case errors.Is(err, service.ErrEventTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event type", "id", req.EventTypeID))
		default:
			err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        spaceID  path      string  true  "space ID"
// @Param        eventID  path      string  true  "event ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/events/{eventID} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, respErr := parseUUIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), spaceID, eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "id", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "event deleted"})
}
