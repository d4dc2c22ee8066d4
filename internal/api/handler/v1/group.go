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

type GroupService interface {
	GetGroups(ctx context.Context, spaceID uuid.UUID) ([]domain.Group, error)
	GetGroupsWithPoints(ctx context.Context, spaceID uuid.UUID) ([]domain.GroupPoints, error)
	CreateGroup(ctx context.Context, group domain.Group) (domain.Group, error)
	UpdateGroup(ctx context.Context, group domain.Group) (domain.Group, error)
	DeleteGroup(ctx context.Context, spaceID, id uuid.UUID) error
}

type GroupHandler struct {
	svc      GroupService
	spaceSvc SpaceAccessVerifier
}

func NewGroupHandler(svc GroupService, spaceSvc SpaceAccessVerifier) *GroupHandler {
	return &GroupHandler{
		svc:      svc,
		spaceSvc: spaceSvc,
	}
}

// HandleGetGroups godoc
// @Summary      List the space's groups
// @Tags         groups
// @Produce      json
// @Param        spaceID  path      string  true  "space ID"
// @Success      200      {array}   domain.Group
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/groups [get]
// @Security     BearerAuth
func (h *GroupHandler) HandleGetGroups(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groups, err := h.svc.GetGroups(ctx.Request.Context(), spaceID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetGroups -> h.svc.GetGroups -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, groups)
}

// HandleGetGroupPoints godoc
// @Summary      List groups with their ledger totals
// @Tags         groups
// @Produce      json
// @Param        spaceID  path      string  true  "space ID"
// @Success      200      {array}   domain.GroupPoints
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/groups/points [get]
// @Security     BearerAuth
func (h *GroupHandler) HandleGetGroupPoints(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	points, err := h.svc.GetGroupsWithPoints(ctx.Request.Context(), spaceID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetGroupPoints -> h.svc.GetGroupsWithPoints -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, points)
}

// HandleCreateGroup godoc
// @Summary      Create a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                      true  "space ID"
// @Param        request  body      request.CreateGroupRequest  true  "request body"
// @Success      201      {object}  domain.Group
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/groups [post]
// @Security     BearerAuth
func (h *GroupHandler) HandleCreateGroup(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.CreateGroup(ctx.Request.Context(), domain.Group{
		Name:     req.Name,
		ParentID: req.ParentID,
		SpaceID:  spaceID,
	})
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("group", "parent_id", req.ParentID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateGroup -> h.svc.CreateGroup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, group)
}

// HandleUpdateGroup godoc
// @Summary      Rename and/or reparent a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        spaceID  path      string                      true  "space ID"
// @Param        groupID  path      string                      true  "group ID"
// @Param        request  body      request.UpdateGroupRequest  true  "request body"
// @Success      200      {object}  domain.Group
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/groups/{groupID} [put]
// @Security     BearerAuth
func (h *GroupHandler) HandleUpdateGroup(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, respErr := parseUUIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	group, err := h.svc.UpdateGroup(ctx.Request.Context(), domain.Group{
		ID:       groupID,
		Name:     req.Name,
		ParentID: req.ParentID,
		SpaceID:  spaceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "id", groupID))
		case errors.Is(err, service.ErrCyclicParent):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrCyclicParent))
		default:
			err = fmt.Errorf("v1.HandleUpdateGroup -> h.svc.UpdateGroup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, group)
}

// HandleDeleteGroup godoc
// @Summary      Delete an empty group
// @Tags         groups
// @Produce      json
// @Param        spaceID  path      string  true  "space ID"
// @Param        groupID  path      string  true  "group ID"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces/{spaceID}/groups/{groupID} [delete]
// @Security     BearerAuth
func (h *GroupHandler) HandleDeleteGroup(ctx *gin.Context) {
	_, spaceID, respErr := verifySpaceAccess(ctx, h.spaceSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	groupID, respErr := parseUUIDParam(ctx, "groupID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteGroup(ctx.Request.Context(), spaceID, groupID); err != nil {
		switch {
		case errors.Is(err, service.ErrGroupNotFound):
			response.RenderErr(ctx, response.ErrNotFound("group", "id", groupID))
		case errors.Is(err, service.ErrGroupNotEmpty):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrGroupNotEmpty))
		default:
			err = fmt.Errorf("v1.HandleDeleteGroup -> h.svc.DeleteGroup -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "group deleted"})
}
