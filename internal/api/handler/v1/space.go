package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/api/handler/v1/request"
	"github.com/pointspace/pointspace-api/internal/api/handler/v1/response"
	"github.com/pointspace/pointspace-api/internal/domain"
)

type SpaceService interface {
	CreateSpace(ctx context.Context, space domain.Space, profileID uuid.UUID) (domain.Space, error)
	GetSpaces(ctx context.Context, profileID uuid.UUID) ([]domain.Space, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (domain.Profile, error)
	VerifyAccess(ctx context.Context, profileID, spaceID uuid.UUID) error
}

type SpaceHandler struct {
	svc SpaceService
}

func NewSpaceHandler(svc SpaceService) *SpaceHandler {
	return &SpaceHandler{
		svc: svc,
	}
}

// HandleGetSpaces godoc
// @Summary      List the caller's spaces
// @Tags         spaces
// @Produce      json
// @Success      200  {array}   domain.Space
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /spaces [get]
// @Security     BearerAuth
func (h *SpaceHandler) HandleGetSpaces(ctx *gin.Context) {
	profileID, respErr := profileIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	spaces, err := h.svc.GetSpaces(ctx.Request.Context(), profileID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSpaces -> h.svc.GetSpaces -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, spaces)
}

// HandleCreateSpace godoc
// @Summary      Create a space with the caller as its first member
// @Tags         spaces
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateSpaceRequest  true  "request body"
// @Success      201      {object}  domain.Space
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /spaces [post]
// @Security     BearerAuth
func (h *SpaceHandler) HandleCreateSpace(ctx *gin.Context) {
	profileID, respErr := profileIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateSpaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	space, err := h.svc.CreateSpace(ctx.Request.Context(), domain.Space{
		Name: req.Name,
	}, profileID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSpace -> h.svc.CreateSpace -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, space)
}

// HandleGetProfile godoc
// @Summary      Get the authenticated profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /profile [get]
// @Security     BearerAuth
func (h *SpaceHandler) HandleGetProfile(ctx *gin.Context) {
	profileID, respErr := profileIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	profile, err := h.svc.GetProfile(ctx.Request.Context(), profileID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetProfile -> h.svc.GetProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
