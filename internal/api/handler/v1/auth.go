package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pointspace/pointspace-api/internal/api/handler/v1/request"
	"github.com/pointspace/pointspace-api/internal/api/handler/v1/response"
	"github.com/pointspace/pointspace-api/internal/config"
	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/pkg/jwthelper"
	"github.com/pointspace/pointspace-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	Login(ctx context.Context, email, password string) (domain.Profile, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new admin profile
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	profile, err := h.svc.Signup(ctx.Request.Context(), domain.Profile{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrProfileEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.conf.JWTSigningKey, profile.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleSignup -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.AuthResponse{
		Token: token,
		ID:    profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
	})
}

// HandleLogin godoc
// @Summary      Login with email and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	profile, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("wrong email or password")))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.conf.JWTSigningKey, profile.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.AuthResponse{
		Token: token,
		ID:    profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
	})
}
