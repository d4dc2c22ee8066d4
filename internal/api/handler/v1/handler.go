package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/api/handler/v1/response"
	"github.com/pointspace/pointspace-api/internal/api/middleware"
	"github.com/pointspace/pointspace-api/internal/service"
)

// SpaceAccessVerifier gates space-scoped handlers on the caller's
// membership in the space.
type SpaceAccessVerifier interface {
	VerifyAccess(ctx context.Context, profileID, spaceID uuid.UUID) error
}

// profileIDFromContext returns the authenticated profile ID placed in the
// context by the JWT middleware.
func profileIDFromContext(ctx *gin.Context) (uuid.UUID, *response.Err) {
	value, exists := ctx.Get(middleware.ProfileIDKey)
	if !exists {
		return uuid.Nil, response.ErrUnauthorized(errors.New("not authenticated"))
	}

	profileID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.ErrUnauthorized(errors.New("not authenticated"))
	}

	return profileID, nil
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, *response.Err) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, response.ErrBadRequest(fmt.Errorf("invalid %v", name))
	}

	return id, nil
}

// verifySpaceAccess resolves the authenticated profile and the spaceID path
// parameter, then checks membership. Every space-scoped handler starts here.
func verifySpaceAccess(ctx *gin.Context, verifier SpaceAccessVerifier) (uuid.UUID, uuid.UUID, *response.Err) {
	profileID, respErr := profileIDFromContext(ctx)
	if respErr != nil {
		return uuid.Nil, uuid.Nil, respErr
	}

	spaceID, respErr := parseUUIDParam(ctx, "spaceID")
	if respErr != nil {
		return uuid.Nil, uuid.Nil, respErr
	}

	if err := verifier.VerifyAccess(ctx.Request.Context(), profileID, spaceID); err != nil {
		if errors.Is(err, service.ErrSpaceAccessDenied) {
			return uuid.Nil, uuid.Nil, response.ErrPermissionDenied(service.ErrSpaceAccessDenied)
		}

		err = fmt.Errorf("v1.verifySpaceAccess -> verifier.VerifyAccess -> %w", err)
		return uuid.Nil, uuid.Nil, response.ErrInternalServerError(err)
	}

	return profileID, spaceID, nil
}

// parseUUIDQuery parses an optional query parameter; absence is not an error.
func parseUUIDQuery(ctx *gin.Context, name string) (*uuid.UUID, *response.Err) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, response.ErrBadRequest(fmt.Errorf("invalid %v", name))
	}

	return &id, nil
}
