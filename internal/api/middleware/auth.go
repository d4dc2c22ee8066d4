package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pointspace/pointspace-api/internal/api/handler/v1/response"
	"github.com/pointspace/pointspace-api/internal/pkg/jwthelper"
)

// ProfileIDKey is the gin context key the authenticated profile ID is
// stored under.
const ProfileIDKey = "profileID"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing authorization header")))
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("malformed authorization header")))
			return
		}

		profileID, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("invalid or expired token")))
			return
		}

		ctx.Set(ProfileIDKey, profileID)
		ctx.Next()
	}
}
