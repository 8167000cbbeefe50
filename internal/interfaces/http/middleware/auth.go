package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/domain/user"
	"ticketboard/internal/infrastructure/auth"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/constants"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware verifies bearer tokens and resolves the acting user. The
// role is read from the user directory, not the token, so the server and the
// board client see the same role.
type AuthMiddleware struct {
	verifier TokenVerifier
	users    user.Repository
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, users user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.AbortWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			return
		}

		u, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if stderrors.Is(err, user.ErrUserNotFound) {
				utils.AbortWithError(c, errors.NewUnauthorizedError("account no longer exists"))
				return
			}
			m.logger.Errorw("failed to load acting user", "user_id", claims.UserID, "error", err)
			utils.AbortWithError(c, errors.NewInternalError("failed to load user"))
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserRole, u.Role().String())

		c.Next()
	}
}

// CurrentActor returns the acting user set by RequireAuth, or nil.
func CurrentActor(c *gin.Context) *authorization.Actor {
	id, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return nil
	}
	userID, ok := id.(uint)
	if !ok || userID == 0 {
		return nil
	}
	return authorization.NewActor(userID, authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)))
}
