package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/application/user/dto"
	"ticketboard/internal/interfaces/http/middleware"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/utils"
)

type currentUserGetter interface {
	Execute(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type usersLister interface {
	Execute(ctx context.Context) ([]*dto.UserResponse, error)
}

// UserHandler serves the read-only user directory.
type UserHandler struct {
	getCurrentUserUC currentUserGetter
	listUsersUC      usersLister
	logger           logger.Interface
}

func NewUserHandler(getCurrentUserUC currentUserGetter, listUsersUC usersLister, logger logger.Interface) *UserHandler {
	return &UserHandler{
		getCurrentUserUC: getCurrentUserUC,
		listUsersUC:      listUsersUC,
		logger:           logger,
	}
}

// GetCurrentUser handles GET /users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if actor == nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), actor.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
