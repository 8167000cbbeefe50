package usecases

import (
	"context"
	stderrors "errors"

	"ticketboard/internal/application/user/dto"
	domainUser "ticketboard/internal/domain/user"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
)

// GetCurrentUserUseCase returns the acting user context for a session.
type GetCurrentUserUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo domainUser.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	if userID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, domainUser.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "id", userID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	return dto.ToUserResponse(u), nil
}
