package usecases

import (
	"context"

	"ticketboard/internal/application/user/dto"
	domainUser "ticketboard/internal/domain/user"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
)

// ListUsersUseCase backs assignee pickers.
type ListUsersUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo domainUser.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	result := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, dto.ToUserResponse(u))
	}
	return result, nil
}
