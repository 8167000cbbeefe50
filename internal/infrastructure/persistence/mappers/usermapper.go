package mappers

import (
	"ticketboard/internal/domain/user"
	"ticketboard/internal/infrastructure/persistence/models"
	"ticketboard/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []models.UserModel) []*user.User
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		authorization.ParseUserRole(model.Role),
		model.CreatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        entity.ID(),
		Email:     entity.Email(),
		Name:      entity.Name(),
		Role:      entity.Role().String(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(list []models.UserModel) []*user.User {
	users := make([]*user.User, 0, len(list))
	for i := range list {
		users = append(users, m.ToEntity(&list[i]))
	}
	return users
}
