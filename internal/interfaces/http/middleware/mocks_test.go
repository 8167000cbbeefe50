package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/domain/user"
	"ticketboard/internal/infrastructure/ratelimit"
	"ticketboard/internal/shared/authorization"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUserRepository struct {
	users map[uint]*user.User
	err   error
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByIDs(context.Context, []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(context.Context) ([]*user.User, error) { return nil, nil }

func (m *mockUserRepository) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

type mockRateLimiter struct {
	allowFunc func(key string) (bool, error)
	keys      []string
}

func (m *mockRateLimiter) Allow(_ context.Context, key string, _ ratelimit.Limit) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allowFunc(key)
}

func (m *mockRateLimiter) Reset(context.Context, string) error { return nil }

func testUser(id uint, role authorization.UserRole) *user.User {
	return user.ReconstructUser(id, "User", "user@example.com", role, time.Now())
}
