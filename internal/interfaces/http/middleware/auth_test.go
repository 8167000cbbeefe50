package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketboard/internal/infrastructure/auth"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/logger"
)

func newAuthRouter(jwtService *auth.JWTService, users *mockUserRepository) *gin.Engine {
	m := NewAuthMiddleware(jwtService, users, logger.NewNopLogger())
	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		actor := CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	return r
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	users := newMockUserRepository(testUser(1, authorization.RoleAdmin), testUser(2, authorization.RoleUser))

	adminToken, _, err := jwtService.Generate(1, authorization.RoleAdmin)
	require.NoError(t, err)
	// The token claims ADMIN, the directory says USER: the directory wins.
	staleToken, _, err := jwtService.Generate(2, authorization.RoleAdmin)
	require.NoError(t, err)
	deletedToken, _, err := jwtService.Generate(9, authorization.RoleUser)
	require.NoError(t, err)
	foreignToken, _, err := auth.NewJWTService("other-secret", 60).Generate(1, authorization.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"admin", "Bearer " + adminToken, http.StatusOK, `"role":"ADMIN"`},
		{"role from directory", "Bearer " + staleToken, http.StatusOK, `"role":"USER"`},
		{"missing header", "", http.StatusUnauthorized, "missing authorization token"},
		{"wrong scheme", "Basic " + adminToken, http.StatusUnauthorized, "invalid authorization header format"},
		{"bad signature", "Bearer " + foreignToken, http.StatusUnauthorized, "invalid or expired token"},
		{"deleted account", "Bearer " + deletedToken, http.StatusUnauthorized, "account no longer exists"},
	}

	r := newAuthRouter(jwtService, users)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_DirectoryFailure(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 60)
	users := newMockUserRepository()
	users.err = stderrors.New("db down")
	token, _, err := jwtService.Generate(1, authorization.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthRouter(jwtService, users).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCurrentActor_Absent(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentActor(c))
}
