package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ticketboard/internal/infrastructure/config"
	"ticketboard/internal/infrastructure/migration"
	"ticketboard/internal/infrastructure/persistence/seeds"
	"ticketboard/internal/shared/authorization"
	sharedConfig "ticketboard/internal/shared/config"
	"ticketboard/internal/shared/logger"
)

const (
	adminID uint = 1
	aliceID uint = 2
	bobID   uint = 3
)

type testServer struct {
	engine *gin.Engine
	tokens map[uint]string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.NewGormAutoMigrateStrategy().Migrate(gormDB))
	_, err = seeds.SeedDemoUsers(gormDB)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: sharedConfig.AuthConfig{JWT: sharedConfig.JWTConfig{Secret: "router-test", AccessExpMinutes: 5}},
	}
	c, err := NewContainer(gormDB, cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(c.Shutdown)

	router := NewRouter(c)
	router.SetupRoutes()

	tokens := make(map[uint]string)
	for id, role := range map[uint]authorization.UserRole{
		adminID: authorization.RoleAdmin,
		aliceID: authorization.RoleUser,
		bobID:   authorization.RoleUser,
	} {
		token, _, err := c.jwtSvc.Generate(id, role)
		require.NoError(t, err)
		tokens[id] = token
	}

	return &testServer{engine: router.GetEngine(), tokens: tokens}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Type string `json:"type"`
	} `json:"error"`
}

func (s *testServer) do(t *testing.T, method, path string, as uint, body string) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if as != 0 {
		req.Header.Set("Authorization", "Bearer "+s.tokens[as])
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (s *testServer) createTicket(t *testing.T, as uint) uint {
	t.Helper()
	code, env := s.do(t, http.MethodPost, "/api/v1/tickets", as, `{"title":"Printer on fire","description":"**smoke**","type":"BUG"}`)
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "OPEN", created.Status)
	return created.ID
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RequiresAuth(t *testing.T) {
	s := newTestServer(t)
	code, env := s.do(t, http.MethodGet, "/api/v1/tickets", 0, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "unauthorized", env.Error.Type)
}

func TestRouter_StatusChangeAuthorization(t *testing.T) {
	s := newTestServer(t)
	id := s.createTicket(t, aliceID)
	statusPath := fmt.Sprintf("/api/v1/tickets/%d/status", id)

	// Bob is neither reporter nor assignee.
	code, env := s.do(t, http.MethodPatch, statusPath, bobID, `{"status":"IN_PROGRESS"}`)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "forbidden", env.Error.Type)

	code, env = s.do(t, http.MethodPatch, statusPath, aliceID, `{"status":"IN_PROGRESS"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ticket moved to In Progress.", env.Message)

	code, _ = s.do(t, http.MethodPatch, statusPath, adminID, `{"status":"CLOSED"}`)
	assert.Equal(t, http.StatusOK, code)

	// Any status may follow any other, and repeating the current one succeeds.
	code, _ = s.do(t, http.MethodPatch, statusPath, adminID, `{"status":"CLOSED"}`)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, http.MethodPatch, statusPath, aliceID, `{"status":"OPEN"}`)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodPatch, statusPath, aliceID, `{"status":"DONE"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_error", env.Error.Type)

	code, env = s.do(t, http.MethodPatch, "/api/v1/tickets/999/status", adminID, `{"status":"OPEN"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", env.Error.Type)
}

func TestRouter_AssigneeRules(t *testing.T) {
	s := newTestServer(t)
	id := s.createTicket(t, aliceID)
	assigneePath := fmt.Sprintf("/api/v1/tickets/%d/assignee", id)
	statusPath := fmt.Sprintf("/api/v1/tickets/%d/status", id)

	// Alice may not hand her ticket to Bob.
	code, _ := s.do(t, http.MethodPatch, assigneePath, aliceID, fmt.Sprintf(`{"assignee_id":%d}`, bobID))
	assert.Equal(t, http.StatusForbidden, code)

	// Bob may take it.
	code, env := s.do(t, http.MethodPatch, assigneePath, bobID, fmt.Sprintf(`{"assignee_id":%d}`, bobID))
	require.Equal(t, http.StatusOK, code)
	var assigned struct {
		AssigneeName *string `json:"assignee_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &assigned))
	require.NotNil(t, assigned.AssigneeName)
	assert.Equal(t, "Bob", *assigned.AssigneeName)

	// As assignee Bob can now move it.
	code, _ = s.do(t, http.MethodPatch, statusPath, bobID, `{"status":"IN_PROGRESS"}`)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodPatch, assigneePath, adminID, `{"assignee_id":42}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_error", env.Error.Type)

	code, _ = s.do(t, http.MethodPatch, assigneePath, bobID, `{"assignee_id":null}`)
	assert.Equal(t, http.StatusOK, code)
}

func TestRouter_ListAndUsers(t *testing.T) {
	s := newTestServer(t)
	s.createTicket(t, aliceID)
	s.createTicket(t, bobID)

	code, env := s.do(t, http.MethodGet, "/api/v1/tickets", adminID, "")
	require.Equal(t, http.StatusOK, code)
	var tickets []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &tickets))
	assert.Len(t, tickets, 2)

	code, env = s.do(t, http.MethodGet, "/api/v1/users/me", bobID, "")
	require.Equal(t, http.StatusOK, code)
	var me struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "Bob", me.Name)
	assert.Equal(t, "USER", me.Role)

	code, env = s.do(t, http.MethodGet, "/api/v1/users", bobID, "")
	require.Equal(t, http.StatusOK, code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 3)
}
