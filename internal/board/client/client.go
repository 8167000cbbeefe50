// Package client is the HTTP transport of the board. It talks to the ticket
// API and turns error envelopes into board.MutationError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ticketboard/internal/board"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/constants"
	apperrors "ticketboard/internal/shared/errors"
)

const defaultTimeout = 10 * time.Second

// Client is the ticket API client. It implements board.Backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ board.Backend = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		if d > 0 {
			client.httpClient.Timeout = d
		}
	}
}

// NewClient creates a client for the API at baseURL (e.g. "http://localhost:8080")
// authenticating with a bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// User is an entry of the user directory.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) ListTickets(ctx context.Context) ([]board.Ticket, error) {
	var tickets []board.Ticket
	if err := c.doRequest(ctx, http.MethodGet, c.url("/tickets"), nil, &tickets); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (c *Client) UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) (*board.Ticket, error) {
	body := map[string]any{"status": status.String()}

	var ticket board.Ticket
	if err := c.doRequest(ctx, http.MethodPatch, c.url("/tickets/%d/status", ticketID), body, &ticket); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return &ticket, nil
}

// UpdateAssignee sets the assignee; nil is sent as JSON null and unassigns.
func (c *Client) UpdateAssignee(ctx context.Context, ticketID uint, assigneeID *uint) (*board.Ticket, error) {
	body := map[string]any{"assignee_id": assigneeID}

	var ticket board.Ticket
	if err := c.doRequest(ctx, http.MethodPatch, c.url("/tickets/%d/assignee", ticketID), body, &ticket); err != nil {
		return nil, fmt.Errorf("update assignee: %w", err)
	}
	return &ticket, nil
}

// CurrentUser returns the user the token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.doRequest(ctx, http.MethodGet, c.url("/users/me"), nil, &user); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doRequest(ctx, http.MethodGet, c.url("/users"), nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *Client) url(format string, args ...any) string {
	return c.baseURL + constants.APIVersionPrefix + fmt.Sprintf(format, args...)
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
	Message string          `json:"message"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// doRequest performs an HTTP request and decodes the response envelope.
// Every failure is returned as a *board.MutationError.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &board.MutationError{Kind: board.KindConnectivity, Reason: "marshal request", Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return &board.MutationError{Kind: board.KindConnectivity, Reason: "create request", Err: err}
	}

	req.Header.Set(constants.HeaderAuthorization, "Bearer "+c.token)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &board.MutationError{Kind: board.KindConnectivity, Reason: "send request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &board.MutationError{Kind: board.KindConnectivity, Reason: "read response", Err: err}
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return &board.MutationError{
			Kind:   board.KindConnectivity,
			Reason: fmt.Sprintf("unexpected response: status=%d", resp.StatusCode),
			Err:    err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !apiResp.Success {
		return classifyResponse(resp.StatusCode, apiResp.Error)
	}

	if result == nil || len(apiResp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(apiResp.Data, result); err != nil {
		return &board.MutationError{Kind: board.KindConnectivity, Reason: "unmarshal data", Err: err}
	}
	return nil
}

// classifyResponse maps the envelope's error type to a failure kind. Server
// errors and anything unrecognised count as connectivity, which is retryable.
func classifyResponse(status int, e *apiError) *board.MutationError {
	if e == nil {
		return &board.MutationError{
			Kind:   board.KindConnectivity,
			Reason: fmt.Sprintf("api error: status=%d", status),
		}
	}

	reason := e.Message
	if e.Details != "" {
		reason = e.Message + ": " + e.Details
	}
	cause := fmt.Errorf("api error: status=%d type=%s", status, e.Type)

	kind := board.KindConnectivity
	switch apperrors.ErrorType(e.Type) {
	case apperrors.ErrorTypeNotFound:
		kind = board.KindNotFound
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeBadRequest:
		kind = board.KindValidation
	case apperrors.ErrorTypeForbidden, apperrors.ErrorTypeUnauthorized:
		kind = board.KindForbidden
	}
	return &board.MutationError{Kind: kind, Reason: reason, Err: cause}
}
