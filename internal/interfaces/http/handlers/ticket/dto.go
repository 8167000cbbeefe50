package ticket

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/application/ticket/usecases"
	"ticketboard/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=5000"`
	Type        string `json:"type" binding:"required"`
	AIEnhanced  bool   `json:"ai_enhanced"`
}

func (r *CreateTicketRequest) ToCommand(reporterID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		ReporterID:  reporterID,
		AIEnhanced:  r.AIEnhanced,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAssigneeRequest requires assignee_id to be present; null unassigns.
type UpdateAssigneeRequest struct {
	AssigneeID *uint
	present    bool
}

func (r *UpdateAssigneeRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, ok := raw["assignee_id"]
	if !ok {
		return nil
	}
	r.present = true
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		r.AssigneeID = nil
		return nil
	}
	var id uint
	if err := json.Unmarshal(value, &id); err != nil {
		return err
	}
	r.AssigneeID = &id
	return nil
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	query := usecases.ListTicketsQuery{Status: c.Query("status")}

	var err error
	if query.AssigneeID, err = optionalUintQuery(c, "assignee_id"); err != nil {
		return query, err
	}
	if query.ReporterID, err = optionalUintQuery(c, "reporter_id"); err != nil {
		return query, err
	}
	return query, nil
}

func optionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, errors.NewValidationError("invalid " + name)
	}
	id := uint(v)
	return &id, nil
}
