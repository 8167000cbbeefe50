package permission

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"ticketboard/internal/domain/permission"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/logger"
)

var _ permission.TicketEnforcer = (*Enforcer)(nil)

// Subject and object attributes are strings; "" marks an absent identity.
const ticketModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = role, act, rule

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub.ID != "" && r.act == p.act && (p.role == "*" || r.sub.Role == p.role) && eval(p.rule)
`

// Subject is the acting user as seen by the casbin matcher.
type Subject struct {
	ID   string
	Role string
}

// Object is the ticket as seen by the casbin matcher.
type Object struct {
	ReporterID         string
	AssigneeID         string
	ProposedAssigneeID string
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(ticketModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := loadTicketPolicies(enforcer, log); err != nil {
		return nil, err
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) CanMutate(actor *authorization.Actor, t authorization.TicketParties) (bool, error) {
	return e.enforce(newSubject(actor), newObject(t, nil), permission.ActionMutate)
}

func (e *Enforcer) CanAssign(actor *authorization.Actor, t authorization.TicketParties, proposed *uint) (bool, error) {
	return e.enforce(newSubject(actor), newObject(t, proposed), permission.ActionAssign)
}

func (e *Enforcer) enforce(sub Subject, obj Object, act string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(sub, obj, act)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "user_id", sub.ID, "action", act)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func newSubject(actor *authorization.Actor) Subject {
	if actor == nil {
		return Subject{}
	}
	return Subject{ID: idString(&actor.ID), Role: actor.Role.String()}
}

func newObject(t authorization.TicketParties, proposed *uint) Object {
	return Object{
		ReporterID:         idString(t.ReporterID),
		AssigneeID:         idString(t.AssigneeID),
		ProposedAssigneeID: idString(proposed),
	}
}

func idString(id *uint) string {
	if id == nil || *id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}
