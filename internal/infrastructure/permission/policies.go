package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"ticketboard/internal/domain/permission"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/logger"
)

// ticketPolicies rows are (role, action, rule). Role "*" applies to everyone.
var ticketPolicies = [][]string{
	{authorization.RoleAdmin.String(), permission.ActionMutate, "true"},
	{"*", permission.ActionMutate, "r.sub.ID == r.obj.ReporterID || r.sub.ID == r.obj.AssigneeID"},

	{authorization.RoleAdmin.String(), permission.ActionAssign, "true"},
	{"*", permission.ActionAssign, "r.sub.ID == r.obj.ProposedAssigneeID"},
	{"*", permission.ActionAssign, `r.obj.ProposedAssigneeID == "" && r.sub.ID == r.obj.AssigneeID`},
}

func loadTicketPolicies(enforcer *casbin.Enforcer, log logger.Interface) error {
	for _, policy := range ticketPolicies {
		if _, err := enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add ticket policy",
				"error", err,
				"role", policy[0],
				"action", policy[1])
			return fmt.Errorf("failed to add ticket policy: %w", err)
		}
	}
	return nil
}
