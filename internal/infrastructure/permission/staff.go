package permission

import (
	"fmt"
	"strings"

	"github.com/hartlaw/hartlaw/internal/domain/permission"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// InitStaffPermissions grants the staff role billing writes and puts every
// configured id in that role. Safe to run on every start.
func InitStaffPermissions(enforcer permission.PermissionEnforcer, staffUserIDs []string, log logger.Interface) error {
	if err := enforcer.AddPolicy(permission.RoleStaff, permission.ResourceBilling, permission.ActionWrite); err != nil {
		return fmt.Errorf("failed to add staff policy: %w", err)
	}

	granted := 0
	for _, id := range staffUserIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if err := enforcer.AddRoleForUser(id, permission.RoleStaff); err != nil {
			return fmt.Errorf("failed to grant staff role to %s: %w", id, err)
		}
		granted++
	}

	log.Infow("staff permissions initialized", "staff_count", granted)
	return nil
}

// StaffChecker answers whether an actor may perform privileged operations.
type StaffChecker struct {
	enforcer permission.PermissionEnforcer
}

func NewStaffChecker(enforcer permission.PermissionEnforcer) *StaffChecker {
	return &StaffChecker{enforcer: enforcer}
}

func (c *StaffChecker) IsStaff(actorID string) (bool, error) {
	if actorID == "" {
		return false, nil
	}
	return c.enforcer.Enforce(actorID, permission.ResourceBilling, permission.ActionWrite)
}
