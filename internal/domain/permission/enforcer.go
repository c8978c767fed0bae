// Package permission holds the single authorization question the engine
// asks: is this actor privileged staff.
package permission

const (
	RoleStaff       = "staff"
	ResourceBilling = "billing"
	ActionWrite     = "write"
)

type PermissionEnforcer interface {
	Enforce(userID string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	AddRoleForUser(userID string, role string) error
	GetRolesForUser(userID string) ([]string, error)
	LoadPolicy() error
}
