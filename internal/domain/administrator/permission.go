package administrator

type Permission string

const (
	// Time logs
	PermissionTimeLogView   Permission = "time_log.view"
	PermissionTimeLogManage Permission = "time_log.manage"

	// Live presence
	PermissionPresenceView     Permission = "presence.view"
	PermissionPresenceOverride Permission = "presence.override"

	// Staff
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Vacations
	PermissionVacationView   Permission = "vacation.view"
	PermissionVacationManage Permission = "vacation.manage"

	// Establishment
	PermissionEstablishmentView   Permission = "establishment.view"
	PermissionEstablishmentManage Permission = "establishment.manage"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionTimeLogView,
		PermissionTimeLogManage,
		PermissionPresenceView,
		PermissionPresenceOverride,
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionVacationView,
		PermissionVacationManage,
		PermissionEstablishmentView,
		PermissionEstablishmentManage,
		PermissionDashboardView,
	},
	RoleManager: {
		PermissionTimeLogView,
		PermissionTimeLogManage,
		PermissionPresenceView,
		PermissionPresenceOverride,
		PermissionEmployeeView,
		PermissionVacationView,
		PermissionVacationManage,
		PermissionEstablishmentView,
		PermissionDashboardView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
