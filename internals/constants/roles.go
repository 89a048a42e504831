package constants

// Role user pada sistem. SUPER_ADMIN mengelola semua conference,
// admin per-conference hanya boleh menulis di conference miliknya.
const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleAdminICICYTA = "ADMIN_ICICYTA"
	RoleAdminICODSA  = "ADMIN_ICODSA"
)

var AllRoles = []string{
	RoleSuperAdmin,
	RoleAdminICICYTA,
	RoleAdminICODSA,
}

// Role yang boleh dibuat lewat endpoint user.
// SUPER_ADMIN hanya dibuat lewat seeder, bukan via API.
var AssignableRoles = []string{
	RoleAdminICICYTA,
	RoleAdminICODSA,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsAssignableRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}
