package rbac

// Role constants
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Permission constants
const (
	PermCreatePractice  = "create_practice"
	PermCreateService   = "create_service"
	PermPurchaseService = "purchase_service"
	PermViewAnalytics   = "view_analytics"
	PermClaimWallet     = "claim_wallet"
)

// RolePermissions defines what each role can do.
var RolePermissions = map[string][]string{
	RoleDoctor: {
		PermCreatePractice, PermCreateService, PermViewAnalytics, PermClaimWallet,
	},
	RolePatient: {
		PermPurchaseService, PermClaimWallet,
	},
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role, permission string) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
