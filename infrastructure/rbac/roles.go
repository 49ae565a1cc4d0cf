package rbac

// Fixed job roles mirrored from the ERP backend configuration. Kept in one
// place so screens never carry their own copies of the enumeration.
const (
	RoleSuperAdmin      = "super_admin"
	RoleAdmin           = "admin"
	RoleManager         = "manager"
	RoleAccountant      = "accountant"
	RoleDeliveryStaff   = "delivery_staff"
	RoleCustomerService = "customer_service"
	RoleGodownKeeper    = "godown_keeper"
)

// StaffRoles are the roles shown and assignable in the user management
// screens, in display order. Admin-tier roles are deliberately absent.
var StaffRoles = []string{
	RoleManager,
	RoleAccountant,
	RoleDeliveryStaff,
	RoleCustomerService,
	RoleGodownKeeper,
}

var adminTier = map[string]struct{}{
	RoleSuperAdmin: {},
	RoleAdmin:      {},
}

// IsAdminTier reports whether role is excluded from staff listings.
func IsAdminTier(role string) bool {
	_, ok := adminTier[role]
	return ok
}

// IsStaffRole reports whether role is one of the fixed assignable job roles.
func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleLabel renders a role constant as UI copy.
func RoleLabel(role string) string {
	switch role {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleAccountant:
		return "Accountant"
	case RoleDeliveryStaff:
		return "Delivery Staff"
	case RoleCustomerService:
		return "Customer Service"
	case RoleGodownKeeper:
		return "Godown Keeper"
	default:
		return role
	}
}
