package rbac

// Capability flags toggled per user, additive to role-implied permissions.
// Role-implied permissions are applied server-side and never reflected here.
const (
	PermCreateManager   = "CREATE_MANAGER"
	PermCreateStaff     = "CREATE_STAFF"
	PermViewReports     = "VIEW_REPORTS"
	PermManageInventory = "MANAGE_INVENTORY"
	PermManageCustomers = "MANAGE_CUSTOMERS"
	PermApproveVouchers = "APPROVE_VOUCHERS"
	PermManageGodowns   = "MANAGE_GODOWNS"
	PermViewFinance     = "VIEW_FINANCE"
)

// Permissions is the fixed capability list, in display order.
var Permissions = []string{
	PermCreateManager,
	PermCreateStaff,
	PermViewReports,
	PermManageInventory,
	PermManageCustomers,
	PermApproveVouchers,
	PermManageGodowns,
	PermViewFinance,
}

// PermissionLabel renders a capability flag as UI copy.
func PermissionLabel(perm string) string {
	switch perm {
	case PermCreateManager:
		return "Create managers"
	case PermCreateStaff:
		return "Create staff"
	case PermViewReports:
		return "View reports"
	case PermManageInventory:
		return "Manage inventory"
	case PermManageCustomers:
		return "Manage customers"
	case PermApproveVouchers:
		return "Approve vouchers"
	case PermManageGodowns:
		return "Manage godowns"
	case PermViewFinance:
		return "View finance"
	default:
		return perm
	}
}

// IsKnownPermission reports whether perm is part of the fixed capability set.
func IsKnownPermission(perm string) bool {
	for _, p := range Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
