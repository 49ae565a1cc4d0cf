package rbac

import (
	"net/http"
	"testing"

	"gasdesk/infrastructure/cache"
)

func TestValidateResourceAccess(t *testing.T) {
	c := cache.NewRbacRolesCache()
	r := New(c)
	r.Add(RoleAdmin, "USERS_LIST_VIEW", http.MethodGet, "/desk/users")
	r.Add(RoleSuperAdmin, "AGENCY_DELETE", http.MethodPost, "/desk/agency-delete/*")

	cases := []struct {
		name   string
		roles  []string
		path   string
		method string
		want   bool
	}{
		{name: "exact match", roles: []string{RoleAdmin}, path: "/desk/users", method: "GET", want: true},
		{name: "method mismatch", roles: []string{RoleAdmin}, path: "/desk/users", method: "POST", want: false},
		{name: "role mismatch", roles: []string{RoleManager}, path: "/desk/users", method: "GET", want: false},
		{name: "prefix wildcard", roles: []string{RoleSuperAdmin}, path: "/desk/agency-delete/confirm", method: "POST", want: true},
		{name: "no roles", roles: nil, path: "/desk/users", method: "GET", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resources := c.GetRolesAndResources(tc.roles)
			got := ValidateResourceAccess(resources, tc.path, tc.method)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIsAdminTier(t *testing.T) {
	if !IsAdminTier(RoleAdmin) || !IsAdminTier(RoleSuperAdmin) {
		t.Fatalf("admin tier roles must be flagged")
	}
	for _, role := range StaffRoles {
		if IsAdminTier(role) {
			t.Fatalf("staff role %s must not be admin tier", role)
		}
	}
}

func TestIsKnownPermission(t *testing.T) {
	if !IsKnownPermission(PermViewReports) {
		t.Fatalf("expected fixed permission to be known")
	}
	if IsKnownPermission("DROP_TABLES") {
		t.Fatalf("unexpected permission accepted")
	}
}
