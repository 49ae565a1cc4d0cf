package users

import (
	"context"
	"log/slog"
	"sync"

	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
	"gasdesk/infrastructure/rbac"
)

// ListData is the combined result of the parallel users and stats fetches.
type ListData struct {
	Users       []erp.User
	Stats       map[string]int
	StatsFailed bool
}

// LoadListData fetches users and per-role stats in parallel. The two reads
// are independent: a stats failure degrades the tiles but never cancels the
// user list, and vice versa a users failure is returned while any stats are
// discarded with the page.
func LoadListData(ctx context.Context, api *erp.Client, overlay *cache.StatusOverlayCache) (ListData, error) {
	var (
		wg       sync.WaitGroup
		users    []erp.User
		usersErr error
		stats    map[string]int
		statsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, usersErr = api.ListUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = api.AgencyStats(ctx)
	}()
	wg.Wait()

	if usersErr != nil {
		return ListData{}, usersErr
	}
	if statsErr != nil {
		slog.Error("agency stats fetch failed", slog.Any("err", statsErr))
	}

	filtered := make([]erp.User, 0, len(users))
	for _, u := range users {
		if rbac.IsAdminTier(u.Role) {
			continue
		}
		overlay.Reconcile(u.ID, u.IsActive)
		if optimistic, ok := overlay.Get(u.ID); ok {
			u.IsActive = optimistic
		}
		filtered = append(filtered, u)
	}

	return ListData{Users: filtered, Stats: stats, StatsFailed: statsErr != nil}, nil
}

// BuildTiles derives the role filter tiles from the stats payload. Admin
// tier roles are never shown.
func BuildTiles(stats map[string]int, selectedRole string) []RoleTile {
	tiles := make([]RoleTile, 0, len(rbac.StaffRoles))
	for _, role := range rbac.StaffRoles {
		tiles = append(tiles, RoleTile{
			Role:     role,
			Label:    rbac.RoleLabel(role),
			Count:    stats[role],
			Selected: role == selectedRole,
		})
	}
	return tiles
}

// FilterByRole keeps rows matching role, or all rows when role is empty.
func FilterByRole(users []erp.User, role string) []erp.User {
	if role == "" {
		return users
	}
	out := make([]erp.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}
