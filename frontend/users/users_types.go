package users

import "gasdesk/infrastructure/erp"

// RoleTile is one click-to-filter dashboard tile.
type RoleTile struct {
	Role     string
	Label    string
	Count    int
	Selected bool
}

// UserRow is a list row after admin-tier filtering and overlay application.
type UserRow struct {
	ID       string
	Name     string
	Email    string
	Mobile   string
	Username string
	Role     string
	IsActive bool
}

type PageData struct {
	Tiles        []RoleTile
	AllCount     int
	AllSelected  bool
	Rows         []UserRow
	Nav          string
	Status       string
	ErrorMessage string
	// StatsFailed flags the stats fetch failing while the user list loaded;
	// the list renders without tiles rather than failing the page.
	StatsFailed bool
}

// FormData backs the shared create/edit form.
type FormData struct {
	IsEdit       bool
	User         erp.User
	Roles        []string
	Permissions  []string
	Nav          string
	ErrorMessage string
}
