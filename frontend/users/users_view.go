package users

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
	"gasdesk/infrastructure/rbac"
)

// UsersListPage renders the role tiles and the filtered staff table.
func UsersListPage(data PageData) templ.Component {
	var tiles strings.Builder
	allClass := "tile"
	if data.AllSelected {
		allClass = "tile tile-selected"
	}
	tiles.WriteString(fmt.Sprintf(`
    <a class="%s" href="/desk/users"><span class="tile-count">%d</span><span class="tile-label">All</span></a>`,
		allClass, data.AllCount))
	for _, t := range data.Tiles {
		class := "tile"
		if t.Selected {
			class = "tile tile-selected"
		}
		tiles.WriteString(fmt.Sprintf(`
    <a class="%s" href="/desk/users?role=%s"><span class="tile-count">%d</span><span class="tile-label">%s</span></a>`,
			class, html.Esc(t.Role), t.Count, html.Esc(t.Label)))
	}

	var rows strings.Builder
	for _, row := range data.Rows {
		statusLabel := "Active"
		statusClass := "pill pill-active"
		if !row.IsActive {
			statusLabel = "Inactive"
			statusClass = "pill pill-inactive"
		}
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td>%s</td>
        <td>%s</td>
        <td>%s</td>
        <td>%s</td>
        <td>%s</td>
        <td><span class="%s">%s</span></td>
        <td class="row-actions">
          <a class="btn-link" href="/desk/users/%s/edit">Edit</a>
          <form method="POST" action="/desk/users/%s/status">
            <input type="hidden" name="current" value="%t">
            <button type="submit" class="btn-link">Toggle</button>
          </form>
          <form method="POST" action="/desk/users/%s/delete" onsubmit="return confirm('Delete user %s?');">
            <button type="submit" class="btn-link btn-danger">Delete</button>
          </form>
        </td>
      </tr>`,
			html.Esc(row.Name), html.Esc(row.Username), html.Esc(row.Email),
			html.Esc(row.Mobile), html.Esc(row.Role), statusClass, statusLabel,
			html.Esc(row.ID), html.Esc(row.ID), row.IsActive,
			html.Esc(row.ID), html.Esc(row.Name)))
	}
	if len(data.Rows) == 0 {
		rows.WriteString(`
      <tr><td colspan="7" class="empty">No staff users</td></tr>`)
	}

	statsNote := ""
	if data.StatsFailed {
		statsNote = `<div class="banner banner-error">Role counts are unavailable right now</div>`
	}

	body := html.StatusBanner(data.Status, data.ErrorMessage) + statsNote + fmt.Sprintf(`
<section class="card">
  <div class="card-head">
    <h1>Staff Users</h1>
    <a class="btn-primary" href="/desk/users/new">Add User</a>
  </div>
  <div class="tiles">%s
  </div>
  <table class="list">
    <thead>
      <tr><th>Name</th><th>Username</th><th>Email</th><th>Mobile</th><th>Role</th><th>Status</th><th></th></tr>
    </thead>
    <tbody>%s
    </tbody>
  </table>
</section>`, tiles.String(), rows.String())
	return html.Document("Staff Users", data.Nav, body)
}

// UserFormPage renders the shared create/edit form.
func UserFormPage(data FormData) templ.Component {
	title := "Add User"
	action := "/desk/users/new"
	passwordNote := "required"
	if data.IsEdit {
		title = "Edit User"
		action = "/desk/users/" + data.User.ID + "/edit"
		passwordNote = "leave blank to keep current"
	}

	var roles strings.Builder
	for _, role := range data.Roles {
		selected := ""
		if role == data.User.Role {
			selected = " selected"
		}
		roles.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`,
			html.Esc(role), selected, html.Esc(rbac.RoleLabel(role))))
	}

	granted := make(map[string]bool, len(data.User.Permissions))
	for _, p := range data.User.Permissions {
		granted[p] = true
	}
	var perms strings.Builder
	for _, perm := range data.Permissions {
		checked := ""
		if granted[perm] {
			checked = " checked"
		}
		perms.WriteString(fmt.Sprintf(`
      <label class="check"><input type="checkbox" name="permissions" value="%s"%s> %s</label>`,
			html.Esc(perm), checked, html.Esc(rbac.PermissionLabel(perm))))
	}

	passwordRequired := ""
	if !data.IsEdit {
		passwordRequired = " required"
	}

	body := html.StatusBanner("", data.ErrorMessage) + fmt.Sprintf(`
<section class="card">
  <h1>%s</h1>
  <form method="POST" action="%s">
    <label>Name <input type="text" name="name" value="%s" required></label>
    <label>Username <input type="text" name="username" value="%s" required></label>
    <label>Email <input type="email" name="email" value="%s"></label>
    <label>Mobile <input type="tel" name="mobile" value="%s" maxlength="10"></label>
    <label>Password (%s) <input type="password" name="password"%s></label>
    <label>Job role <select name="role" required>%s</select></label>
    <fieldset>
      <legend>Permissions</legend>%s
    </fieldset>
    <label class="check"><input type="checkbox" name="is_active" value="1"%s> Active</label>
    <div class="form-actions">
      <button type="submit" class="btn-primary">Save</button>
      <a class="btn-link" href="/desk/users">Cancel</a>
    </div>
  </form>
</section>`,
		title, action,
		html.Esc(data.User.Name), html.Esc(data.User.Username),
		html.Esc(data.User.Email), html.Esc(data.User.Mobile),
		passwordNote, passwordRequired, roles.String(), perms.String(),
		activeChecked(data))
	return html.Document(title, data.Nav, body)
}

func activeChecked(data FormData) string {
	if !data.IsEdit || data.User.IsActive {
		return " checked"
	}
	return ""
}
