package users

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gasdesk/frontend/shared/nav"
	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
	"gasdesk/infrastructure/rbac"
)

const basePath = "/desk/users"

// statusDispatchTimeout bounds the background toggle request, which outlives
// the originating request context.
const statusDispatchTimeout = 30 * time.Second

// UsersPageQueryHandler renders the staff list with its role filter tiles.
func UsersPageQueryHandler(api *erp.Client, overlay *cache.StatusOverlayCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := LoadListData(r.Context(), api, overlay)
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Error(w, apiErr.Message, http.StatusBadGateway)
				return
			}
			slog.Error("load users failed", slog.Any("err", err))
			http.Error(w, "failed to load users", http.StatusInternalServerError)
			return
		}

		selectedRole := strings.TrimSpace(r.URL.Query().Get("role"))
		rows := make([]UserRow, 0, len(list.Users))
		for _, u := range FilterByRole(list.Users, selectedRole) {
			rows = append(rows, UserRow{
				ID:       u.ID,
				Name:     u.Name,
				Email:    u.Email,
				Mobile:   u.Mobile,
				Username: u.Username,
				Role:     rbac.RoleLabel(u.Role),
				IsActive: u.IsActive,
			})
		}

		data := PageData{
			Tiles:        BuildTiles(list.Stats, selectedRole),
			AllCount:     len(list.Users),
			AllSelected:  selectedRole == "",
			Rows:         rows,
			Nav:          nav.FromRequest(r),
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
			StatsFailed:  list.StatsFailed,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := UsersListPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render users page", http.StatusInternalServerError)
			return
		}
	}
}

// UserFormPageQueryHandler renders the shared create/edit form. Edit mode
// resolves the user from a fresh list fetch; the contract has no single-user
// read.
func UserFormPageQueryHandler(api *erp.Client, overlay *cache.StatusOverlayCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := FormData{
			Roles:        rbac.StaffRoles,
			Permissions:  rbac.Permissions,
			Nav:          nav.FromRequest(r),
			ErrorMessage: r.URL.Query().Get("error"),
		}

		if id := chi.URLParam(r, "id"); id != "" {
			list, err := LoadListData(r.Context(), api, overlay)
			if err != nil {
				http.Error(w, "failed to load user", http.StatusInternalServerError)
				return
			}
			found := false
			for _, u := range list.Users {
				if u.ID == id {
					data.IsEdit = true
					data.User = u
					found = true
					break
				}
			}
			if !found {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := UserFormPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render user form", http.StatusInternalServerError)
			return
		}
	}
}

// CreateUserCommandHandler creates a staff user.
func CreateUserCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"/new?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		user, err := parseUserForm(r, false)
		if err != nil {
			http.Redirect(w, r, basePath+"/new?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.CreateUser(r.Context(), user)
		if err != nil {
			http.Redirect(w, r, basePath+"/new?error="+url.QueryEscape(userErrorMessage(err, "failed to create user")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "user created"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

// UpdateUserCommandHandler updates an existing staff user.
func UpdateUserCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"/"+id+"/edit?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		user, err := parseUserForm(r, true)
		if err != nil {
			http.Redirect(w, r, basePath+"/"+id+"/edit?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.UpdateUser(r.Context(), id, user)
		if err != nil {
			http.Redirect(w, r, basePath+"/"+id+"/edit?error="+url.QueryEscape(userErrorMessage(err, "failed to update user")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "user updated"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

// DeleteUserCommandHandler removes a staff user. The view wraps the action
// in a confirmation prompt before the form submits.
func DeleteUserCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		message, err := api.DeleteUser(r.Context(), id)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(userErrorMessage(err, "failed to delete user")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "user deleted"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

// ToggleStatusCommandHandler flips a user's displayed status immediately and
// dispatches the remote toggle in the background. There is no rollback when
// the server rejects the toggle; the next refetch shows server truth.
func ToggleStatusCommandHandler(api *erp.Client, overlay *cache.StatusOverlayCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		newState := r.FormValue("current") != "true"
		overlay.Set(id, newState)

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), statusDispatchTimeout)
			defer cancel()
			if _, err := api.SetUserStatus(ctx, id, newState); err != nil {
				slog.Error("status toggle dispatch failed", slog.String("user_id", id), slog.Any("err", err))
			}
		}()

		http.Redirect(w, r, basePath, http.StatusSeeOther)
	}
}

func parseUserForm(r *http.Request, isEdit bool) (erp.User, error) {
	user := erp.User{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Mobile:   strings.TrimSpace(r.FormValue("mobile")),
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: strings.TrimSpace(r.FormValue("password")),
		Role:     strings.TrimSpace(r.FormValue("role")),
		IsActive: r.FormValue("is_active") != "",
	}
	if user.Name == "" || user.Username == "" {
		return erp.User{}, errors.New("name and username are required")
	}
	if !rbac.IsStaffRole(user.Role) {
		return erp.User{}, errors.New("select a valid job role")
	}
	if user.Password == "" {
		if !isEdit {
			return erp.User{}, errors.New("password is required")
		}
	} else if err := ValidatePasswordPolicy(user.Password); err != nil {
		return erp.User{}, err
	}

	for _, perm := range r.Form["permissions"] {
		if rbac.IsKnownPermission(perm) {
			user.Permissions = append(user.Permissions, perm)
		}
	}
	return user, nil
}

func userErrorMessage(err error, fallback string) string {
	var apiErr *erp.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	slog.Error("user request failed", slog.Any("err", err))
	return fallback
}
