package login

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"gasdesk/infrastructure/argon"
	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
	"gasdesk/infrastructure/rbac"
	sessioncookie "gasdesk/infrastructure/session"
	"gasdesk/infrastructure/sqlite"
	"gasdesk/models"
)

// CreateLoginHandler authenticates the operator against the remote ERP and
// issues a local session cookie on success.
func CreateLoginHandler(db *sqlite.DB, api *erp.Client, sessionCache *cache.UserSessionCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))
		if username == "" || password == "" {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("username and password are required"), http.StatusSeeOther)
			return
		}

		identity, _, err := api.Login(r.Context(), username, password)
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Redirect(w, r, "/login?error="+url.QueryEscape(apiErr.Message), http.StatusSeeOther)
				return
			}
			slog.Error("login request failed", slog.Any("err", err))
			http.Redirect(w, r, "/login?error="+url.QueryEscape("login is unavailable, try again"), http.StatusSeeOther)
			return
		}

		// Hash the password now so destructive actions can re-check it
		// without another round trip to the ERP.
		reauthHash, err := argon.CreateHash(password, argon.DefaultParams)
		if err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("failed to create session"), http.StatusSeeOther)
			return
		}

		session := newSession(username, identity, reauthHash)
		if err := persistSession(r.Context(), db, session); err != nil {
			slog.Error("persist session failed", slog.Any("err", err))
			http.Redirect(w, r, "/login?error="+url.QueryEscape("failed to create session"), http.StatusSeeOther)
			return
		}
		sessionCache.AddSession(session)

		http.SetCookie(w, sessioncookie.SessionCookie(session.ID, int(sessioncookie.TTL.Seconds())))
		http.Redirect(w, r, "/desk/users", http.StatusSeeOther)
	}
}

func newSession(username string, identity erp.LoginResult, reauthHash string) models.Session {
	role := identity.Role
	if role == "" {
		// The login contract only guarantees {success, message}; without an
		// attached identity the operator is treated as agency admin.
		role = rbac.RoleAdmin
	}
	return models.Session{
		ID:          newSessionToken(),
		Username:    username,
		Name:        identity.Name,
		Role:        role,
		ReauthHash:  reauthHash,
		Permissions: identity.Permissions,
		ExpiresAt:   sessioncookie.DefaultExpiry(),
	}
}
