package register

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"gasdesk/infrastructure/erp"
)

// RegisterPageQueryHandler renders the agency registration form.
func RegisterPageQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := RegisterPage(r.URL.Query().Get("error"), r.URL.Query().Get("status")).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render registration page", http.StatusInternalServerError)
			return
		}
	}
}

// RegisterCommandHandler creates an agency together with its admin user.
func RegisterCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/register?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		input := erp.RegisterInput{
			AgencyName: strings.TrimSpace(r.FormValue("agency_name")),
			GSTNumber:  strings.TrimSpace(r.FormValue("gst_number")),
			AdminName:  strings.TrimSpace(r.FormValue("admin_name")),
			Email:      strings.TrimSpace(r.FormValue("email")),
			Mobile:     strings.TrimSpace(r.FormValue("mobile")),
			Username:   strings.TrimSpace(r.FormValue("username")),
			Password:   strings.TrimSpace(r.FormValue("password")),
			Address: erp.AgencyAddress{
				Building: strings.TrimSpace(r.FormValue("building")),
				Place:    strings.TrimSpace(r.FormValue("place")),
				Landmark: strings.TrimSpace(r.FormValue("landmark")),
				Street:   strings.TrimSpace(r.FormValue("street")),
				City:     strings.TrimSpace(r.FormValue("city")),
				District: strings.TrimSpace(r.FormValue("district")),
				State:    strings.TrimSpace(r.FormValue("state")),
				Pincode:  strings.TrimSpace(r.FormValue("pincode")),
			},
		}
		if input.AgencyName == "" || input.Username == "" || input.Password == "" {
			http.Redirect(w, r, "/register?error="+url.QueryEscape("agency name, username and password are required"), http.StatusSeeOther)
			return
		}

		message, err := api.Register(r.Context(), input)
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Redirect(w, r, "/register?error="+url.QueryEscape(apiErr.Message), http.StatusSeeOther)
				return
			}
			slog.Error("register request failed", slog.Any("err", err))
			http.Redirect(w, r, "/register?error="+url.QueryEscape("registration is unavailable, try again"), http.StatusSeeOther)
			return
		}

		if message == "" {
			message = "agency registered, sign in to continue"
		}
		http.Redirect(w, r, "/login?error="+url.QueryEscape(message), http.StatusSeeOther)
	}
}
