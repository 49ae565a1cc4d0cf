package godowns

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"gasdesk/frontend/shared/nav"
	"gasdesk/infrastructure/erp"
)

// GodownsPageQueryHandler renders the standalone godown settings page.
func GodownsPageQueryHandler(api *erp.Client) http.HandlerFunc {
	return pageHandler(api, false)
}

// GeneralSettingsTabQueryHandler renders the same godown list inside the
// general settings shell.
func GeneralSettingsTabQueryHandler(api *erp.Client) http.HandlerFunc {
	return pageHandler(api, true)
}

func pageHandler(api *erp.Client, embedded bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := LoadRows(r.Context(), api)
		if err != nil {
			slog.Error("load godowns failed", slog.Any("err", err))
			http.Error(w, "failed to load godowns", http.StatusInternalServerError)
			return
		}
		data := PageData{
			Rows:         rows,
			Nav:          nav.FromRequest(r),
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
			Embedded:     embedded,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := GodownsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render godowns", http.StatusInternalServerError)
			return
		}
	}
}

// CreateGodownCommandHandler adds a godown. Only the name is required.
func CreateGodownCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnPath := returnTo(r)
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, returnPath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}
		godown, err := parseGodownForm(r)
		if err != nil {
			http.Redirect(w, r, returnPath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.CreateStockLocation(r.Context(), godown)
		if err != nil {
			http.Redirect(w, r, returnPath+"?error="+url.QueryEscape(godownErrorMessage(err, "failed to add godown")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "godown added"
		}
		http.Redirect(w, r, returnPath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

// UpdateGodownCommandHandler edits an existing godown.
func UpdateGodownCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		returnPath := returnTo(r)
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, returnPath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}
		godown, err := parseGodownForm(r)
		if err != nil {
			http.Redirect(w, r, returnPath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		godown.ID = chi.URLParam(r, "id")
		if godown.ID == "" {
			http.Redirect(w, r, returnPath+"?error="+url.QueryEscape("missing godown id"), http.StatusSeeOther)
			return
		}

		message, err := api.UpdateStockLocation(r.Context(), godown)
		if err != nil {
			http.Redirect(w, r, returnPath+"?error="+url.QueryEscape(godownErrorMessage(err, "failed to update godown")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "godown updated"
		}
		http.Redirect(w, r, returnPath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

func parseGodownForm(r *http.Request) (erp.Godown, error) {
	godown := erp.Godown{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Code:          strings.TrimSpace(r.FormValue("code")),
		Address:       strings.TrimSpace(r.FormValue("address")),
		ContactNumber: strings.TrimSpace(r.FormValue("contact_number")),
		Notes:         strings.TrimSpace(r.FormValue("notes")),
		IsActive:      true,
	}
	if godown.Name == "" {
		return erp.Godown{}, errors.New("godown name is required")
	}
	return godown, nil
}

// returnTo picks the shell to land back on. Both the standalone page and
// the general-settings tab post to the same command routes.
func returnTo(r *http.Request) string {
	if r.URL.Query().Get("return") == "general" {
		return "/desk/settings/general"
	}
	return "/desk/settings/godowns"
}

func godownErrorMessage(err error, fallback string) string {
	var apiErr *erp.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	slog.Error("godown request failed", slog.Any("err", err))
	return fallback
}
