package agency

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"gasdesk/frontend/shared/nav"
	"gasdesk/infrastructure/erp"
)

// AgencyPageQueryHandler renders the agency profile editor with the current
// server copy.
func AgencyPageQueryHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agency, err := api.MyAgency(r.Context())
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Error(w, apiErr.Message, http.StatusBadGateway)
				return
			}
			slog.Error("load agency failed", slog.Any("err", err))
			http.Error(w, "failed to load agency profile", http.StatusInternalServerError)
			return
		}

		data := PageData{
			Agency:       agency,
			Nav:          nav.FromRequest(r),
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := AgencyPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render agency page", http.StatusInternalServerError)
			return
		}
	}
}

// UpdateAgencyCommandHandler submits the edited agency copy to the ERP.
func UpdateAgencyCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/desk/agency?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		agency, err := parseAgencyForm(r)
		if err != nil {
			http.Redirect(w, r, "/desk/agency?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.UpdateMyAgency(r.Context(), agency)
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Redirect(w, r, "/desk/agency?error="+url.QueryEscape(apiErr.Message), http.StatusSeeOther)
				return
			}
			slog.Error("update agency failed", slog.Any("err", err))
			http.Redirect(w, r, "/desk/agency?error="+url.QueryEscape("failed to save agency profile"), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "agency profile saved"
		}
		http.Redirect(w, r, "/desk/agency?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

func parseAgencyForm(r *http.Request) (erp.Agency, error) {
	agency := erp.Agency{
		ID:        strings.TrimSpace(r.FormValue("agency_id")),
		Name:      strings.TrimSpace(r.FormValue("name")),
		GSTNumber: strings.TrimSpace(r.FormValue("gst_number")),
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
	if agency.Name == "" {
		return erp.Agency{}, errors.New("agency name is required")
	}

	types := r.Form["contact_type"]
	numbers := r.Form["contact_number"]
	for i := range numbers {
		number := strings.TrimSpace(numbers[i])
		if number == "" {
			continue
		}
		contactType := "office"
		if i < len(types) && strings.TrimSpace(types[i]) != "" {
			contactType = strings.TrimSpace(types[i])
		}
		agency.Contacts = append(agency.Contacts, erp.Contact{Type: contactType, Number: number})
	}
	if len(agency.Contacts) > MaxContacts {
		return erp.Agency{}, errors.New("an agency can have at most 3 contacts")
	}
	return agency, nil
}
