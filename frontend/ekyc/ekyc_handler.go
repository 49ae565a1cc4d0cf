package ekyc

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"gasdesk/frontend/shared/nav"
)

// PageData backs the capture form with its per-field problems.
type PageData struct {
	Record   Record
	Problems map[string]string
	// Validated flags a submission that passed every rule.
	Validated bool
	Nav       string
}

// KycPageQueryHandler renders the empty capture form.
func KycPageQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{Problems: map[string]string{}, Nav: nav.FromRequest(r)}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := KycPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render ekyc form", http.StatusInternalServerError)
			return
		}
	}
}

// ValidateKycCommandHandler runs the schema and re-renders the form, either
// with per-field problems or with a validated banner. The capture is local:
// the form exists to pre-check customer details before they are keyed into
// the distributor portal.
func ValidateKycCommandHandler(v *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}

		record := recordFromForm(r)
		problems := Validate(v, record)
		data := PageData{
			Record:    record,
			Problems:  problems,
			Validated: len(problems) == 0,
			Nav:       nav.FromRequest(r),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := KycPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render ekyc form", http.StatusInternalServerError)
			return
		}
	}
}

func recordFromForm(r *http.Request) Record {
	field := func(name string) string {
		return strings.TrimSpace(r.FormValue(name))
	}
	return Record{
		Salutation:   field("salutation"),
		FirstName:    field("first_name"),
		LastName:     field("last_name"),
		DateOfBirth:  field("date_of_birth"),
		Mobile:       field("mobile"),
		Email:        field("email"),
		HouseNumber:  field("house_number"),
		Street:       field("street"),
		City:         field("city"),
		District:     field("district"),
		State:        field("state"),
		Pincode:      field("pincode"),
		AadhaarLast4: field("aadhaar_last4"),
		RationCardNo: field("ration_card_no"),
	}
}
