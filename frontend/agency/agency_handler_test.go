package agency

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newAgencyForm(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/desk/agency", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseAgencyForm_ContactsCapped(t *testing.T) {
	req := newAgencyForm(url.Values{
		"name":           {"Sree Gas"},
		"contact_type":   {"office", "mobile", "whatsapp", "office"},
		"contact_number": {"0471001100", "9800000001", "9800000002", "9800000003"},
	})
	if err := req.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}

	if _, err := parseAgencyForm(req); err == nil {
		t.Fatalf("expected error for more than 3 contacts")
	}
}

func TestParseAgencyForm_SkipsBlankContacts(t *testing.T) {
	req := newAgencyForm(url.Values{
		"name":           {"Sree Gas"},
		"pincode":        {"695001"},
		"contact_type":   {"office", "mobile", "whatsapp"},
		"contact_number": {"0471001100", "", "  "},
	})
	if err := req.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}

	agency, err := parseAgencyForm(req)
	if err != nil {
		t.Fatalf("parse agency: %v", err)
	}
	if len(agency.Contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(agency.Contacts))
	}
	if agency.Contacts[0].Type != "office" || agency.Contacts[0].Number != "0471001100" {
		t.Fatalf("unexpected contact %+v", agency.Contacts[0])
	}
	if agency.Address.Pincode != "695001" {
		t.Fatalf("expected structured address to carry pincode")
	}
}

func TestParseAgencyForm_NameRequired(t *testing.T) {
	req := newAgencyForm(url.Values{"name": {"  "}})
	if err := req.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	if _, err := parseAgencyForm(req); err == nil {
		t.Fatalf("expected error for blank name")
	}
}
