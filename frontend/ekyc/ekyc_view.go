package ekyc

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// KycPage renders the capture form with inline per-field problems.
func KycPage(data PageData) templ.Component {
	problem := func(field string) string {
		if msg, ok := data.Problems[field]; ok {
			return `<span class="field-error">` + html.Esc(msg) + `</span>`
		}
		return ""
	}

	var salutations strings.Builder
	salutations.WriteString(`<option value="">Select</option>`)
	for _, s := range Salutations {
		selected := ""
		if s == data.Record.Salutation {
			selected = " selected"
		}
		salutations.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, s, selected, s))
	}

	banner := ""
	if data.Validated {
		banner = `<div class="banner banner-ok">All details pass eKYC validation</div>`
	} else if msg, ok := data.Problems[""]; ok {
		banner = `<div class="banner banner-error">` + html.Esc(msg) + `</div>`
	}

	rec := data.Record
	body := banner + fmt.Sprintf(`
<section class="card">
  <h1>eKYC Validation</h1>
  <p class="hint">Pre-check customer details before entry into the distributor portal.</p>
  <form method="POST" action="/desk/ekyc">
    <label>Salutation <select name="salutation">%s</select>%s</label>
    <label>First name <input type="text" name="first_name" value="%s" maxlength="30">%s</label>
    <label>Last name <input type="text" name="last_name" value="%s" maxlength="30">%s</label>
    <label>Date of birth <input type="date" name="date_of_birth" value="%s">%s</label>
    <label>Mobile <input type="tel" name="mobile" value="%s" maxlength="10">%s</label>
    <label>Email (optional) <input type="email" name="email" value="%s" maxlength="50">%s</label>
    <fieldset>
      <legend>Address</legend>
      <label>House number <input type="text" name="house_number" value="%s" maxlength="20">%s</label>
      <label>Street <input type="text" name="street" value="%s" maxlength="40">%s</label>
      <label>City <input type="text" name="city" value="%s" maxlength="30">%s</label>
      <label>District <input type="text" name="district" value="%s" maxlength="30">%s</label>
      <label>State <input type="text" name="state" value="%s" maxlength="30">%s</label>
      <label>Pincode <input type="text" name="pincode" value="%s" maxlength="6">%s</label>
    </fieldset>
    <fieldset>
      <legend>Identity</legend>
      <label>Aadhaar (last 4 digits) <input type="text" name="aadhaar_last4" value="%s" maxlength="4">%s</label>
      <label>Ration card number (optional) <input type="text" name="ration_card_no" value="%s" maxlength="12">%s</label>
    </fieldset>
    <button type="submit" class="btn-primary">Validate</button>
  </form>
</section>`,
		salutations.String(), problem("Salutation"),
		html.Esc(rec.FirstName), problem("FirstName"),
		html.Esc(rec.LastName), problem("LastName"),
		html.Esc(rec.DateOfBirth), problem("DateOfBirth"),
		html.Esc(rec.Mobile), problem("Mobile"),
		html.Esc(rec.Email), problem("Email"),
		html.Esc(rec.HouseNumber), problem("HouseNumber"),
		html.Esc(rec.Street), problem("Street"),
		html.Esc(rec.City), problem("City"),
		html.Esc(rec.District), problem("District"),
		html.Esc(rec.State), problem("State"),
		html.Esc(rec.Pincode), problem("Pincode"),
		html.Esc(rec.AadhaarLast4), problem("AadhaarLast4"),
		html.Esc(rec.RationCardNo), problem("RationCardNo"))
	return html.Document("eKYC", data.Nav, body)
}
