package agency

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// AgencyPage renders the agency profile editor.
func AgencyPage(data PageData) templ.Component {
	a := data.Agency

	var contacts strings.Builder
	for i := 0; i < MaxContacts; i++ {
		contactType := ""
		number := ""
		if i < len(a.Contacts) {
			contactType = a.Contacts[i].Type
			number = a.Contacts[i].Number
		}
		var options strings.Builder
		for _, t := range ContactTypes {
			selected := ""
			if t == contactType {
				selected = " selected"
			}
			options.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, t, selected, t))
		}
		contacts.WriteString(fmt.Sprintf(`
    <div class="contact-row">
      <select name="contact_type">%s</select>
      <input type="tel" name="contact_number" maxlength="10" value="%s" placeholder="contact %d">
    </div>`, options.String(), html.Esc(number), i+1))
	}

	body := html.StatusBanner(data.Status, data.ErrorMessage) + fmt.Sprintf(`
<section class="card">
  <h1>Agency Profile</h1>
  <form method="POST" action="/desk/agency">
    <input type="hidden" name="agency_id" value="%s">
    <label>Name <input type="text" name="name" value="%s" required></label>
    <label>GST number <input type="text" name="gst_number" value="%s" maxlength="15"></label>
    <fieldset>
      <legend>Address</legend>
      <label>Building <input type="text" name="building" value="%s"></label>
      <label>Place <input type="text" name="place" value="%s"></label>
      <label>Landmark <input type="text" name="landmark" value="%s"></label>
      <label>Street <input type="text" name="street" value="%s"></label>
      <label>City <input type="text" name="city" value="%s"></label>
      <label>District <input type="text" name="district" value="%s"></label>
      <label>State <input type="text" name="state" value="%s"></label>
      <label>Pincode <input type="text" name="pincode" value="%s" maxlength="6"></label>
    </fieldset>
    <fieldset>
      <legend>Contacts (max %d)</legend>%s
    </fieldset>
    <button type="submit" class="btn-primary">Save</button>
  </form>
</section>`,
		html.Esc(a.ID), html.Esc(a.Name), html.Esc(a.GSTNumber),
		html.Esc(a.Address.Building), html.Esc(a.Address.Place), html.Esc(a.Address.Landmark),
		html.Esc(a.Address.Street), html.Esc(a.Address.City), html.Esc(a.Address.District),
		html.Esc(a.Address.State), html.Esc(a.Address.Pincode),
		MaxContacts, contacts.String())
	return html.Document("Agency Profile", data.Nav, body)
}
