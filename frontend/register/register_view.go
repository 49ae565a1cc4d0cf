package register

import (
	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// RegisterPage renders the agency + admin registration form.
func RegisterPage(errorMessage, status string) templ.Component {
	body := html.StatusBanner(status, errorMessage) + `
<section class="card">
  <h1>Register Agency</h1>
  <form method="POST" action="/register">
    <fieldset>
      <legend>Agency</legend>
      <label>Agency name <input type="text" name="agency_name" required></label>
      <label>GST number <input type="text" name="gst_number"></label>
      <label>Building <input type="text" name="building"></label>
      <label>Place <input type="text" name="place"></label>
      <label>Landmark <input type="text" name="landmark"></label>
      <label>Street <input type="text" name="street"></label>
      <label>City <input type="text" name="city"></label>
      <label>District <input type="text" name="district"></label>
      <label>State <input type="text" name="state"></label>
      <label>Pincode <input type="text" name="pincode" maxlength="6"></label>
    </fieldset>
    <fieldset>
      <legend>Admin user</legend>
      <label>Name <input type="text" name="admin_name" required></label>
      <label>Email <input type="email" name="email"></label>
      <label>Mobile <input type="tel" name="mobile" maxlength="10"></label>
      <label>Username <input type="text" name="username" required></label>
      <label>Password <input type="password" name="password" required></label>
    </fieldset>
    <button type="submit" class="btn-primary">Register</button>
  </form>
  <p class="hint"><a href="/login">Back to login</a></p>
</section>`
	return html.Bare("Register", body)
}
