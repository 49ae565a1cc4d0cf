package agencydelete

import (
	"fmt"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// DeletionPage renders the step matching the flow's current state.
func DeletionPage(data PageData) templ.Component {
	var body string
	switch data.State {
	case StateVerify:
		body = verifyStep(data)
	case StateConfirm:
		body = confirmStep(data)
	case StateResult:
		body = resultStep(data)
	default:
		body = searchStep(data)
	}
	return html.Document("Delete Agency", data.Nav, html.StatusBanner("", data.ErrorMessage)+body)
}

func searchStep(data PageData) string {
	return `
<section class="card narrow">
  <h1>Delete Agency</h1>
  <p class="warning">Deleting an agency is irreversible. All its users and records are removed.</p>
  <form method="POST" action="/desk/agency-delete/search">
    <label>Agency ID
      <input type="text" name="agency_id" required>
    </label>
    <button type="submit" class="btn-danger">Look up agency</button>
  </form>
</section>`
}

func verifyStep(data PageData) string {
	return fmt.Sprintf(`
<section class="card narrow">
  <h1>Verify Deletion</h1>
  <dl class="summary">
    <dt>Agency</dt><dd>%s</dd>
    <dt>City</dt><dd>%s</dd>
    <dt>GST</dt><dd>%s</dd>
  </dl>
  <p>Type the confirmation code below to continue.</p>
  <p class="code">%s</p>
  <form method="POST" action="/desk/agency-delete/verify">
    <label>Confirmation code
      <input type="text" name="code" maxlength="%d" autocomplete="off" required>
    </label>
    <button type="submit" class="btn-danger">Verify</button>
  </form>
  <form method="POST" action="/desk/agency-delete/reset">
    <button type="submit">Start over</button>
  </form>
</section>`,
		html.Esc(data.Agency.Name), html.Esc(data.Agency.Address.City), html.Esc(data.Agency.GSTNumber),
		html.Esc(data.Code), CodeLength)
}

func confirmStep(data PageData) string {
	return fmt.Sprintf(`
<section class="card narrow">
  <h1>Confirm Deletion</h1>
  <p class="warning">Final step: this permanently deletes <strong>%s</strong>.</p>
  <form method="POST" action="/desk/agency-delete/confirm"
        onsubmit="return confirm('Permanently delete this agency?');">
    <label class="checkbox">
      <input type="checkbox" name="confirm" value="1">
      I understand this cannot be undone
    </label>
    <label>Your password
      <input type="password" name="password" autocomplete="current-password" required>
    </label>
    <button type="submit" class="btn-danger">Delete agency</button>
  </form>
  <form method="POST" action="/desk/agency-delete/reset">
    <button type="submit">Start over</button>
  </form>
</section>`, html.Esc(data.Agency.Name))
}

func resultStep(data PageData) string {
	heading := "Deletion Failed"
	class := "banner banner-error"
	if data.Result.Success {
		heading = "Agency Deleted"
		class = "banner banner-ok"
	}
	return fmt.Sprintf(`
<section class="card narrow">
  <h1>%s</h1>
  <div class="%s"><strong>%s</strong> %s</div>
  <form method="POST" action="/desk/agency-delete/reset">
    <button type="submit" class="btn-primary">Start over</button>
  </form>
</section>`, heading, class, html.Esc(data.Result.AgencyName), html.Esc(data.Result.Message))
}
