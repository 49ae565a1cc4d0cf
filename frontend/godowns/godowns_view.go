package godowns

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// GodownsPage renders either the standalone settings page or the godowns
// tab of the general settings screen; the list and modal markup is shared.
func GodownsPage(data PageData) templ.Component {
	returnQuery := ""
	if data.Embedded {
		returnQuery = "?return=general"
	}

	var rows strings.Builder
	for _, row := range data.Rows {
		defaultMark := ""
		if row.IsDefault {
			defaultMark = ` <span class="pill pill-default" title="Earliest created godown; cannot be changed">Default</span>`
		}
		g := row.Godown
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td>%s%s</td>
        <td>%s</td>
        <td>%s</td>
        <td>%s</td>
        <td><button type="button" class="btn-link" onclick="openGodownModal('edit', %s)">Edit</button></td>
      </tr>`,
			html.Esc(g.Name), defaultMark, html.Esc(g.Code),
			html.Esc(g.Address), html.Esc(g.ContactNumber),
			godownJSON(g.ID, g.Name, g.Code, g.Address, g.ContactNumber, g.Notes)))
	}
	if len(data.Rows) == 0 {
		rows.WriteString(`
      <tr><td colspan="5" class="empty">No godowns yet</td></tr>`)
	}

	listHTML := fmt.Sprintf(`
<section class="card">
  <div class="card-head">
    <h2>Godowns</h2>
    <button type="button" class="btn-primary" onclick="openGodownModal('add', null)">Add Godown</button>
  </div>
  <p class="hint">The earliest created godown is the default and receives stock when no godown is chosen.</p>
  <table class="list">
    <thead>
      <tr><th>Name</th><th>Code</th><th>Address</th><th>Contact</th><th></th></tr>
    </thead>
    <tbody>%s
    </tbody>
  </table>
</section>
%s`, rows.String(), godownModal(returnQuery))

	body := html.StatusBanner(data.Status, data.ErrorMessage)
	title := "Godowns"
	if data.Embedded {
		title = "General Settings"
		body += `
<section class="tabs">
  <a class="tab" href="/desk/agency">Agency</a>
  <span class="tab tab-active">Godowns</span>
</section>` + listHTML
	} else {
		body += listHTML
	}
	return html.Document(title, data.Nav, body)
}

func godownModal(returnQuery string) string {
	return fmt.Sprintf(`
<dialog id="godown-modal">
  <form method="POST" id="godown-form">
    <h2 id="godown-modal-title">Add Godown</h2>
    <label>Name <input type="text" name="name" id="godown-name" required></label>
    <label>Code <input type="text" name="code" id="godown-code"></label>
    <label>Address <input type="text" name="address" id="godown-address"></label>
    <label>Contact number <input type="tel" name="contact_number" id="godown-contact" maxlength="10"></label>
    <label>Notes <textarea name="notes" id="godown-notes"></textarea></label>
    <div class="form-actions">
      <button type="submit" class="btn-primary">Save</button>
      <button type="button" class="btn-link" onclick="document.getElementById('godown-modal').close()">Cancel</button>
    </div>
  </form>
</dialog>
<script>
function openGodownModal(mode, godown) {
  var form = document.getElementById('godown-form');
  var title = document.getElementById('godown-modal-title');
  if (mode === 'edit') {
    title.textContent = 'Edit Godown';
    form.action = '/desk/settings/godowns/' + godown.id + '/edit%s';
    document.getElementById('godown-name').value = godown.name;
    document.getElementById('godown-code').value = godown.code;
    document.getElementById('godown-address').value = godown.address;
    document.getElementById('godown-contact').value = godown.contact;
    document.getElementById('godown-notes').value = godown.notes;
  } else {
    title.textContent = 'Add Godown';
    form.action = '/desk/settings/godowns/new%s';
    form.reset();
  }
  document.getElementById('godown-modal').showModal();
}
</script>`, returnQuery, returnQuery)
}

// godownJSON builds the inline object literal handed to openGodownModal.
func godownJSON(id, name, code, address, contact, notes string) string {
	return fmt.Sprintf(`{id:%s,name:%s,code:%s,address:%s,contact:%s,notes:%s}`,
		jsString(id), jsString(name), jsString(code),
		jsString(address), jsString(contact), jsString(notes))
}

func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, `<`, `\x3c`, `"`, `\x22`)
	return "'" + r.Replace(s) + "'"
}
