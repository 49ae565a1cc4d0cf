package categories

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
	"gasdesk/infrastructure/erp"
)

// CategoriesPage renders the type tiles, the list and the add/edit modal.
func CategoriesPage(data PageData) templ.Component {
	var tiles strings.Builder
	allClass := "tile"
	if data.AllSelected {
		allClass = "tile tile-selected"
	}
	tiles.WriteString(fmt.Sprintf(`
    <a class="%s" href="/desk/categories"><span class="tile-count">%d</span><span class="tile-label">All</span></a>`,
		allClass, data.AllCount))
	for _, t := range data.Tiles {
		class := "tile"
		if t.Selected {
			class = "tile tile-selected"
		}
		tiles.WriteString(fmt.Sprintf(`
    <a class="%s" href="/desk/categories?type=%s"><span class="tile-count">%d</span><span class="tile-label">%s</span></a>`,
			class, html.Esc(t.Type), t.Count, html.Esc(t.Type)))
	}

	var rows strings.Builder
	for _, c := range data.Categories {
		statusLabel := "Active"
		statusClass := "pill pill-active"
		if !c.IsActive {
			statusLabel = "Inactive"
			statusClass = "pill pill-inactive"
		}
		deactivate := ""
		if c.IsActive {
			deactivate = fmt.Sprintf(`
          <form method="POST" action="/desk/categories/%s/delete" onsubmit="return confirm('Deactivate category %s? It will no longer be offered for new products.');">
            <button type="submit" class="btn-link btn-danger">Deactivate</button>
          </form>`, html.Esc(c.ID), html.Esc(c.Name))
		}
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td>%s</td>
        <td>%s</td>
        <td>%s</td>
        <td><span class="%s">%s</span></td>
        <td class="row-actions">
          <button type="button" class="btn-link" onclick="openCategoryModal('edit', %s)">Edit</button>%s
        </td>
      </tr>`,
			html.Esc(c.Name), html.Esc(c.Type), html.Esc(c.Description),
			statusClass, statusLabel,
			categoryJSON(c), deactivate))
	}
	if len(data.Categories) == 0 {
		rows.WriteString(`
      <tr><td colspan="5" class="empty">No categories</td></tr>`)
	}

	body := html.StatusBanner(data.Status, data.ErrorMessage) + fmt.Sprintf(`
<section class="card">
  <div class="card-head">
    <h1>Product Categories</h1>
    <button type="button" class="btn-primary" onclick="openCategoryModal('add', null)">Add Category</button>
  </div>
  <div class="tiles">%s
  </div>
  <table class="list">
    <thead>
      <tr><th>Name</th><th>Type</th><th>Description</th><th>Status</th><th></th></tr>
    </thead>
    <tbody>%s
    </tbody>
  </table>
</section>
%s`, tiles.String(), rows.String(), categoryModal())
	return html.Document("Categories", data.Nav, body)
}

func categoryModal() string {
	var typeOptions strings.Builder
	for _, t := range erp.CategoryTypes {
		typeOptions.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`, t, t))
	}
	return fmt.Sprintf(`
<dialog id="category-modal">
  <form method="POST" id="category-form">
    <h2 id="category-modal-title">Add Category</h2>
    <label>Name <input type="text" name="name" id="category-name" required></label>
    <label>Type <select name="type" id="category-type" required>%s</select></label>
    <label>Description <textarea name="description" id="category-description"></textarea></label>
    <div class="form-actions">
      <button type="submit" class="btn-primary">Save</button>
      <button type="button" class="btn-link" onclick="document.getElementById('category-modal').close()">Cancel</button>
    </div>
  </form>
</dialog>
<script>
function openCategoryModal(mode, category) {
  var form = document.getElementById('category-form');
  var title = document.getElementById('category-modal-title');
  if (mode === 'edit') {
    title.textContent = 'Edit Category';
    form.action = '/desk/categories/' + category.id + '/edit';
    document.getElementById('category-name').value = category.name;
    document.getElementById('category-type').value = category.type;
    document.getElementById('category-description').value = category.description;
  } else {
    title.textContent = 'Add Category';
    form.action = '/desk/categories/new';
    form.reset();
  }
  document.getElementById('category-modal').showModal();
}
</script>`, typeOptions.String())
}

func categoryJSON(c erp.Category) string {
	return fmt.Sprintf(`{id:%s,name:%s,type:%s,description:%s}`,
		jsString(c.ID), jsString(c.Name), jsString(c.Type), jsString(c.Description))
}

func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, `<`, `\x3c`, `"`, `\x22`)
	return "'" + r.Replace(s) + "'"
}
