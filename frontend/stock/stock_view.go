package stock

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// StockWizardPage renders the wizard step named by data.State.
func StockWizardPage(data PageData) templ.Component {
	var step string
	if data.State == StateQuantities {
		step = quantitiesStep(data)
	} else {
		step = selectProductStep(data)
	}
	body := html.StatusBanner(data.Status, data.ErrorMessage) + step
	return html.Document("Add Stock", data.Nav, body)
}

func selectProductStep(data PageData) string {
	var items strings.Builder
	for _, p := range data.Products {
		items.WriteString(fmt.Sprintf(`
    <a class="picker-item" href="/desk/stock/add?product=%s">
      <span class="picker-name">%s</span>
      <span class="picker-type">%s</span>
    </a>`, html.Esc(p.ID), html.Esc(p.Name), html.Esc(p.Type)))
	}
	if len(data.Products) == 0 {
		items.WriteString(`
    <p class="empty">No products available</p>`)
	}
	return fmt.Sprintf(`
<section class="card">
  <h1>Add Stock</h1>
  <p class="hint">Step 1 of 2: choose a product</p>
  <div class="picker">%s
  </div>
</section>`, items.String())
}

func quantitiesStep(data PageData) string {
	var godownOptions strings.Builder
	for i, g := range data.Godowns {
		label := g.Name
		if i == 0 {
			label += " (default)"
		}
		godownOptions.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`,
			html.Esc(g.ID), html.Esc(label)))
	}

	counter := func(name, label string, value int) string {
		return fmt.Sprintf(`
    <label class="counter">%s <input type="number" name="%s" min="0" value="%d"></label>`,
			html.Esc(label), name, value)
	}

	return fmt.Sprintf(`
<section class="card">
  <h1>Add Stock</h1>
  <p class="hint">Step 2 of 2: quantities for %s</p>
  <form method="POST" action="/desk/stock/add">
    <input type="hidden" name="product_id" value="%s">
    <label>Godown <select name="godown_id">%s</select></label>
    <div class="counters">%s%s%s%s%s
    </div>
    <div class="form-actions">
      <button type="submit" class="btn-primary">Add Stock</button>
      <a class="btn-link" href="/desk/stock/add">Back</a>
    </div>
  </form>
</section>`,
		html.Esc(data.Product.Name), html.Esc(data.Product.ID), godownOptions.String(),
		counter("filled", "Filled", data.Counters.Filled),
		counter("empty", "Empty", data.Counters.Empty),
		counter("defective", "Defective", data.Counters.Defective),
		counter("sound", "Sound", data.Counters.Sound),
		counter("defective_pr", "Defective PR", data.Counters.DefectivePR))
}
