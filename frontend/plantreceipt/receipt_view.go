package plantreceipt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"gasdesk/frontend/shared/html"
)

// ReceiptPage renders the voucher editor. Line rows are cloned client-side;
// product selection auto-fills unit price and tax rate from the defaults
// table, both overwritable.
func ReceiptPage(data PageData) templ.Component {
	var productOptions strings.Builder
	productOptions.WriteString(`<option value="">Select product</option>`)
	for _, p := range data.Products {
		productOptions.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`,
			html.Esc(p.ID), html.Esc(p.Name)))
	}

	var supplierOptions strings.Builder
	supplierOptions.WriteString(`<option value="">Select supplier</option>`)
	for _, s := range data.Suppliers {
		supplierOptions.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`,
			html.Esc(s.ID), html.Esc(s.Name)))
	}

	var defaults strings.Builder
	defaults.WriteString("{")
	for i, p := range data.Products {
		if i > 0 {
			defaults.WriteString(",")
		}
		defaults.WriteString(fmt.Sprintf(`%s:{price:%s,tax:%s}`,
			jsString(p.ID),
			strconv.FormatFloat(p.UnitPrice, 'f', -1, 64),
			strconv.FormatFloat(p.TaxRate, 'f', -1, 64)))
	}
	defaults.WriteString("}")

	today := time.Now().Format("2006-01-02")

	body := html.StatusBanner(data.Status, data.ErrorMessage) + fmt.Sprintf(`
<section class="card">
  <h1>Plant Receipt Voucher</h1>
  <form method="POST" action="/desk/plant-receipt" id="voucher-form">
    <div class="voucher-head">
      <label>Voucher No <input type="text" name="voucher_no" required></label>
      <label>Date <input type="date" name="date" value="%s" required></label>
      <label>Supplier <select name="supplier_id" id="supplier-select" required>%s</select></label>
    </div>
    <input type="hidden" name="supplier_name" id="supplier-name">
    <table class="list" id="voucher-lines">
      <thead>
        <tr><th>Product</th><th>Qty</th><th>Unit Price</th><th>Tax %%</th><th>Amount</th><th></th></tr>
      </thead>
      <tbody>
        <tr class="voucher-line">
          <td><select name="line_product" class="line-product">%s</select></td>
          <td><input type="number" name="line_quantity" class="line-qty" min="0" step="any" value="0"></td>
          <td><input type="number" name="line_unit_price" class="line-price" min="0" step="any" value="0"></td>
          <td><input type="number" name="line_tax_rate" class="line-tax" min="0" step="any" value="0"></td>
          <td class="line-amount">0.00</td>
          <td><button type="button" class="btn-link btn-danger" onclick="removeLine(this)">Remove</button></td>
        </tr>
      </tbody>
      <tfoot>
        <tr><td colspan="4" class="total-label">Sub Total</td><td id="sub-total">0.00</td><td></td></tr>
        <tr><td colspan="4" class="total-label">Tax Total</td><td id="tax-total">0.00</td><td></td></tr>
        <tr><td colspan="4" class="total-label">Rounding</td><td id="rounding">0.00</td><td></td></tr>
        <tr class="grand"><td colspan="4" class="total-label">Grand Total</td><td id="grand-total">0.00</td><td></td></tr>
      </tfoot>
    </table>
    <div class="form-actions">
      <button type="button" class="btn-link" onclick="addLine()">Add Line</button>
      <button type="submit" class="btn-primary">Save Voucher</button>
      <button type="submit" class="btn-link" formaction="/desk/plant-receipt/print" formtarget="_blank">Print</button>
    </div>
  </form>
</section>
<script>
var productDefaults = %s;

function lineRows() {
  return Array.prototype.slice.call(document.querySelectorAll('#voucher-lines tbody tr.voucher-line'));
}

function addLine() {
  var rows = lineRows();
  var clone = rows[rows.length - 1].cloneNode(true);
  clone.querySelector('.line-product').value = '';
  clone.querySelector('.line-qty').value = '0';
  clone.querySelector('.line-price').value = '0';
  clone.querySelector('.line-tax').value = '0';
  clone.querySelector('.line-amount').textContent = '0.00';
  document.querySelector('#voucher-lines tbody').appendChild(clone);
}

function removeLine(btn) {
  if (lineRows().length <= 1) { return; }
  btn.closest('tr').remove();
  recompute();
}

function recompute() {
  var sub = 0, tax = 0;
  lineRows().forEach(function (row) {
    var qty = parseFloat(row.querySelector('.line-qty').value) || 0;
    var price = parseFloat(row.querySelector('.line-price').value) || 0;
    var rate = parseFloat(row.querySelector('.line-tax').value) || 0;
    var base = qty * price;
    var lineTax = base * rate / 100;
    row.querySelector('.line-amount').textContent = (base + lineTax).toFixed(2);
    sub += base;
    tax += lineTax;
  });
  var exact = sub + tax;
  var grand = Math.round(exact);
  document.getElementById('sub-total').textContent = sub.toFixed(2);
  document.getElementById('tax-total').textContent = tax.toFixed(2);
  document.getElementById('rounding').textContent = (grand - exact).toFixed(2);
  document.getElementById('grand-total').textContent = grand.toFixed(2);
}

document.getElementById('voucher-lines').addEventListener('input', recompute);
document.getElementById('voucher-lines').addEventListener('change', function (e) {
  if (e.target.classList.contains('line-product')) {
    var d = productDefaults[e.target.value];
    if (d) {
      var row = e.target.closest('tr');
      row.querySelector('.line-price').value = d.price;
      row.querySelector('.line-tax').value = d.tax;
    }
    recompute();
  }
});
document.getElementById('supplier-select').addEventListener('change', function (e) {
  document.getElementById('supplier-name').value = e.target.options[e.target.selectedIndex].text;
});
</script>`,
		today, supplierOptions.String(), productOptions.String(), defaults.String())
	return html.Document("Plant Receipt", data.Nav, body)
}

func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, `<`, `\x3c`, `"`, `\x22`)
	return "'" + r.Replace(s) + "'"
}
