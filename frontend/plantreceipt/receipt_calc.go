package plantreceipt

import (
	"errors"

	"github.com/shopspring/decimal"

	"gasdesk/infrastructure/erp"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotals derives per-line amounts and the voucher aggregates. All
// arithmetic runs on decimals; floats appear only at the API boundary. The
// line amount includes its tax; the subtotal does not.
func ComputeTotals(lines []Line) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, errors.New("voucher needs at least one line")
	}

	subTotal := decimal.Zero
	taxTotal := decimal.Zero
	items := make([]erp.VoucherItem, 0, len(lines))

	for _, line := range lines {
		if line.Quantity <= 0 {
			return Totals{}, errors.New("line quantity must be positive")
		}
		if line.UnitPrice < 0 || line.TaxRate < 0 {
			return Totals{}, errors.New("unit price and tax rate cannot be negative")
		}

		qty := decimal.NewFromFloat(line.Quantity)
		price := decimal.NewFromFloat(line.UnitPrice)
		tax := decimal.NewFromFloat(line.TaxRate)

		base := qty.Mul(price)
		lineTax := base.Mul(tax).Div(hundred)
		amount := base.Add(lineTax)

		subTotal = subTotal.Add(base)
		taxTotal = taxTotal.Add(lineTax)

		items = append(items, erp.VoucherItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			TaxRate:   line.TaxRate,
			Amount:    amount.InexactFloat64(),
		})
	}

	exact := subTotal.Add(taxTotal)
	grand := exact.Round(0)
	rounding := grand.Sub(exact)

	return Totals{
		Items:      items,
		SubTotal:   subTotal.InexactFloat64(),
		TaxTotal:   taxTotal.InexactFloat64(),
		Rounding:   rounding.InexactFloat64(),
		GrandTotal: grand.InexactFloat64(),
	}, nil
}
