package plantreceipt

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotals_TwoLineVoucher(t *testing.T) {
	totals, err := ComputeTotals([]Line{
		{ProductID: "p-1", Quantity: 10, UnitPrice: 100, TaxRate: 5},
		{ProductID: "p-2", Quantity: 5, UnitPrice: 200, TaxRate: 18},
	})
	if err != nil {
		t.Fatalf("ComputeTotals: %v", err)
	}
	if !almostEqual(totals.SubTotal, 2000) {
		t.Errorf("SubTotal = %v, want 2000", totals.SubTotal)
	}
	if !almostEqual(totals.TaxTotal, 230) {
		t.Errorf("TaxTotal = %v, want 230", totals.TaxTotal)
	}
	if !almostEqual(totals.GrandTotal, 2230) {
		t.Errorf("GrandTotal = %v, want 2230", totals.GrandTotal)
	}
	if !almostEqual(totals.Rounding, 0) {
		t.Errorf("Rounding = %v, want 0", totals.Rounding)
	}
	if !almostEqual(totals.Items[0].Amount, 1050) || !almostEqual(totals.Items[1].Amount, 1180) {
		t.Errorf("line amounts = %v, %v, want 1050, 1180", totals.Items[0].Amount, totals.Items[1].Amount)
	}
}

func TestComputeTotals_RoundingDelta(t *testing.T) {
	// 3 x 33.33 at 5% tax: subtotal 99.99, tax 4.9995, exact 104.9895.
	totals, err := ComputeTotals([]Line{
		{ProductID: "p-1", Quantity: 3, UnitPrice: 33.33, TaxRate: 5},
	})
	if err != nil {
		t.Fatalf("ComputeTotals: %v", err)
	}
	if !almostEqual(totals.GrandTotal, 105) {
		t.Errorf("GrandTotal = %v, want 105", totals.GrandTotal)
	}
	if !almostEqual(totals.Rounding, 0.0105) {
		t.Errorf("Rounding = %v, want 0.0105", totals.Rounding)
	}
	if !almostEqual(totals.GrandTotal, totals.SubTotal+totals.TaxTotal+totals.Rounding) {
		t.Error("grand total does not reconcile with subtotal, tax and rounding")
	}
}

func TestComputeTotals_DecimalPrecision(t *testing.T) {
	// 0.1 + 0.2 style float drift must not leak into the subtotal.
	totals, err := ComputeTotals([]Line{
		{ProductID: "p-1", Quantity: 1, UnitPrice: 0.1, TaxRate: 0},
		{ProductID: "p-2", Quantity: 1, UnitPrice: 0.2, TaxRate: 0},
	})
	if err != nil {
		t.Fatalf("ComputeTotals: %v", err)
	}
	if totals.SubTotal != 0.3 {
		t.Errorf("SubTotal = %v, want exactly 0.3", totals.SubTotal)
	}
}

func TestComputeTotals_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		lines []Line
	}{
		{"no lines", nil},
		{"zero quantity", []Line{{ProductID: "p-1", Quantity: 0, UnitPrice: 10}}},
		{"negative price", []Line{{ProductID: "p-1", Quantity: 1, UnitPrice: -10}}},
		{"negative tax", []Line{{ProductID: "p-1", Quantity: 1, UnitPrice: 10, TaxRate: -5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ComputeTotals(tc.lines); err == nil {
				t.Fatal("want error, got nil")
			}
		})
	}
}
