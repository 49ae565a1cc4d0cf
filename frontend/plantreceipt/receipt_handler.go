package plantreceipt

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"gasdesk/frontend/shared/nav"
	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
)

const basePath = "/desk/plant-receipt"

// ReceiptPageQueryHandler renders the voucher editor with the product and
// supplier lookups fetched in parallel.
func ReceiptPageQueryHandler(api *erp.Client, products *cache.ProductCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			wg           sync.WaitGroup
			productList  []erp.Product
			productsErr  error
			supplierList []erp.Supplier
			suppliersErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			if cached, ok := products.Get(); ok {
				productList = cached
				return
			}
			productList, productsErr = api.ListProducts(r.Context())
			if productsErr == nil {
				products.Set(productList)
			}
		}()
		go func() {
			defer wg.Done()
			supplierList, suppliersErr = api.ListSuppliers(r.Context())
		}()
		wg.Wait()

		if err := errors.Join(productsErr, suppliersErr); err != nil {
			slog.Error("load voucher lookups failed", slog.Any("err", err))
			http.Error(w, "failed to load voucher lookups", http.StatusInternalServerError)
			return
		}

		data := PageData{
			Products:     productList,
			Suppliers:    supplierList,
			Nav:          nav.FromRequest(r),
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ReceiptPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render voucher editor", http.StatusInternalServerError)
			return
		}
	}
}

// CreateReceiptCommandHandler derives the totals server-side and submits
// the voucher. The client-shown totals are advisory; the stored ones come
// from this computation.
func CreateReceiptCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, _, err := parseReceiptForm(r)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.CreatePlantReceipt(r.Context(), input)
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Redirect(w, r, basePath+"?error="+url.QueryEscape(apiErr.Message), http.StatusSeeOther)
				return
			}
			slog.Error("create plant receipt failed", slog.Any("err", err))
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("failed to create voucher"), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "voucher created"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

// PrintReceiptCommandHandler renders the submitted voucher as a PDF with a
// Code128 barcode of the voucher number. It prints the form as entered and
// never touches the ERP, so a voucher can be printed before or after
// submission.
func PrintReceiptCommandHandler(products *cache.ProductCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, totals, err := parseReceiptForm(r)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		printData := VoucherPrintData{
			VoucherNo:    input.VoucherNo,
			Date:         input.Date,
			SupplierName: strings.TrimSpace(r.FormValue("supplier_name")),
			AgencyName:   strings.TrimSpace(r.FormValue("agency_name")),
			SubTotal:     totals.SubTotal,
			TaxTotal:     totals.TaxTotal,
			Rounding:     totals.Rounding,
			GrandTotal:   totals.GrandTotal,
		}
		for _, item := range totals.Items {
			name := item.ProductID
			if product, ok := products.Find(item.ProductID); ok {
				name = product.Name
			}
			printData.Lines = append(printData.Lines, VoucherPrintLine{
				ProductName: name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TaxRate:     item.TaxRate,
				Amount:      item.Amount,
			})
		}

		pdfBytes, err := renderVoucherPDF(printData)
		if err != nil {
			slog.Error("render voucher pdf failed", slog.Any("err", err))
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("failed to render voucher print"), http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", input.VoucherNo+".pdf"))
		_, _ = w.Write(pdfBytes)
	}
}

func parseReceiptForm(r *http.Request) (erp.PlantReceiptInput, Totals, error) {
	if err := r.ParseForm(); err != nil {
		return erp.PlantReceiptInput{}, Totals{}, errors.New("invalid form data")
	}

	voucherNo := strings.TrimSpace(r.FormValue("voucher_no"))
	if voucherNo == "" {
		return erp.PlantReceiptInput{}, Totals{}, errors.New("voucher number is required")
	}
	date := strings.TrimSpace(r.FormValue("date"))
	if date == "" {
		return erp.PlantReceiptInput{}, Totals{}, errors.New("voucher date is required")
	}
	supplierID := strings.TrimSpace(r.FormValue("supplier_id"))
	if supplierID == "" {
		return erp.PlantReceiptInput{}, Totals{}, errors.New("select a supplier")
	}

	productIDs := r.Form["line_product"]
	quantities := r.Form["line_quantity"]
	unitPrices := r.Form["line_unit_price"]
	taxRates := r.Form["line_tax_rate"]
	if len(productIDs) != len(quantities) || len(productIDs) != len(unitPrices) || len(productIDs) != len(taxRates) {
		return erp.PlantReceiptInput{}, Totals{}, errors.New("voucher lines are malformed")
	}

	var lines []Line
	for i, productID := range productIDs {
		productID = strings.TrimSpace(productID)
		if productID == "" {
			continue
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(quantities[i]), 64)
		if err != nil {
			return erp.PlantReceiptInput{}, Totals{}, fmt.Errorf("line %d: invalid quantity", i+1)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(unitPrices[i]), 64)
		if err != nil {
			return erp.PlantReceiptInput{}, Totals{}, fmt.Errorf("line %d: invalid unit price", i+1)
		}
		tax, err := strconv.ParseFloat(strings.TrimSpace(taxRates[i]), 64)
		if err != nil {
			return erp.PlantReceiptInput{}, Totals{}, fmt.Errorf("line %d: invalid tax rate", i+1)
		}
		lines = append(lines, Line{ProductID: productID, Quantity: qty, UnitPrice: price, TaxRate: tax})
	}

	totals, err := ComputeTotals(lines)
	if err != nil {
		return erp.PlantReceiptInput{}, Totals{}, err
	}

	input := erp.PlantReceiptInput{
		VoucherNo:  voucherNo,
		Date:       date,
		SupplierID: supplierID,
		Items:      totals.Items,
		SubTotal:   totals.SubTotal,
		TaxTotal:   totals.TaxTotal,
		Rounding:   totals.Rounding,
		GrandTotal: totals.GrandTotal,
	}
	return input, totals, nil
}
