package stock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
)

func newStockServer(t *testing.T, productFetches, stockAdds *atomic.Int64, lastAdd *erp.StockAddInput) *erp.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/inventory/products":
			productFetches.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": []map[string]any{
					{"_id": "p-1", "name": "14.2kg Domestic Cylinder", "type": "CYLINDER"},
					{"_id": "p-2", "name": "5kg FTL Cylinder", "type": "FTL"},
				},
			})
		case "/inventory/stock-locations":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": []map[string]any{
					{"_id": "g-1", "name": "Main Yard", "createdAt": "2022-01-15T07:30:00Z"},
				},
			})
		case "/inventory/stock/add-to-godown":
			stockAdds.Add(1)
			if lastAdd != nil {
				_ = json.NewDecoder(r.Body).Decode(lastAdd)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "stock added"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return erp.NewClient(srv.URL)
}

func TestWizard_BackDoesNotRefetchProducts(t *testing.T) {
	var fetches, adds atomic.Int64
	api := newStockServer(t, &fetches, &adds, nil)
	products := cache.NewProductCache()
	handler := StockWizardQueryHandler(api, products)

	// Step 1, forward to step 2, back to step 1.
	paths := []string{"/desk/stock/add", "/desk/stock/add?product=p-1", "/desk/stock/add"}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
	if got := fetches.Load(); got != 1 {
		t.Fatalf("product list fetched %d times across the wizard, want 1", got)
	}
}

func TestWizard_UnknownProductFallsBackToStepOne(t *testing.T) {
	var fetches, adds atomic.Int64
	api := newStockServer(t, &fetches, &adds, nil)
	handler := StockWizardQueryHandler(api, cache.NewProductCache())

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/desk/stock/add?product=nope", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect to step one", rec.Code)
	}
}

func TestAddStock_AllZeroCountersBlocked(t *testing.T) {
	var fetches, adds atomic.Int64
	api := newStockServer(t, &fetches, &adds, nil)
	products := cache.NewProductCache()
	if _, err := loadProducts(context.Background(), api, products); err != nil {
		t.Fatalf("loadProducts: %v", err)
	}

	form := url.Values{"product_id": {"p-1"}, "godown_id": {"g-1"}}
	req := httptest.NewRequest(http.MethodPost, "/desk/stock/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	AddStockCommandHandler(api, products)(rec, req)

	if adds.Load() != 0 {
		t.Fatal("all-zero submission reached the server")
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "error=") || !strings.Contains(loc, "product=p-1") {
		t.Fatalf("redirect = %q, want step two with an error message", loc)
	}
}

func TestAddStock_SubmitsCountersAndDerivedNote(t *testing.T) {
	var fetches, adds atomic.Int64
	var sent erp.StockAddInput
	api := newStockServer(t, &fetches, &adds, &sent)
	products := cache.NewProductCache()
	if _, err := loadProducts(context.Background(), api, products); err != nil {
		t.Fatalf("loadProducts: %v", err)
	}

	form := url.Values{
		"product_id": {"p-1"},
		"godown_id":  {"g-1"},
		"filled":     {"10"},
		"defective":  {"2"},
	}
	req := httptest.NewRequest(http.MethodPost, "/desk/stock/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	AddStockCommandHandler(api, products)(rec, req)

	if adds.Load() != 1 {
		t.Fatalf("stock add reached the server %d times, want 1", adds.Load())
	}
	if sent.Filled != 10 || sent.Defective != 2 || sent.Empty != 0 || sent.Sound != 0 || sent.DefectivePR != 0 {
		t.Fatalf("sent counters = %+v", sent)
	}
	if sent.Notes != "Stock intake for 14.2kg Domestic Cylinder" {
		t.Fatalf("note = %q, want it derived from the product name", sent.Notes)
	}
	if !strings.Contains(rec.Header().Get("Location"), "status=") {
		t.Fatalf("redirect = %q, want success status", rec.Header().Get("Location"))
	}
}

func TestAddStock_NegativeCounterRejected(t *testing.T) {
	var fetches, adds atomic.Int64
	api := newStockServer(t, &fetches, &adds, nil)
	products := cache.NewProductCache()
	if _, err := loadProducts(context.Background(), api, products); err != nil {
		t.Fatalf("loadProducts: %v", err)
	}

	form := url.Values{"product_id": {"p-1"}, "filled": {"-3"}}
	req := httptest.NewRequest(http.MethodPost, "/desk/stock/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	AddStockCommandHandler(api, products)(rec, req)

	if adds.Load() != 0 {
		t.Fatal("negative counter reached the server")
	}
}
