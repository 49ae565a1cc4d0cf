package stock

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gasdesk/frontend/godowns"
	"gasdesk/frontend/shared/nav"
	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
)

const basePath = "/desk/stock/add"

// StockWizardQueryHandler renders the current wizard step. Step one lists
// products; picking one moves to the quantity counters. The step is carried
// in the query string and checked against the wizard's transition table, so
// deep links cannot jump past product selection.
func StockWizardQueryHandler(api *erp.Client, products *cache.ProductCache) http.HandlerFunc {
	machine := Transitions()
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := loadProducts(r.Context(), api, products)
		if err != nil {
			slog.Error("load products failed", slog.Any("err", err))
			http.Error(w, "failed to load products", http.StatusInternalServerError)
			return
		}

		data := PageData{
			State:        machine.Initial(),
			Products:     list,
			Nav:          nav.FromRequest(r),
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
		}

		if productID := r.URL.Query().Get("product"); productID != "" {
			state, err := machine.Transition(machine.Initial(), StateQuantities)
			if err != nil {
				http.Redirect(w, r, basePath, http.StatusSeeOther)
				return
			}
			product, ok := products.Find(productID)
			if !ok {
				http.Redirect(w, r, basePath+"?error="+url.QueryEscape("select a product first"), http.StatusSeeOther)
				return
			}
			rows, err := godowns.LoadRows(r.Context(), api)
			if err != nil {
				slog.Error("load godowns failed", slog.Any("err", err))
				http.Error(w, "failed to load godowns", http.StatusInternalServerError)
				return
			}
			data.State = state
			data.Product = product
			for _, row := range rows {
				data.Godowns = append(data.Godowns, row.Godown)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := StockWizardPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render stock wizard", http.StatusInternalServerError)
			return
		}
	}
}

// AddStockCommandHandler submits the counters as one batch addition.
func AddStockCommandHandler(api *erp.Client, products *cache.ProductCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		productID := strings.TrimSpace(r.FormValue("product_id"))
		product, ok := products.Find(productID)
		if !ok {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("select a product first"), http.StatusSeeOther)
			return
		}
		stepPath := basePath + "?product=" + url.QueryEscape(productID)

		counters, err := parseCounters(r)
		if err != nil {
			http.Redirect(w, r, stepPath+"&error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		if counters.Sum() == 0 {
			http.Redirect(w, r, stepPath+"&error="+url.QueryEscape("enter at least one quantity"), http.StatusSeeOther)
			return
		}

		input := erp.StockAddInput{
			ProductID:   productID,
			GodownID:    strings.TrimSpace(r.FormValue("godown_id")),
			Filled:      counters.Filled,
			Empty:       counters.Empty,
			Defective:   counters.Defective,
			Sound:       counters.Sound,
			DefectivePR: counters.DefectivePR,
			Notes:       stockNote(product),
		}

		message, err := api.AddStockToGodown(r.Context(), input)
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Redirect(w, r, stepPath+"&error="+url.QueryEscape(apiErr.Message), http.StatusSeeOther)
				return
			}
			slog.Error("add stock failed", slog.Any("err", err))
			http.Redirect(w, r, stepPath+"&error="+url.QueryEscape("failed to add stock"), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "stock added"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

func parseCounters(r *http.Request) (Counters, error) {
	var c Counters
	fields := []struct {
		name string
		dst  *int
	}{
		{"filled", &c.Filled},
		{"empty", &c.Empty},
		{"defective", &c.Defective},
		{"sound", &c.Sound},
		{"defective_pr", &c.DefectivePR},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(r.FormValue(f.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Counters{}, fmt.Errorf("%s must be a non-negative number", strings.ReplaceAll(f.name, "_", " "))
		}
		*f.dst = n
	}
	return c, nil
}

// stockNote derives the batch note from the product display name.
func stockNote(product erp.Product) string {
	return "Stock intake for " + product.Name
}
