package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"gasdesk/infrastructure/erp"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleCategories() []erp.Category {
	return []erp.Category{
		{ID: "c-1", Name: "Domestic Cylinders", Type: "CYLINDER", IsActive: true},
		{ID: "c-2", Name: "Commercial Cylinders", Type: "CYLINDER", IsActive: true},
		{ID: "c-3", Name: "Stoves", Type: "NFR", IsActive: false},
	}
}

func TestBuildTiles_CountsPerTypeWithEmptyTypes(t *testing.T) {
	tiles := BuildTiles(sampleCategories(), "NFR")
	if len(tiles) != len(erp.CategoryTypes) {
		t.Fatalf("got %d tiles, want one per type", len(tiles))
	}
	byType := make(map[string]TypeTile)
	for _, tile := range tiles {
		byType[tile.Type] = tile
	}
	if byType["CYLINDER"].Count != 2 {
		t.Errorf("CYLINDER count = %d, want 2", byType["CYLINDER"].Count)
	}
	if byType["NFR"].Count != 1 || !byType["NFR"].Selected {
		t.Errorf("NFR tile = %+v, want count 1 selected", byType["NFR"])
	}
	if byType["FTL"].Count != 0 || byType["PR"].Count != 0 {
		t.Error("empty types must still get a tile with count 0")
	}
}

func TestFilterByType(t *testing.T) {
	all := sampleCategories()
	if got := FilterByType(all, ""); len(got) != 3 {
		t.Fatalf("empty filter kept %d, want all 3", len(got))
	}
	got := FilterByType(all, "NFR")
	if len(got) != 1 || got[0].ID != "c-3" {
		t.Fatalf("NFR filter = %+v, want only c-3", got)
	}
}

func TestCreateCategory_RejectsUnknownType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the server")
	}))
	defer srv.Close()

	form := url.Values{"name": {"Bulk Tankers"}, "type": {"TANKER"}}
	req := httptest.NewRequest(http.MethodPost, "/desk/categories/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	CreateCategoryCommandHandler(erp.NewClient(srv.URL))(rec, req)

	if !strings.Contains(rec.Header().Get("Location"), "error=") {
		t.Fatalf("redirect = %q, want error message", rec.Header().Get("Location"))
	}
}

func TestCreateCategory_SubmitsActiveCategory(t *testing.T) {
	var sent erp.Category
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/product-category" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&sent)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "category added"})
	}))
	defer srv.Close()

	form := url.Values{"name": {"Domestic Cylinders"}, "type": {"CYLINDER"}, "description": {"14.2kg refills"}}
	req := httptest.NewRequest(http.MethodPost, "/desk/categories/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	CreateCategoryCommandHandler(erp.NewClient(srv.URL))(rec, req)

	if !strings.Contains(rec.Header().Get("Location"), "status=") {
		t.Fatalf("redirect = %q, want success status", rec.Header().Get("Location"))
	}
	if sent.Name != "Domestic Cylinders" || sent.Type != "CYLINDER" || !sent.IsActive {
		t.Fatalf("sent category = %+v", sent)
	}
}

func TestDeleteCategory_ForwardsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/admin/product-category/c-3" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "category is in use"})
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodPost, "/desk/categories/c-3/delete", nil)
	req = withURLParam(req, "id", "c-3")
	rec := httptest.NewRecorder()
	DeleteCategoryCommandHandler(erp.NewClient(srv.URL))(rec, req)

	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, url.QueryEscape("category is in use")) {
		t.Fatalf("redirect = %q, want the server's message", loc)
	}
}
