package categories

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"gasdesk/frontend/shared/nav"
	"gasdesk/infrastructure/erp"
)

const basePath = "/desk/categories"

// CategoriesPageQueryHandler renders the category list with its type tiles.
func CategoriesPageQueryHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := api.ListCategories(r.Context())
		if err != nil {
			slog.Error("load categories failed", slog.Any("err", err))
			http.Error(w, "failed to load categories", http.StatusInternalServerError)
			return
		}

		selectedType := strings.TrimSpace(r.URL.Query().Get("type"))
		data := PageData{
			Tiles:        BuildTiles(all, selectedType),
			AllCount:     len(all),
			AllSelected:  selectedType == "",
			Categories:   FilterByType(all, selectedType),
			Nav:          nav.FromRequest(r),
			Status:       r.URL.Query().Get("status"),
			ErrorMessage: r.URL.Query().Get("error"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := CategoriesPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render categories", http.StatusInternalServerError)
			return
		}
	}
}

// CreateCategoryCommandHandler adds a category.
func CreateCategoryCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}
		category, err := parseCategoryForm(r)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.CreateCategory(r.Context(), category)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(categoryErrorMessage(err, "failed to add category")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "category added"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

// UpdateCategoryCommandHandler edits a category.
func UpdateCategoryCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}
		category, err := parseCategoryForm(r)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.UpdateCategory(r.Context(), id, category)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(categoryErrorMessage(err, "failed to update category")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "category updated"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

// DeleteCategoryCommandHandler deactivates a category. The server keeps the
// record; the view labels the action accordingly and guards it with a
// confirmation prompt.
func DeleteCategoryCommandHandler(api *erp.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		message, err := api.DeleteCategory(r.Context(), id)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(categoryErrorMessage(err, "failed to deactivate category")), http.StatusSeeOther)
			return
		}
		if message == "" {
			message = "category deactivated"
		}
		http.Redirect(w, r, basePath+"?status="+url.QueryEscape(message), http.StatusSeeOther)
	}
}

func parseCategoryForm(r *http.Request) (erp.Category, error) {
	category := erp.Category{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Type:        strings.TrimSpace(r.FormValue("type")),
		Description: strings.TrimSpace(r.FormValue("description")),
		IsActive:    true,
	}
	if category.Name == "" {
		return erp.Category{}, errors.New("category name is required")
	}
	if !IsKnownType(category.Type) {
		return erp.Category{}, errors.New("select a valid category type")
	}
	return category, nil
}

func categoryErrorMessage(err error, fallback string) string {
	var apiErr *erp.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	slog.Error("category request failed", slog.Any("err", err))
	return fallback
}
