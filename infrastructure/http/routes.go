package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gasdesk/frontend/agency"
	"gasdesk/frontend/agencydelete"
	"gasdesk/frontend/categories"
	"gasdesk/frontend/ekyc"
	"gasdesk/frontend/godowns"
	"gasdesk/frontend/login"
	"gasdesk/frontend/plantreceipt"
	"gasdesk/frontend/register"
	"gasdesk/frontend/stock"
	"gasdesk/frontend/users"
	"gasdesk/infrastructure/rbac"
)

// RegisterAuthRoutes registers the unauthenticated login, registration and
// logout routes.
func (s *Server) RegisterAuthRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.DB, s.API, s.SessionCache))
	s.router.Post("/logout", login.LogoutHandler(s.DB, s.SessionCache))
	s.router.Get("/register", register.RegisterPageQueryHandler())
	s.router.Post("/register", register.RegisterCommandHandler(s.API))
}

// RegisterDeskRoutes registers every authenticated console screen together
// with its role grants. Admin-tier roles bypass the registry; only staff
// grants are listed here.
func (s *Server) RegisterDeskRoutes(r chi.Router) chi.Router {
	s.registerAgencyRoutes(r)
	s.registerUserRoutes(r)
	s.registerCategoryRoutes(r)
	s.registerGodownRoutes(r)
	s.registerStockRoutes(r)
	s.registerVoucherRoutes(r)
	s.registerKycRoutes(r)
	s.registerAgencyDeleteRoutes(r)
	return r
}

func (s *Server) registerAgencyRoutes(r chi.Router) {
	s.Rbac.Add(rbac.RoleManager, "AGENCY_PROFILE_VIEW", http.MethodGet, "/desk/agency")
	r.Get("/agency", agency.AgencyPageQueryHandler(s.API))
	s.Rbac.Add(rbac.RoleManager, "AGENCY_PROFILE_EDIT", http.MethodPost, "/desk/agency")
	r.Post("/agency", agency.UpdateAgencyCommandHandler(s.API))
}

func (s *Server) registerUserRoutes(r chi.Router) {
	s.Rbac.Add(rbac.RoleManager, "USERS_LIST_VIEW", http.MethodGet, "/desk/users")
	r.Get("/users", users.UsersPageQueryHandler(s.API, s.StatusOverlay))

	s.Rbac.Add(rbac.RoleManager, "USERS_FORM_VIEW", http.MethodGet, "/desk/users/new")
	r.Get("/users/new", users.UserFormPageQueryHandler(s.API, s.StatusOverlay))
	s.Rbac.Add(rbac.RoleManager, "USERS_CREATE", http.MethodPost, "/desk/users/new")
	r.Post("/users/new", users.CreateUserCommandHandler(s.API))

	s.Rbac.Add(rbac.RoleManager, "USERS_EDIT_VIEW", http.MethodGet, "/desk/users/*/edit")
	r.Get("/users/{id}/edit", users.UserFormPageQueryHandler(s.API, s.StatusOverlay))
	s.Rbac.Add(rbac.RoleManager, "USERS_EDIT", http.MethodPost, "/desk/users/*/edit")
	r.Post("/users/{id}/edit", users.UpdateUserCommandHandler(s.API))

	s.Rbac.Add(rbac.RoleManager, "USERS_STATUS_TOGGLE", http.MethodPost, "/desk/users/*/status")
	r.Post("/users/{id}/status", users.ToggleStatusCommandHandler(s.API, s.StatusOverlay))

	s.Rbac.Add(rbac.RoleManager, "USERS_DELETE", http.MethodPost, "/desk/users/*/delete")
	r.Post("/users/{id}/delete", users.DeleteUserCommandHandler(s.API))
}

func (s *Server) registerCategoryRoutes(r chi.Router) {
	for _, role := range []string{rbac.RoleManager, rbac.RoleAccountant} {
		s.Rbac.Add(role, "CATEGORIES_LIST_VIEW", http.MethodGet, "/desk/categories")
		s.Rbac.Add(role, "CATEGORIES_CREATE", http.MethodPost, "/desk/categories/new")
		s.Rbac.Add(role, "CATEGORIES_EDIT", http.MethodPost, "/desk/categories/*/edit")
		s.Rbac.Add(role, "CATEGORIES_DEACTIVATE", http.MethodPost, "/desk/categories/*/delete")
	}
	r.Get("/categories", categories.CategoriesPageQueryHandler(s.API))
	r.Post("/categories/new", categories.CreateCategoryCommandHandler(s.API))
	r.Post("/categories/{id}/edit", categories.UpdateCategoryCommandHandler(s.API))
	r.Post("/categories/{id}/delete", categories.DeleteCategoryCommandHandler(s.API))
}

func (s *Server) registerGodownRoutes(r chi.Router) {
	for _, role := range []string{rbac.RoleManager, rbac.RoleGodownKeeper} {
		s.Rbac.Add(role, "GODOWNS_SETTINGS_VIEW", http.MethodGet, "/desk/settings/godowns")
		s.Rbac.Add(role, "GENERAL_SETTINGS_VIEW", http.MethodGet, "/desk/settings/general")
		s.Rbac.Add(role, "GODOWNS_CREATE", http.MethodPost, "/desk/settings/godowns/new")
		s.Rbac.Add(role, "GODOWNS_EDIT", http.MethodPost, "/desk/settings/godowns/*/edit")
	}
	r.Get("/settings/godowns", godowns.GodownsPageQueryHandler(s.API))
	r.Get("/settings/general", godowns.GeneralSettingsTabQueryHandler(s.API))
	r.Post("/settings/godowns/new", godowns.CreateGodownCommandHandler(s.API))
	r.Post("/settings/godowns/{id}/edit", godowns.UpdateGodownCommandHandler(s.API))
}

func (s *Server) registerStockRoutes(r chi.Router) {
	for _, role := range []string{rbac.RoleManager, rbac.RoleGodownKeeper} {
		s.Rbac.Add(role, "STOCK_WIZARD_VIEW", http.MethodGet, "/desk/stock/add")
		s.Rbac.Add(role, "STOCK_ADD", http.MethodPost, "/desk/stock/add")
	}
	r.Get("/stock/add", stock.StockWizardQueryHandler(s.API, s.Products))
	r.Post("/stock/add", stock.AddStockCommandHandler(s.API, s.Products))
}

func (s *Server) registerVoucherRoutes(r chi.Router) {
	for _, role := range []string{rbac.RoleManager, rbac.RoleAccountant} {
		s.Rbac.Add(role, "VOUCHER_EDITOR_VIEW", http.MethodGet, "/desk/plant-receipt")
		s.Rbac.Add(role, "VOUCHER_CREATE", http.MethodPost, "/desk/plant-receipt")
		s.Rbac.Add(role, "VOUCHER_PRINT", http.MethodPost, "/desk/plant-receipt/print")
	}
	r.Get("/plant-receipt", plantreceipt.ReceiptPageQueryHandler(s.API, s.Products))
	r.Post("/plant-receipt", plantreceipt.CreateReceiptCommandHandler(s.API))
	r.Post("/plant-receipt/print", plantreceipt.PrintReceiptCommandHandler(s.Products))
}

func (s *Server) registerKycRoutes(r chi.Router) {
	for _, role := range []string{rbac.RoleManager, rbac.RoleCustomerService} {
		s.Rbac.Add(role, "EKYC_FORM_VIEW", http.MethodGet, "/desk/ekyc")
		s.Rbac.Add(role, "EKYC_VALIDATE", http.MethodPost, "/desk/ekyc")
	}
	r.Get("/ekyc", ekyc.KycPageQueryHandler())
	r.Post("/ekyc", ekyc.ValidateKycCommandHandler(s.Kyc))
}

// registerAgencyDeleteRoutes wires the four-step deletion flow. Access is
// restricted to super admins in the auth middleware; no staff grants exist.
func (s *Server) registerAgencyDeleteRoutes(r chi.Router) {
	r.Get("/agency-delete", agencydelete.DeletionPageQueryHandler(s.Deletions))
	r.Post("/agency-delete/search", agencydelete.SearchAgencyCommandHandler(s.Deletions, s.API))
	r.Post("/agency-delete/verify", agencydelete.VerifyCodeCommandHandler(s.Deletions))
	r.Post("/agency-delete/confirm", agencydelete.ConfirmDeleteCommandHandler(s.Deletions, s.API, s.DB, s.Audit))
	r.Post("/agency-delete/reset", agencydelete.StartOverCommandHandler(s.Deletions))
}
