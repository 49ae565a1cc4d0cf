package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gasdesk/infrastructure/audit"
	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
	"gasdesk/infrastructure/rbac"
	sessioncookie "gasdesk/infrastructure/session"
	"gasdesk/infrastructure/sqlite"
	"gasdesk/models"
)

type integrationEnv struct {
	server   *httptest.Server
	db       *sqlite.DB
	sessions *cache.UserSessionCache
}

func newFakeERP(t *testing.T) *erp.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/login":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "welcome",
				"data":    map[string]any{"name": "Meera", "role": "admin"},
			})
		case "/admin/users":
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "users": []any{}})
		case "/admin/agency-stats":
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "stats": map[string]int{}})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
		}
	}))
	t.Cleanup(srv.Close)
	return erp.NewClient(srv.URL)
}

func setupIntegrationServer(t *testing.T) (*integrationEnv, *http.Client) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "server-integration.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	sessionCache := cache.NewUserSessionCache()
	rbacCache := cache.NewRbacRolesCache()
	rbacSvc := rbac.New(rbacCache)
	auditSvc := audit.NewService()

	s := NewServer("127.0.0.1:0", db, newFakeERP(t), sessionCache, rbacSvc, rbacCache, auditSvc)
	ts := httptest.NewServer(s.router)
	env := &integrationEnv{server: ts, db: db, sessions: sessionCache}
	t.Cleanup(func() {
		env.server.Close()
		_ = env.db.Close()
	})

	return env, newHTTPClient(t)
}

func newHTTPClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, baseURL, path string) *http.Response {
	t.Helper()
	resp, err := client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp
}

func csrfToken(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()
	u, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == "X-CSRF-Token" {
			return c.Value
		}
	}
	return ""
}

func postForm(t *testing.T, client *http.Client, baseURL, path string, data url.Values) *http.Response {
	t.Helper()
	if data == nil {
		data = url.Values{}
	}
	if token := csrfToken(t, client, baseURL); token != "" {
		data.Set("_csrf", token)
	}
	resp, err := client.PostForm(baseURL+path, data)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	env, client := setupIntegrationServer(t)
	resp := get(t, client, env.server.URL, "/health")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Fatalf("health body = %q, want ok", body)
	}
}

func TestRootRedirectsToLoginWithoutSession(t *testing.T) {
	env, client := setupIntegrationServer(t)
	resp := get(t, client, env.server.URL, "/")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("redirect = %q, want /login", loc)
	}
}

func TestDeskRoutesRequireSession(t *testing.T) {
	env, client := setupIntegrationServer(t)
	for _, path := range []string{"/desk/users", "/desk/agency", "/desk/stock/add", "/desk/ekyc"} {
		resp := get(t, client, env.server.URL, path)
		resp.Body.Close()
		if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
			t.Fatalf("GET %s = %d -> %q, want redirect to /login", path, resp.StatusCode, resp.Header.Get("Location"))
		}
	}
}

func TestCSRFRejectsUnsafeRequestWithoutToken(t *testing.T) {
	env, client := setupIntegrationServer(t)
	resp, err := client.PostForm(env.server.URL+"/login", url.Values{"username": {"meera"}, "password": {"pass1234"}})
	if err != nil {
		t.Fatalf("POST /login failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 without csrf token", resp.StatusCode)
	}
}

func TestLoginFlowReachesUsersScreen(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := get(t, client, env.server.URL, "/login")
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login page status = %d, want 200", resp.StatusCode)
	}

	resp = postForm(t, client, env.server.URL, "/login", url.Values{
		"username": {"meera"},
		"password": {"pass1234"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login post status = %d, want redirect", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); !strings.HasPrefix(loc, "/desk/users") {
		t.Fatalf("login redirect = %q, want /desk/users", loc)
	}

	resp = get(t, client, env.server.URL, "/desk/users")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("users page after login status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Staff Users") {
		t.Fatal("users page body does not contain the screen title")
	}
}

func TestExpiredSessionIsEvictedAndRedirectedToLogin(t *testing.T) {
	env, client := setupIntegrationServer(t)

	env.sessions.AddSession(models.Session{
		ID:        "tok-expired",
		Username:  "meera",
		Name:      "Meera",
		Role:      "manager",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	u, err := url.Parse(env.server.URL)
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	client.Jar.SetCookies(u, []*http.Cookie{{Name: sessioncookie.CookieName, Value: "tok-expired"}})

	resp := get(t, client, env.server.URL, "/desk/users")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("redirect = %q, want /login", loc)
	}

	if _, ok := env.sessions.FindSessionBySessionToken("tok-expired"); ok {
		t.Fatal("expired session still cached after eviction")
	}
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == sessioncookie.CookieName {
			t.Fatalf("session cookie survived eviction: %q", c.Value)
		}
	}
}

func TestAgencyDeleteRestrictedToSuperAdmin(t *testing.T) {
	env, client := setupIntegrationServer(t)

	get(t, client, env.server.URL, "/login").Body.Close()
	// Fake ERP reports the operator as an agency admin, not a super admin.
	postForm(t, client, env.server.URL, "/login", url.Values{
		"username": {"meera"},
		"password": {"pass1234"},
	}).Body.Close()

	resp := get(t, client, env.server.URL, "/desk/agency-delete")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect away", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/desk/users" {
		t.Fatalf("redirect = %q, want /desk/users", loc)
	}
}
