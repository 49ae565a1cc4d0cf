package agencydelete

import (
	stdcontext "context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	sessioncontext "gasdesk/frontend/shared/context"
	"gasdesk/infrastructure/argon"
	"gasdesk/infrastructure/erp"
	"gasdesk/models"
)

const testPassword = "operator-pass!1"

func testSession(t *testing.T) models.Session {
	t.Helper()
	hash, err := argon.CreateHash(testPassword, nil)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return models.Session{ID: "sess-1", Username: "root-op", Role: "super_admin", ReauthHash: hash}
}

func newFlowRequest(t *testing.T, session models.Session, path string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ctx := sessioncontext.NewContextWithSession(stdcontext.Background(), session)
	return req.WithContext(ctx)
}

func newFakeERP(t *testing.T, deleteCount *atomic.Int64) *erp.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/super-admin/agency/"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"_id": "ag-7", "name": "Vista Gas"},
			})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/super-admin/agency/"):
			deleteCount.Add(1)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "agency removed"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)
	return erp.NewClient(srv.URL)
}

func TestSearch_OpensVerifyStateWithCode(t *testing.T) {
	var deletes atomic.Int64
	api := newFakeERP(t, &deletes)
	store := NewStore()
	session := testSession(t)

	rr := httptest.NewRecorder()
	SearchAgencyCommandHandler(store, api).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/search", url.Values{"agency_id": {"ag-7"}}))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	f, ok := store.Get(session.ID)
	if !ok {
		t.Fatalf("expected flow state")
	}
	if f.State != StateVerify {
		t.Fatalf("expected verify state, got %s", f.State)
	}
	if len(f.Code) != CodeLength {
		t.Fatalf("expected %d-char code, got %q", CodeLength, f.Code)
	}
	if f.Agency.Name != "Vista Gas" {
		t.Fatalf("unexpected agency %+v", f.Agency)
	}
}

func TestSearch_RejectedWhileFlowInProgress(t *testing.T) {
	var deletes atomic.Int64
	api := newFakeERP(t, &deletes)
	store := NewStore()
	session := testSession(t)
	store.Set(session.ID, FlowState{State: StateVerify, Code: "ABCD2345"})

	rr := httptest.NewRecorder()
	SearchAgencyCommandHandler(store, api).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/search", url.Values{"agency_id": {"ag-8"}}))

	if loc := rr.Header().Get("Location"); !strings.Contains(loc, "already+in+progress") {
		t.Fatalf("expected in-progress rejection, got %s", loc)
	}
}

func TestVerify_WrongCodeStaysInVerify(t *testing.T) {
	store := NewStore()
	session := testSession(t)
	store.Set(session.ID, FlowState{State: StateVerify, Code: "ABCD2345", Agency: erp.Agency{ID: "ag-7"}})

	rr := httptest.NewRecorder()
	VerifyCodeCommandHandler(store).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/verify", url.Values{"code": {"WRONG999"}}))

	f, _ := store.Get(session.ID)
	if f.State != StateVerify {
		t.Fatalf("expected to remain in verify, got %s", f.State)
	}
	if loc := rr.Header().Get("Location"); !strings.Contains(loc, "does+not+match") {
		t.Fatalf("expected mismatch message, got %s", loc)
	}
}

func TestVerify_CaseInsensitiveMatch(t *testing.T) {
	store := NewStore()
	session := testSession(t)
	store.Set(session.ID, FlowState{State: StateVerify, Code: "ABCD2345", Agency: erp.Agency{ID: "ag-7"}})

	rr := httptest.NewRecorder()
	VerifyCodeCommandHandler(store).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/verify", url.Values{"code": {" abcd2345 "}}))

	f, _ := store.Get(session.ID)
	if f.State != StateConfirm {
		t.Fatalf("expected confirm state after lowercase match, got %s", f.State)
	}
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
}

func TestConfirm_DeleteNeverIssuedWithoutVerifiedCode(t *testing.T) {
	var deletes atomic.Int64
	api := newFakeERP(t, &deletes)
	store := NewStore()
	session := testSession(t)
	// Flow still in verify: the code was never matched.
	store.Set(session.ID, FlowState{State: StateVerify, Code: "ABCD2345", Agency: erp.Agency{ID: "ag-7"}})

	rr := httptest.NewRecorder()
	ConfirmDeleteCommandHandler(store, api, nil, nil).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/confirm", url.Values{
		"confirm":  {"1"},
		"password": {testPassword},
	}))

	if deletes.Load() != 0 {
		t.Fatalf("delete must not be issued before code verification")
	}
	if loc := rr.Header().Get("Location"); !strings.Contains(loc, "no+verified+deletion") {
		t.Fatalf("expected rejection, got %s", loc)
	}
}

func TestConfirm_RequiresCheckboxAndPassword(t *testing.T) {
	var deletes atomic.Int64
	api := newFakeERP(t, &deletes)
	store := NewStore()
	session := testSession(t)
	store.Set(session.ID, FlowState{State: StateConfirm, Code: "ABCD2345", Agency: erp.Agency{ID: "ag-7"}})

	rr := httptest.NewRecorder()
	ConfirmDeleteCommandHandler(store, api, nil, nil).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/confirm", url.Values{
		"password": {testPassword},
	}))
	if deletes.Load() != 0 {
		t.Fatalf("delete must not be issued without the confirmation box")
	}

	rr = httptest.NewRecorder()
	ConfirmDeleteCommandHandler(store, api, nil, nil).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/confirm", url.Values{
		"confirm":  {"1"},
		"password": {"wrong-password"},
	}))
	if deletes.Load() != 0 {
		t.Fatalf("delete must not be issued with a failed password check")
	}
}

func TestConfirm_HappyPathReachesResult(t *testing.T) {
	var deletes atomic.Int64
	api := newFakeERP(t, &deletes)
	store := NewStore()
	session := testSession(t)
	store.Set(session.ID, FlowState{State: StateConfirm, Code: "ABCD2345", Agency: erp.Agency{ID: "ag-7", Name: "Vista Gas"}})

	rr := httptest.NewRecorder()
	ConfirmDeleteCommandHandler(store, api, nil, nil).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/confirm", url.Values{
		"confirm":  {"1"},
		"password": {testPassword},
	}))

	if deletes.Load() != 1 {
		t.Fatalf("expected exactly one delete request, got %d", deletes.Load())
	}
	f, _ := store.Get(session.ID)
	if f.State != StateResult {
		t.Fatalf("expected result state, got %s", f.State)
	}
	if !f.Result.Success || f.Result.AgencyName != "Vista Gas" || f.Result.Message != "agency removed" {
		t.Fatalf("unexpected result %+v", f.Result)
	}
}

func TestStartOver_ResetsToSearch(t *testing.T) {
	store := NewStore()
	session := testSession(t)
	store.Set(session.ID, FlowState{State: StateResult})

	rr := httptest.NewRecorder()
	StartOverCommandHandler(store).ServeHTTP(rr, newFlowRequest(t, session, "/desk/agency-delete/reset", url.Values{}))

	if _, ok := store.Get(session.ID); ok {
		t.Fatalf("expected flow state to be dropped")
	}
}
