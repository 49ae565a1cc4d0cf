package agencydelete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sessioncontext "gasdesk/frontend/shared/context"
	"gasdesk/frontend/shared/nav"
	"gasdesk/infrastructure/argon"
	"gasdesk/infrastructure/audit"
	"gasdesk/infrastructure/erp"
	"gasdesk/infrastructure/sqlite"
)

const basePath = "/desk/agency-delete"

// DeletionPageQueryHandler renders whichever step of the flow the session is
// currently in.
func DeletionPageQueryHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		data := PageData{
			State:        StateSearch,
			Nav:          nav.FromRequest(r),
			ErrorMessage: r.URL.Query().Get("error"),
		}
		if f, ok := store.Get(session.ID); ok {
			data.State = f.State
			data.Agency = f.Agency
			data.Code = f.Code
			data.Result = f.Result
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := DeletionPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render deletion page", http.StatusInternalServerError)
			return
		}
	}
}

// SearchAgencyCommandHandler looks up the agency and, on success, opens a
// flow in the verify state with a freshly generated confirmation code.
func SearchAgencyCommandHandler(store *Store, api *erp.Client) http.HandlerFunc {
	machine := Transitions()
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		// The search input is disabled once an agency is loaded; a second
		// lookup for the same session is rejected rather than re-entered.
		if f, ok := store.Get(session.ID); ok && f.State != StateSearch {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("a deletion is already in progress, start over first"), http.StatusSeeOther)
			return
		}

		agencyID := strings.TrimSpace(r.FormValue("agency_id"))
		if agencyID == "" {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("agency id is required"), http.StatusSeeOther)
			return
		}

		agency, err := api.GetAgencyByID(r.Context(), agencyID)
		if err != nil {
			store.Delete(session.ID)
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				http.Redirect(w, r, basePath+"?error="+url.QueryEscape(apiErr.Message), http.StatusSeeOther)
				return
			}
			slog.Error("agency lookup failed", slog.String("agency_id", agencyID), slog.Any("err", err))
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("agency lookup failed, try again"), http.StatusSeeOther)
			return
		}

		state, err := machine.Transition(StateSearch, StateVerify)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		store.Set(session.ID, FlowState{
			ID:     uuid.NewString(),
			State:  state,
			Agency: agency,
			Code:   newConfirmationCode(),
		})
		http.Redirect(w, r, basePath, http.StatusSeeOther)
	}
}

// VerifyCodeCommandHandler gates progression on the retyped confirmation
// code.
func VerifyCodeCommandHandler(store *Store) http.HandlerFunc {
	machine := Transitions()
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		f, ok := store.Get(session.ID)
		if !ok || f.State != StateVerify {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("no deletion awaiting verification"), http.StatusSeeOther)
			return
		}

		if !codeMatches(f.Code, r.FormValue("code")) {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("confirmation code does not match"), http.StatusSeeOther)
			return
		}

		state, err := machine.Transition(f.State, StateConfirm)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		f.State = state
		store.Set(session.ID, f)
		http.Redirect(w, r, basePath, http.StatusSeeOther)
	}
}

// ConfirmDeleteCommandHandler issues the irreversible delete after the
// explicit confirmation and an operator password re-check.
func ConfirmDeleteCommandHandler(store *Store, api *erp.Client, db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	machine := Transitions()
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("invalid form data"), http.StatusSeeOther)
			return
		}

		f, ok := store.Get(session.ID)
		if !ok || f.State != StateConfirm {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("no verified deletion to confirm"), http.StatusSeeOther)
			return
		}

		if r.FormValue("confirm") == "" {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("tick the confirmation box to proceed"), http.StatusSeeOther)
			return
		}
		match, err := argon.CompareSecretAndHash(strings.TrimSpace(r.FormValue("password")), session.ReauthHash)
		if err != nil || !match {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape("password check failed"), http.StatusSeeOther)
			return
		}

		state, err := machine.Transition(f.State, StateResult)
		if err != nil {
			http.Redirect(w, r, basePath+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}

		message, err := api.DeleteAgency(r.Context(), f.Agency.ID)
		result := Result{AgencyName: f.Agency.Name}
		if err != nil {
			var apiErr *erp.APIError
			if errors.As(err, &apiErr) {
				result.Message = apiErr.Message
			} else {
				slog.Error("agency delete failed", slog.String("agency_id", f.Agency.ID), slog.Any("err", err))
				result.Message = "delete request failed, the agency was not removed"
			}
		} else {
			result.Success = true
			result.Message = message
			writeDeletionAudit(r, db, auditSvc, session.Username, f)
		}

		f.State = state
		f.Result = result
		store.Set(session.ID, f)
		http.Redirect(w, r, basePath, http.StatusSeeOther)
	}
}

// StartOverCommandHandler drops the flow and returns to search.
func StartOverCommandHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if session, ok := sessioncontext.GetSessionFromContext(r.Context()); ok {
			store.Delete(session.ID)
		}
		http.Redirect(w, r, basePath, http.StatusSeeOther)
	}
}

func writeDeletionAudit(r *http.Request, db *sqlite.DB, auditSvc *audit.Service, username string, f FlowState) {
	if db == nil || auditSvc == nil {
		return
	}
	err := db.WithWriteTx(r.Context(), func(ctx context.Context, tx bun.Tx) error {
		return auditSvc.Write(ctx, tx, username, "agency.delete", "agency", f.Agency.ID, f.Agency, nil)
	})
	if err != nil {
		slog.Error("write deletion audit failed", slog.String("agency_id", f.Agency.ID), slog.Any("err", err))
	}
}
