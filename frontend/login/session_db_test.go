package login

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"gasdesk/models"
)

func TestLoadSessionByToken_LiveSession(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	session := models.Session{
		ID:        "tok-live",
		Username:  "asha",
		Name:      "Asha",
		Role:      "manager",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := persistSession(ctx, db, session); err != nil {
		t.Fatalf("persist session: %v", err)
	}

	loaded, err := LoadSessionByToken(ctx, db, "tok-live")
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if loaded.Username != "asha" || loaded.Role != "manager" {
		t.Fatalf("unexpected session %+v", loaded)
	}
}

func TestLoadSessionByToken_ExpiredSessionEvicted(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	session := models.Session{
		ID:        "tok-stale",
		Username:  "asha",
		Name:      "Asha",
		Role:      "manager",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := persistSession(ctx, db, session); err != nil {
		t.Fatalf("persist session: %v", err)
	}

	if _, err := LoadSessionByToken(ctx, db, "tok-stale"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for expired session, got %v", err)
	}

	// The expired row is deleted on first load, so the retry misses entirely.
	if _, err := LoadSessionByToken(ctx, db, "tok-stale"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows after eviction, got %v", err)
	}
}

func TestLoadSessionByToken_UnknownToken(t *testing.T) {
	db := openTestDB(t)

	if _, err := LoadSessionByToken(context.Background(), db, "tok-missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
