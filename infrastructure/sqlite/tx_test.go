package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/uptrace/bun"
)

func TestWithWriteTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	if err := ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	boom := errors.New("boom")
	err := db.WithWriteTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO audit_logs (username, action, entity_type, entity_id) VALUES ('op', 'x', 'y', '1')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom error, got %v", err)
	}

	var count int
	if err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw("SELECT COUNT(*) FROM audit_logs").Scan(ctx, &count)
	}); err != nil {
		t.Fatalf("count audit_logs: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback, found %d rows", count)
	}
}

func TestWithReadTx_RejectsWrites(t *testing.T) {
	db := openTestDB(t)
	if err := ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO audit_logs (username, action, entity_type, entity_id) VALUES ('op', 'x', 'y', '1')`)
		return err
	})
	if err == nil {
		t.Fatalf("expected write on read handle to fail")
	}
}
