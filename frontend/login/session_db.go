package login

import (
	"context"
	"database/sql"
	"strings"

	"github.com/uptrace/bun"

	"gasdesk/infrastructure/sqlite"
	"gasdesk/models"
)

func persistSession(ctx context.Context, db *sqlite.DB, session models.Session) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&models.Session{
			ID:         session.ID,
			Username:   session.Username,
			Name:       session.Name,
			Role:       session.Role,
			ReauthHash: session.ReauthHash,
			ExpiresAt:  session.ExpiresAt,
		}).Exec(ctx)
		return err
	})
}

// DeleteSessionByToken removes a session row; a blank token is a no-op.
func DeleteSessionByToken(ctx context.Context, db *sqlite.DB, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*models.Session)(nil)).Where("id = ?", token).Exec(ctx)
		return err
	})
}

// LoadSessionByToken loads a session row and evicts it when expired.
func LoadSessionByToken(ctx context.Context, db *sqlite.DB, token string) (models.Session, error) {
	var session models.Session
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&session).
			Where("s.id = ?", token).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return models.Session{}, err
	}
	if session.Expired() {
		_ = DeleteSessionByToken(ctx, db, token)
		return models.Session{}, sql.ErrNoRows
	}
	return session, nil
}
