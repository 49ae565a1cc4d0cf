package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Session is the console operator session. Business data lives in the remote
// ERP; only session and audit state is stored locally.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID       string `bun:"id,pk"`
	Username string `bun:"username,notnull"`
	Name     string `bun:"name"`
	Role     string `bun:"role,notnull"`
	// ReauthHash is an argon2id hash of the operator password captured at
	// login, checked again before destructive actions.
	ReauthHash  string         `bun:"reauth_hash,notnull"`
	Permissions []string       `bun:"-"`
	Screens     map[string]int `bun:"-"`
	ExpiresAt   time.Time      `bun:"expires_at,notnull"`
	CreatedAt   time.Time      `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time      `bun:"updated_at,notnull,default:current_timestamp"`
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// AuditLog captures immutable change history for destructive console actions.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Username   string    `bun:"username,notnull"`
	Action     string    `bun:"action,notnull"`
	EntityType string    `bun:"entity_type,notnull"`
	EntityID   string    `bun:"entity_id,notnull"`
	BeforeJSON string    `bun:"before_json"`
	AfterJSON  string    `bun:"after_json"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
