package ports

import "github.com/fiberops/circuitdesk/internal/core/domain"

// SessionStore persists the single signed-in operator record between
// invocations. Absence means logged out.
//
// Load reports ok=false when no session is present or the stored record is
// unreadable; a corrupt store must read as absent, never as an error the
// caller could mistake for a live session.
type SessionStore interface {
	Save(sess domain.Session) error
	Load() (domain.Session, bool)
	Clear() error
}
