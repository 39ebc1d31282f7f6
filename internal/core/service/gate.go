package service

import (
	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
)

// Gate decides whether a caller may reach protected operations. It holds no
// authentication logic of its own: login writes the session, logout clears
// it, the gate only reads. An unreadable or tampered store reads as absent,
// so the gate fails closed.
type Gate struct {
	sessions ports.SessionStore
}

func NewGate(sessions ports.SessionStore) *Gate {
	return &Gate{sessions: sessions}
}

// IsAuthorized reports whether a signed-in operator record is present.
func (g *Gate) IsAuthorized() bool {
	sess, ok := g.sessions.Load()
	return ok && !sess.IsZero()
}

// Current returns the signed-in operator record, or ErrUnauthorized.
func (g *Gate) Current() (domain.Session, error) {
	sess, ok := g.sessions.Load()
	if !ok || sess.IsZero() {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return sess, nil
}

// RequireRole returns the session only when the operator holds the given
// role. Signed out maps to ErrUnauthorized, wrong role to ErrForbidden.
func (g *Gate) RequireRole(role string) (domain.Session, error) {
	sess, err := g.Current()
	if err != nil {
		return domain.Session{}, err
	}
	if sess.Permissao != role {
		return domain.Session{}, domain.ErrForbidden
	}
	return sess, nil
}
