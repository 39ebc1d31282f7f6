// Package session implements the persisted signed-in-operator stores.
// Absence of a stored record means logged out; a record that cannot be read
// back intact is treated the same way.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
)

// FileStore keeps the session as an HS256-signed token in a single file.
// The signature makes an edited or truncated file read as absent instead of
// producing a half-trusted session.
type FileStore struct {
	path   string
	secret []byte
}

var _ ports.SessionStore = (*FileStore)(nil)

func NewFileStore(path, secret string) *FileStore {
	return &FileStore{path: path, secret: []byte(secret)}
}

// DefaultPath returns ~/.circuitdesk/session, falling back to the working
// directory when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".circuitdesk-session"
	}
	return filepath.Join(home, ".circuitdesk", "session")
}

func (s *FileStore) Save(sess domain.Session) error {
	claims := jwt.MapClaims{
		"login":     sess.Login,
		"nome":      sess.Nome,
		"permissao": sess.Permissao,
	}
	// No exp claim: sessions never expire client-side.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load reads the persisted session. Any failure (missing file, foreign
// signing method, bad signature, malformed claims) reads as logged out.
func (s *FileStore) Load() (domain.Session, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Session{}, false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(strings.TrimSpace(string(raw)), claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Session{}, false
	}

	sess := domain.Session{
		Login:     claimString(claims, "login"),
		Nome:      claimString(claims, "nome"),
		Permissao: claimString(claims, "permissao"),
	}
	if sess.IsZero() {
		return domain.Session{}, false
	}
	return sess, true
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
