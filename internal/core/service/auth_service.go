package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
)

// AuthService implements sign-in, sign-out and operator registration.
// It is the only writer of the persisted session.
type AuthService struct {
	client   ports.AuthClient
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(client ports.AuthClient, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{client: client, sessions: sessions, logger: logger}
}

// Login authenticates against the remote service and persists the returned
// session record, overwriting any previous session.
func (s *AuthService) Login(ctx context.Context, login, senha string) (domain.Session, error) {
	if login == "" || senha == "" {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	sess, err := s.client.Login(ctx, login, senha)
	if err != nil {
		s.logger.Error().Err(err).Str("login", login).Msg("sign-in failed")
		return domain.Session{}, err
	}

	if err := s.sessions.Save(sess); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info().Str("login", sess.Login).Str("permissao", sess.Permissao).Msg("signed in")
	return sess, nil
}

// Logout clears the persisted session. Signing out while already signed out
// is not an error.
func (s *AuthService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info().Msg("signed out")
	return nil
}

// RegisterUser checks that all fields are present, that the password
// confirmation matches and that the role is known, and only then creates the
// account remotely. It returns the service's confirmation message.
func (s *AuthService) RegisterUser(ctx context.Context, input ports.RegisterUserInput, confirm string) (string, error) {
	var missing []string
	if input.Nome == "" {
		missing = append(missing, "nome")
	}
	if input.Login == "" {
		missing = append(missing, "login")
	}
	if input.Senha == "" {
		missing = append(missing, "senha")
	}
	if confirm == "" {
		missing = append(missing, "confirmar senha")
	}
	if len(missing) > 0 {
		return "", &domain.ValidationError{Fields: missing}
	}
	if input.Senha != confirm {
		return "", domain.ErrPasswordMismatch
	}
	if input.Permissao != domain.RoleUser && input.Permissao != domain.RoleAdmin {
		return "", domain.ErrInvalidRole
	}

	msg, err := s.client.RegisterUser(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("login", input.Login).Msg("registration failed")
		return "", err
	}

	s.logger.Info().Str("login", input.Login).Str("permissao", input.Permissao).Msg("operator registered")
	return msg, nil
}
