package ports

import (
	"context"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

// RegisterUserInput carries the data for creating an operator account.
type RegisterUserInput struct {
	Nome      string
	Login     string
	Senha     string
	Permissao string
}

// AuthClient talks to the authentication endpoints of the remote service.
type AuthClient interface {
	Login(ctx context.Context, login, senha string) (domain.Session, error)
	// RegisterUser creates an account and returns the service's confirmation
	// message.
	RegisterUser(ctx context.Context, input RegisterUserInput) (string, error)
}
