package middleware

import (
	"context"
	"errors"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/apierror"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

// TokenService resolves users from bearer tokens.
type TokenService interface {
	Authenticate(ctx context.Context, accessToken string) (model.User, error)
}

// Authenticate validates bearer tokens and injects the user into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the authorization header, resolves the user and returns a context carrying it.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	tokenString, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, apierror.MessageMissingToken)
	}

	user, err := m.tokenService.Authenticate(ctx, tokenString)
	if err != nil {
		if !errors.Is(err, model.ErrInvalidToken) && !errors.Is(err, model.ErrUserInactive) {
			m.logger.Error("Authenticate: failed to resolve user", "error", err.Error())
		}
		return nil, apierror.ToStatus(err)
	}

	return m.contextManager.SetUserToContext(ctx, user), nil
}
