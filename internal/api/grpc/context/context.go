package context

import (
	"context"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

type userKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager represents a gRPC context manager for the authenticated user.
// The authenticate interceptor stores the resolved user and handlers read it back.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext stores the user in the request context.
// The whole snapshot is kept so handlers never reload the caller.
//
// Parameters:
//   - ctx: The gRPC request context
//   - user: The authenticated user
//
// Returns a new context carrying the user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext retrieves the user stored by SetUserToContext.
//
// Parameters:
//   - ctx: The gRPC request context
//
// Returns the user and a boolean indicating if a user was found.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	return user, ok
}
