package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/apierror"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/policy"
)

// Authorize rejects calls whose user role is not allowed for the method.
// Methods without a rule are open to any authenticated user.
type Authorize struct {
	rules          map[string][]model.Role
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthorize creates an Authorize middleware. rules maps full method names to allowed roles.
func NewAuthorize(rules map[string][]model.Role, contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{rules: rules, contextManager: contextManager, logger: logger}
}

// UnaryServerInterceptor enforces the role rules.
func (a *Authorize) UnaryServerInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	allowed, ok := a.rules[info.FullMethod]
	if !ok {
		return handler(ctx, req)
	}

	user, ok := a.contextManager.GetUserFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, apierror.MessageInvalidToken)
	}

	if err := policy.CheckRole(user.Role, allowed...).Err(); err != nil {
		a.logger.Warn("Authorize: role is not allowed",
			"method", info.FullMethod,
			"user", user)
		return nil, apierror.ToStatus(err)
	}

	return handler(ctx, req)
}
