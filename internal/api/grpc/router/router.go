package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/handler"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/middleware"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/policy"
)

// TokenService covers session handling and bearer token authentication.
type TokenService interface {
	handler.SessionService
	middleware.TokenService
}

// Router represents a gRPC router for the contacts API.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	users          handler.UserService
	contacts       handler.ContactService
	tokens         TokenService
	resolver       model.AvatarResolver
	storage        model.AvatarStorage
	contextManager model.ContextManager
	reserved       []string
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
// It initializes a gRPC router with auth, users and contacts services.
//
// Parameters:
//   - users: The user management service
//   - contacts: The address book service
//   - tokens: The session and bearer token service
//   - resolver: Default avatar resolver used on avatar reset
//   - storage: Avatar object storage, nil when uploads are disabled
//   - contextManager: Carries the authenticated user between interceptors and handlers
//   - reserved: Usernames nobody may register or take
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	users handler.UserService,
	contacts handler.ContactService,
	tokens TokenService,
	resolver model.AvatarResolver,
	storage model.AvatarStorage,
	contextManager model.ContextManager,
	reserved []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		users:          users,
		contacts:       contacts,
		tokens:         tokens,
		resolver:       resolver,
		storage:        storage,
		contextManager: contextManager,
		reserved:       reserved,
		logger:         logger,
	}
}

// AccessRules maps user management methods to the roles allowed to call them.
// Methods missing here are open to every authenticated user.
func AccessRules() map[string][]model.Role {
	users := func(method string) string {
		return handler.FullMethod(handler.UsersServiceName, method)
	}
	return map[string][]model.Role{
		users("List"):   policy.ModeratorRoles,
		users("Get"):    policy.ModeratorRoles,
		users("Create"): policy.AdminRoles,
		users("Update"): policy.AdminRoles,
		users("Delete"): policy.AdminRoles,
	}
}

// requiresAuth selects the methods guarded by the authentication interceptor.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	for _, service := range []string{handler.UsersServiceName, handler.ContactsServiceName} {
		if strings.HasPrefix(c.FullMethod(), "/"+service+"/") {
			return true
		}
	}
	return false
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging, authentication of the Users and Contacts
// services and per-method role checks. Auth, health and reflection stay public.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)
	authorize := middleware.NewAuthorize(AccessRules(), r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
			authorize.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)
	r.registerAuthRoutes(s)
	r.registerUsersRoutes(s)
	r.registerContactsRoutes(s)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.users, r.tokens, r.reserved, r.logger)
	handler.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerUsersRoutes(server *grpc.Server) {
	var opts []handler.UsersOption
	if r.storage != nil {
		opts = append(opts, handler.WithAvatarStorage(r.storage))
	}
	usersHandler := handler.NewUsers(r.users, r.resolver, r.contextManager, r.reserved, r.logger, opts...)
	handler.RegisterUsersServer(server, usersHandler)
}

func (r *Router) registerContactsRoutes(server *grpc.Server) {
	contactsHandler := handler.NewContacts(r.contacts, r.contextManager, r.logger)
	handler.RegisterContactsServer(server, contactsHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	hs := health.NewServer()
	hs.SetServingStatus(handler.AuthServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(handler.UsersServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(handler.ContactsServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)
}
