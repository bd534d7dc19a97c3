package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/api/grpc/apierror"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/validate"
)

// Response messages.
const (
	MessageConfirmationSent = "Please check your email for the confirmation letter"
	MessageEmailVerified    = "Email verified successfully"
	MessagePasswordUpdated  = "Password updated successfully"
)

// UserService defines the user operations exposed over the API.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	UpdatePassword(ctx context.Context, user model.User, current, next string) (model.User, error)
	UpdateAvatar(ctx context.Context, user model.User, avatar *string) (model.User, error)
	GetContactsCount(ctx context.Context, userID int64) (int, error)
	GetByIDForAdmin(ctx context.Context, requester model.User, id int64) (model.UserView, error)
	ListUsers(ctx context.Context, requester model.User, page model.Pagination, filters model.UserFilters) ([]model.UserWithStats, int, error)
	CreateByAdmin(ctx context.Context, creator model.User, username, email, password, role string, isActive *bool) (model.User, error)
	UpdateByAdmin(ctx context.Context, requester model.User, targetID int64, update model.AdminUserUpdate) (model.AdminUpdateResult, error)
	DeleteByAdmin(ctx context.Context, requester model.User, targetID int64) (model.AdminDeleteResult, error)
}

// SessionService defines login, refresh and email confirmation operations.
type SessionService interface {
	Login(ctx context.Context, username, password string) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	RequestEmailConfirmation(ctx context.Context, user model.User) (string, error)
	ConfirmEmail(ctx context.Context, confirmationToken string) (model.User, error)
}

var _ AuthServer = (*Auth)(nil)

// Auth handles gRPC endpoints for registration and sessions.
type Auth struct {
	users    UserService
	sessions SessionService
	reserved []string
	logger   *logger.Logger
}

// NewAuth creates a new Auth handler. reserved lists usernames that cannot be registered.
func NewAuth(users UserService, sessions SessionService, reserved []string, logger *logger.Logger) *Auth {
	return &Auth{
		users:    users,
		sessions: sessions,
		reserved: reserved,
		logger:   logger,
	}
}

// Register creates a regular account and sends an email confirmation request.
func (h *Auth) Register(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest(in)
	username := strings.TrimSpace(req.str("username"))
	email := strings.TrimSpace(req.str("email"))
	password := req.str("password")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	h.logger.Debug("Auth handler: processing registration request", "username", username)

	if err := validate.Registration(username, email, password, h.reserved); err != nil {
		return nil, apierror.ToStatus(err)
	}

	user, err := h.users.Register(ctx, username, email, password)
	if err != nil {
		h.logError("registration failed", err, "username", username)
		return nil, apierror.ToStatus(err)
	}

	if _, err := h.sessions.RequestEmailConfirmation(ctx, user); err != nil {
		h.logger.Error("Auth handler: failed to request email confirmation",
			"user", user,
			"error", err.Error())
	}

	h.logger.Info("Auth handler: registration completed", "user", user)

	return userToStruct(user), nil
}

// Login exchanges credentials for a token pair.
func (h *Auth) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest(in)
	username := req.requiredString("username")
	password := req.requiredString("password")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	pair, err := h.sessions.Login(ctx, username, password)
	if err != nil {
		h.logError("login failed", err, "username", username)
		return nil, apierror.ToStatus(err)
	}

	h.logger.Info("Auth handler: login successful", "username", username)

	return tokenPairToStruct(pair), nil
}

// Refresh exchanges a refresh token for a new token pair.
func (h *Auth) Refresh(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest(in)
	refresh := req.requiredString("refresh_token")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	pair, err := h.sessions.Refresh(ctx, refresh)
	if err != nil {
		h.logError("token refresh failed", err)
		return nil, apierror.ToStatus(err)
	}

	h.logger.Debug("Auth handler: token refresh successful")

	return tokenPairToStruct(pair), nil
}

// ConfirmEmail marks the address carried by an email confirmation token as confirmed.
func (h *Auth) ConfirmEmail(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest(in)
	token := req.requiredString("token")
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	user, err := h.sessions.ConfirmEmail(ctx, token)
	if err != nil {
		h.logError("email confirmation failed", err)
		return nil, apierror.ToStatus(err)
	}

	h.logger.Info("Auth handler: email verified", "user", user)

	return messageStruct(MessageEmailVerified), nil
}

// RequestEmailConfirmation resends the confirmation letter. Unknown addresses get the same answer
// as known ones.
func (h *Auth) RequestEmailConfirmation(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest(in)
	email := strings.TrimSpace(req.requiredString("email"))
	if err := req.err(); err != nil {
		return nil, apierror.ToStatus(err)
	}

	user, err := h.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		h.logger.Info("Auth handler: confirmation requested for unknown email")
		return messageStruct(MessageConfirmationSent), nil
	}
	if err != nil {
		h.logError("failed to look up user by email", err)
		return nil, apierror.ToStatus(err)
	}

	if _, err := h.sessions.RequestEmailConfirmation(ctx, user); err != nil {
		h.logError("failed to request email confirmation", err, "user", user)
		return nil, apierror.ToStatus(err)
	}

	return messageStruct(MessageConfirmationSent), nil
}

// logError logs expected domain failures at debug level and everything else at error level.
func (h *Auth) logError(msg string, err error, args ...any) {
	logError(h.logger, "Auth handler: "+msg, err, args...)
}

func logError(l *logger.Logger, msg string, err error, args ...any) {
	args = append(args, "error", err.Error())
	if isDomainError(err) {
		l.Debug(msg, args...)
		return
	}
	l.Error(msg, args...)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		model.ErrNotFound,
		model.ErrInvalidToken,
		model.ErrInvalidCredentials,
		model.ErrUserInactive,
		model.ErrAlreadyConfirmed,
		model.ErrEmailNotConfirmed,
		model.ErrInvalidRole,
		model.ErrUserConflict,
		model.ErrBadProvidedData,
		model.ErrPermissionDenied,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
