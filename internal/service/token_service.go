package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/policy"
)

// TokenService provides high-level session operations: login, refresh, request authentication
// and email confirmation. It composes the TokenManager with user lookups.
type TokenService struct {
	manager   model.TokenManager
	users     model.UserProvider
	publisher model.EmailPublisher
	logger    *logger.Logger
}

// NewTokenService creates a TokenService. publisher may be nil, in which case confirmation
// tokens are issued but not dispatched.
func NewTokenService(
	manager model.TokenManager,
	users model.UserProvider,
	publisher model.EmailPublisher,
	logger *logger.Logger,
) *TokenService {
	return &TokenService{manager: manager, users: users, publisher: publisher, logger: logger}
}

// Issue creates a token pair for an active user.
func (s *TokenService) Issue(ctx context.Context, user model.User) (model.TokenPair, error) {
	if err := policy.CheckActive(user).Err(); err != nil {
		return model.TokenPair{}, model.ErrUserInactive
	}

	pair, err := s.manager.CreateTokenPair(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue token pair: %w", err)
	}

	s.logger.Debug("Token service: session issued", "user_id", user.ID)

	return pair, nil
}

// Login checks credentials and issues a token pair. Accounts with an unconfirmed email are
// refused with model.ErrEmailNotConfirmed, except superadmins.
func (s *TokenService) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	user, err := s.users.ValidateCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			s.logger.Info("Token service: login failed", "username", username)
		}
		return model.TokenPair{}, err
	}

	if !policy.CheckEmailConfirmed(user).Allowed {
		s.logger.Debug("Token service: login refused, email not verified", "user", user)
		return model.TokenPair{}, model.ErrEmailNotConfirmed
	}

	return s.Issue(ctx, user)
}

// Refresh exchanges a refresh token for a new pair. The user is resolved again so deleted and
// deactivated accounts cannot keep a session alive.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (model.TokenPair, error) {
	userID, err := s.manager.DecodeRefreshToken(presentedRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}

	user, err := s.resolve(ctx, userID)
	if err != nil {
		return model.TokenPair{}, err
	}

	return s.Issue(ctx, user)
}

// Authenticate resolves the user behind an access token.
func (s *TokenService) Authenticate(ctx context.Context, accessToken string) (model.User, error) {
	userID, err := s.manager.DecodeAccessToken(accessToken)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.resolve(ctx, userID)
	if err != nil {
		return model.User{}, err
	}

	if err := policy.CheckActive(user).Err(); err != nil {
		s.logger.Warn("Token service: inactive user presented a valid token", "user", user)
		return model.User{}, model.ErrUserInactive
	}

	return user, nil
}

// RequestEmailConfirmation issues an email confirmation token for user and hands it to the
// mail pipeline. Dispatch failures are logged and do not fail the call.
func (s *TokenService) RequestEmailConfirmation(ctx context.Context, user model.User) (string, error) {
	if user.IsEmailConfirmed {
		return "", model.ErrAlreadyConfirmed
	}

	tok, err := s.manager.CreateEmailConfirmationToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue email confirmation token: %w", err)
	}

	if s.publisher == nil {
		s.logger.Debug("Token service: email dispatch skipped", "user_id", user.ID)
		return tok, nil
	}

	job := model.EmailConfirmationJob{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    tok,
	}
	if err := s.publisher.PublishEmailConfirmation(ctx, job); err != nil {
		s.logger.Error("Token service: failed to publish email confirmation",
			"user_id", user.ID,
			"error", err.Error())
	}

	return tok, nil
}

// ConfirmEmail validates an email confirmation token and marks the address as confirmed.
func (s *TokenService) ConfirmEmail(ctx context.Context, confirmationToken string) (model.User, error) {
	claims, err := s.manager.DecodeEmailConfirmationToken(confirmationToken)
	if err != nil {
		return model.User{}, err
	}

	return s.users.ConfirmEmail(ctx, claims.UserID, claims.Email)
}

func (s *TokenService) resolve(ctx context.Context, userID int64) (model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Debug("Token service: token subject no longer exists", "user_id", userID)
		return model.User{}, model.ErrInvalidToken
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	return user, nil
}
