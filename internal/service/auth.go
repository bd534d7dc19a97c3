package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/token"
)

// TokenSettings configure one token family.
type TokenSettings struct {
	Secret string
	TTL    time.Duration
}

// AuthConfig configures token issuance. Access and refresh tokens normally share a secret.
type AuthConfig struct {
	Algorithm         string
	Issuer            string
	Access            TokenSettings
	Refresh           TokenSettings
	EmailConfirmation TokenSettings
}

var _ model.TokenManager = (*Auth)(nil)

// Auth issues and decodes access, refresh and email confirmation tokens.
type Auth struct {
	cfg    AuthConfig
	logger *logger.Logger
}

// NewAuth creates an Auth service.
func NewAuth(cfg AuthConfig, logger *logger.Logger) *Auth {
	return &Auth{cfg: cfg, logger: logger}
}

// CreateAccessToken issues an access token for userID.
func (a *Auth) CreateAccessToken(userID int64) (string, error) {
	return a.create(model.TokenAccess, userID, nil)
}

// CreateRefreshToken issues a refresh token for userID.
func (a *Auth) CreateRefreshToken(userID int64) (string, error) {
	return a.create(model.TokenRefresh, userID, nil)
}

// CreateEmailConfirmationToken issues a token proving that userID owns email.
func (a *Auth) CreateEmailConfirmationToken(userID int64, email string) (string, error) {
	return a.create(model.TokenEmailConfirmation, userID, map[string]any{token.ClaimEmail: email})
}

// CreateTokenPair issues an access and a refresh token for userID.
func (a *Auth) CreateTokenPair(userID int64) (model.TokenPair, error) {
	access, err := a.CreateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := a.CreateRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

// DecodeAccessToken returns the user id of a valid access token.
func (a *Auth) DecodeAccessToken(tokenString string) (int64, error) {
	claims, err := a.decode(model.TokenAccess, tokenString)
	if err != nil {
		return 0, err
	}
	return a.subjectID(model.TokenAccess, claims)
}

// DecodeRefreshToken returns the user id of a valid refresh token.
func (a *Auth) DecodeRefreshToken(tokenString string) (int64, error) {
	claims, err := a.decode(model.TokenRefresh, tokenString)
	if err != nil {
		return 0, err
	}
	return a.subjectID(model.TokenRefresh, claims)
}

// DecodeEmailConfirmationToken returns the user id and email of a valid confirmation token.
func (a *Auth) DecodeEmailConfirmationToken(tokenString string) (model.EmailConfirmation, error) {
	claims, err := a.decode(model.TokenEmailConfirmation, tokenString)
	if err != nil {
		return model.EmailConfirmation{}, err
	}

	userID, err := a.subjectID(model.TokenEmailConfirmation, claims)
	if err != nil {
		return model.EmailConfirmation{}, err
	}

	email, _ := claims[token.ClaimEmail].(string)
	if email == "" {
		a.logger.Debug("Auth service: email confirmation token has no email claim", "user_id", userID)
		return model.EmailConfirmation{}, model.ErrInvalidToken
	}

	return model.EmailConfirmation{UserID: userID, Email: email}, nil
}

func (a *Auth) settings(kind model.TokenKind) TokenSettings {
	switch kind {
	case model.TokenAccess:
		return a.cfg.Access
	case model.TokenRefresh:
		return a.cfg.Refresh
	case model.TokenEmailConfirmation:
		return a.cfg.EmailConfirmation
	}
	panic(fmt.Sprintf("unknown token kind %d", int(kind)))
}

func (a *Auth) create(kind model.TokenKind, userID int64, extra map[string]any) (string, error) {
	s := a.settings(kind)

	claims := map[string]any{token.ClaimTokenType: kind.Type()}
	for k, v := range extra {
		claims[k] = v
	}
	if a.cfg.Issuer != "" {
		claims["iss"] = a.cfg.Issuer
	}

	issued, err := token.Issue(s.Secret, a.cfg.Algorithm, s.TTL, strconv.FormatInt(userID, 10), kind.Audience(), claims)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"token_type", kind.Type(),
			"user_id", userID,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue %s: %w", kind.Type(), err)
	}

	a.logger.Debug("Auth service: token issued",
		"token_type", kind.Type(),
		"user_id", userID,
		"jti", issued.ID)

	return issued.Token, nil
}

func (a *Auth) decode(kind model.TokenKind, tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, model.ErrInvalidToken
	}

	claims, err := token.Decode(tokenString, a.settings(kind).Secret, token.DecodeOptions{
		Algorithms: []string{a.cfg.Algorithm},
		Audience:   kind.Audience(),
		TokenType:  kind.Type(),
		Issuer:     a.cfg.Issuer,
	})
	if err != nil {
		a.logger.Debug("Auth service: token rejected",
			"token_type", kind.Type(),
			"error", err.Error())
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}

func (a *Auth) subjectID(kind model.TokenKind, claims jwt.MapClaims) (int64, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		a.logger.Debug("Auth service: token has no subject", "token_type", kind.Type())
		return 0, model.ErrInvalidToken
	}

	// ParseUint rejects signs, so only plain digit strings pass.
	id, err := strconv.ParseUint(sub, 10, 63)
	if err != nil {
		a.logger.Debug("Auth service: token subject is not a user id", "token_type", kind.Type())
		return 0, model.ErrInvalidToken
	}

	return int64(id), nil
}
