package model

import "fmt"

// TokenKind selects one of the token families issued by the service.
type TokenKind int

const (
	// TokenAccess authorizes API calls.
	TokenAccess TokenKind = iota
	// TokenRefresh is exchanged for a new token pair.
	TokenRefresh
	// TokenEmailConfirmation proves ownership of an email address.
	TokenEmailConfirmation
)

// Token audiences.
const (
	AudienceAPI   = "api"
	AudienceEmail = "email"
)

// Type returns the token_type claim value of the kind.
func (k TokenKind) Type() string {
	switch k {
	case TokenAccess:
		return "access_token"
	case TokenRefresh:
		return "refresh_token"
	case TokenEmailConfirmation:
		return "email_confirmation_token"
	}
	panic(fmt.Sprintf("unknown token kind %d", int(k)))
}

// Audience returns the aud claim value of the kind.
func (k TokenKind) Audience() string {
	switch k {
	case TokenAccess, TokenRefresh:
		return AudienceAPI
	case TokenEmailConfirmation:
		return AudienceEmail
	}
	panic(fmt.Sprintf("unknown token kind %d", int(k)))
}

func (k TokenKind) String() string {
	return k.Type()
}

// TokenPair is an API session.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// EmailConfirmation is the payload of a decoded email confirmation token.
type EmailConfirmation struct {
	UserID int64
	Email  string
}

// TokenManager issues and decodes API and email confirmation tokens.
type TokenManager interface {
	CreateTokenPair(userID int64) (TokenPair, error)
	CreateEmailConfirmationToken(userID int64, email string) (string, error)
	DecodeAccessToken(token string) (int64, error)
	DecodeRefreshToken(token string) (int64, error)
	DecodeEmailConfirmationToken(token string) (EmailConfirmation, error)
}
