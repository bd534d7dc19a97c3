package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrExpiredToken is returned when exp has passed or nbf is in the future.
	ErrExpiredToken = errors.New("token expired")
	// ErrMalformedToken is returned for every other verification failure.
	ErrMalformedToken = errors.New("token malformed")
)

// Claim names beyond the registered ones.
const (
	ClaimTokenType = "token_type"
	ClaimEmail     = "email"
)

// Issued is a freshly signed token.
type Issued struct {
	ID    string
	Token string
}

// Issue signs a token for subject and audience. Technical claims (jti, iat, exp) and
// sub/aud override anything with the same name in extra.
func Issue(secretKey, algorithm string, ttl time.Duration, subject, audience string, extra map[string]any) (Issued, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return Issued{}, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	now := time.Now()
	jti := uuid.NewString()

	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["aud"] = audience
	claims["jti"] = jti
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secretKey))
	if err != nil {
		return Issued{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Issued{ID: jti, Token: signed}, nil
}

// DecodeOptions describe what a token must look like to be accepted.
type DecodeOptions struct {
	Algorithms []string
	// Audience, TokenType and Issuer are checked only when non-empty.
	Audience  string
	TokenType string
	Issuer    string

	SkipNotBefore bool
	SkipExpiry    bool
}

// Decode verifies the signature and claims of tokenString and returns its claims.
// Failures are either ErrExpiredToken or ErrMalformedToken.
func Decode(tokenString, secretKey string, opts DecodeOptions) (jwt.MapClaims, error) {
	parserOpts := []jwt.ParserOption{jwt.WithoutClaimsValidation()}
	if len(opts.Algorithms) > 0 {
		parserOpts = append(parserOpts, jwt.WithValidMethods(opts.Algorithms))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(secretKey), nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if err := validate(claims, opts, time.Now()); err != nil {
		return nil, err
	}

	return claims, nil
}

func validate(claims jwt.MapClaims, opts DecodeOptions, now time.Time) error {
	if !opts.SkipExpiry {
		exp, err := claims.GetExpirationTime()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
		if exp != nil && !now.Before(exp.Time) {
			return ErrExpiredToken
		}
	}

	if !opts.SkipNotBefore {
		nbf, err := claims.GetNotBefore()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
		if nbf != nil && now.Before(nbf.Time) {
			return ErrExpiredToken
		}
	}

	if jti, _ := claims["jti"].(string); jti == "" {
		return fmt.Errorf("%w: missing jti", ErrMalformedToken)
	}

	if opts.Audience != "" {
		aud, err := claims.GetAudience()
		if err != nil || len(aud) == 0 {
			return fmt.Errorf("%w: missing audience", ErrMalformedToken)
		}
		if !contains(aud, opts.Audience) {
			return fmt.Errorf("%w: audience mismatch", ErrMalformedToken)
		}
	}

	if opts.TokenType != "" {
		tokenType, _ := claims[ClaimTokenType].(string)
		if tokenType != opts.TokenType {
			return fmt.Errorf("%w: token type mismatch", ErrMalformedToken)
		}
	}

	if opts.Issuer != "" {
		iss, err := claims.GetIssuer()
		if err != nil || iss != opts.Issuer {
			return fmt.Errorf("%w: issuer mismatch", ErrMalformedToken)
		}
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
