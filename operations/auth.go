package operations

import (
	"context"
	"errors"
	"strings"
	"time"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler verifies HS256 bearer tokens. The token subject becomes the owner of
// every idempotency record the caller creates.
//
//encore:authhandler
func AuthHandler(ctx context.Context, token string) (auth.UID, error) {
	return newTokenVerifier([]byte(secrets.AuthTokenSigningKey), time.Now).verify(token)
}

type tokenVerifier struct {
	key []byte
	now func() time.Time
}

func newTokenVerifier(key []byte, now func() time.Time) *tokenVerifier {
	if now == nil {
		now = time.Now
	}
	return &tokenVerifier{key: key, now: now}
}

func (v *tokenVerifier) verify(token string) (auth.UID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "token is required"}
	}
	if len(v.key) == 0 {
		rlog.Error("auth token signing key is not configured")
		return "", &errs.Error{Code: errs.Internal, Message: "authentication is not configured"}
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return "", mapTokenError(err)
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "token subject is required"}
	}
	return auth.UID(subject), nil
}

// mapTokenError translates jwt library errors to API errors.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &errs.Error{Code: errs.Unauthenticated, Message: "token is expired"}
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return &errs.Error{Code: errs.Unauthenticated, Message: "token is not valid yet"}
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return &errs.Error{Code: errs.Unauthenticated, Message: "token exp is required"}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &errs.Error{Code: errs.Unauthenticated, Message: "token signature is invalid"}
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return &errs.Error{Code: errs.Unauthenticated, Message: "token alg is invalid"}
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &errs.Error{Code: errs.Unauthenticated, Message: "token is malformed"}
	}
	return &errs.Error{Code: errs.Unauthenticated, Message: "token is invalid"}
}
