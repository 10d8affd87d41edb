package devapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"
)

// CodeInvalidToken marks a bearer token that failed verification.
const CodeInvalidToken = "DEVAPI_INVALID_TOKEN"

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func (t tokenIssuer) issue(subject string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:  subject,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", oops.Code("DEVAPI_SIGN_FAILED").Wrap(err)
	}
	return signed, nil
}

// subject verifies token and returns its subject.
func (t tokenIssuer) subject(token string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	var claims jwt.RegisteredClaims
	if _, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}); err != nil {
		return "", oops.Code(CodeInvalidToken).Wrap(err)
	}
	if claims.Subject == "" {
		return "", oops.Code(CodeInvalidToken).Errorf("token has no subject")
	}
	return claims.Subject, nil
}
