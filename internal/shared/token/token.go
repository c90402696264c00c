// Package token signs and verifies the HS256 credentials used by both
// tiers of authentication: the stored API key and client access tokens.
package token

import (
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks a signed token against a secret and an expected subject
// claim. The same verifier serves both credential tiers, so the secret is
// always a parameter, never stored.
type Verifier struct {
	subject string
	logger  *log.Logger
}

func NewVerifier(subject string, logger *log.Logger) *Verifier {
	return &Verifier{subject: subject, logger: logger}
}

// Verify reports whether tok carries a valid HS256 signature under secret
// and names the expected subject. It fails closed: malformed tokens,
// signature mismatches and missing claims all yield false.
func (v *Verifier) Verify(tok string, secret []byte) bool {
	parsed, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		v.logf("token verification failed: %v", err)
		return false
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		v.logf("token verification failed: unexpected claims type")
		return false
	}
	name, _ := claims["name"].(string)
	if name != v.subject {
		v.logf("token verification failed: unknown subject")
		return false
	}
	return true
}

func (v *Verifier) logf(format string, args ...any) {
	if v.logger != nil {
		v.logger.Printf(format, args...)
	}
}

// Sign issues an HS256 token naming subject. A zero ttl means no expiry,
// which is how stored API keys are minted.
func Sign(secret []byte, subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{"name": subject}
	if ttl != 0 {
		claims["exp"] = time.Now().Add(ttl).Unix()
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}
