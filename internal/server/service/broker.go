package service

import (
	"context"
	"errors"
	"log"

	"taskmaster/internal/server/config"
	"taskmaster/internal/server/store"
	"taskmaster/internal/shared/token"
)

// ErrInvalidToken marks a failed credential check during key exchange.
var ErrInvalidToken = errors.New("invalid access token")

// KeyBroker exchanges a verified client access token for the stored API
// key. Both tiers are checked: the client token against the client
// secret, and the stored key's own signature against the server secret,
// so a leaked client secret alone never releases a usable key.
type KeyBroker struct {
	store        *store.Gateway
	verifier     *token.Verifier
	secret       []byte
	clientSecret []byte
	subject      string
	logger       *log.Logger
}

func NewKeyBroker(g *store.Gateway, cfg config.Config, logger *log.Logger) *KeyBroker {
	return &KeyBroker{
		store:        g,
		verifier:     token.NewVerifier(cfg.AuthSubject, logger),
		secret:       []byte(cfg.Secret),
		clientSecret: []byte(cfg.ClientSecret),
		subject:      cfg.AuthSubject,
		logger:       logger,
	}
}

// Exchange validates clientToken and releases the stored API key.
// Verification failures and a missing key record report ErrInvalidToken;
// store.ErrUnavailable passes through for the 503 path.
func (b *KeyBroker) Exchange(ctx context.Context, clientToken string) (string, error) {
	if !b.verifier.Verify(clientToken, b.clientSecret) {
		return "", ErrInvalidToken
	}
	rec, err := b.store.GetAPIKey(ctx, b.subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if !b.verifier.Verify(rec.Key, b.secret) {
		if b.logger != nil {
			b.logger.Printf("stored api key failed signature check")
		}
		return "", ErrInvalidToken
	}
	return rec.Key, nil
}

// ServerKey fetches and validates the stored API key once at startup.
// It returns the empty string when the key is missing, unverifiable or
// the store is down; the mediator then refuses all protected routes.
func (b *KeyBroker) ServerKey(ctx context.Context) string {
	rec, err := b.store.GetAPIKey(ctx, b.subject)
	if err != nil {
		if b.logger != nil {
			b.logger.Printf("api key not loaded: %v", err)
		}
		return ""
	}
	if !b.verifier.Verify(rec.Key, b.secret) {
		return ""
	}
	return rec.Key
}
