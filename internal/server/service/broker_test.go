package service

import (
	"context"
	"errors"
	"testing"

	"taskmaster/internal/server/config"
	"taskmaster/internal/server/store"
	"taskmaster/internal/shared/token"
)

func testConfig() config.Config {
	return config.Config{
		Secret:       "server-secret",
		ClientSecret: "client-secret",
		AuthSubject:  "AUTH_USER",
	}
}

func newTestBroker(t *testing.T, name string) (*KeyBroker, *store.Gateway) {
	t.Helper()
	g := store.New("file:"+name+"?mode=memory&cache=shared", nil)
	if !g.Connected() {
		t.Fatal("store did not connect")
	}
	t.Cleanup(func() { _ = g.Close() })
	return NewKeyBroker(g, testConfig(), nil), g
}

func seedAPIKey(t *testing.T, g *store.Gateway, secret string) string {
	t.Helper()
	key, err := token.Sign([]byte(secret), "AUTH_USER", 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.PutAPIKey(context.Background(), "AUTH_USER", key); err != nil {
		t.Fatal(err)
	}
	return key
}

func TestExchange(t *testing.T) {
	broker, g := newTestBroker(t, "broker_exchange")
	stored := seedAPIKey(t, g, "server-secret")
	clientTok, _ := token.Sign([]byte("client-secret"), "AUTH_USER", 0)

	key, err := broker.Exchange(context.Background(), clientTok)
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if key != stored {
		t.Fatalf("exchange released %q, want stored key", key)
	}
}

func TestExchangeRejectsBadClientToken(t *testing.T) {
	broker, g := newTestBroker(t, "broker_badclient")
	seedAPIKey(t, g, "server-secret")

	wrongSecret, _ := token.Sign([]byte("not-the-client-secret"), "AUTH_USER", 0)
	wrongSubject, _ := token.Sign([]byte("client-secret"), "SOMEONE_ELSE", 0)
	for _, tok := range []string{"", "garbage", wrongSecret, wrongSubject} {
		if _, err := broker.Exchange(context.Background(), tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: want ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestExchangeRejectsTamperedStoredKey(t *testing.T) {
	broker, g := newTestBroker(t, "broker_tampered")
	// stored key signed with the wrong secret must never be released
	seedAPIKey(t, g, "attacker-secret")
	clientTok, _ := token.Sign([]byte("client-secret"), "AUTH_USER", 0)

	if _, err := broker.Exchange(context.Background(), clientTok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestExchangeMissingKeyRecord(t *testing.T) {
	broker, _ := newTestBroker(t, "broker_missing")
	clientTok, _ := token.Sign([]byte("client-secret"), "AUTH_USER", 0)

	if _, err := broker.Exchange(context.Background(), clientTok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestExchangeUnavailableStore(t *testing.T) {
	g := store.New("file:/no/such/dir/broker.db", nil)
	broker := NewKeyBroker(g, testConfig(), nil)
	clientTok, _ := token.Sign([]byte("client-secret"), "AUTH_USER", 0)

	if _, err := broker.Exchange(context.Background(), clientTok); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestServerKey(t *testing.T) {
	broker, g := newTestBroker(t, "broker_serverkey")
	if got := broker.ServerKey(context.Background()); got != "" {
		t.Fatalf("key before seeding = %q, want empty", got)
	}
	stored := seedAPIKey(t, g, "server-secret")
	if got := broker.ServerKey(context.Background()); got != stored {
		t.Fatalf("ServerKey = %q, want stored key", got)
	}
}

func TestServerKeyRejectsTampered(t *testing.T) {
	broker, g := newTestBroker(t, "broker_serverkey_bad")
	seedAPIKey(t, g, "attacker-secret")
	if got := broker.ServerKey(context.Background()); got != "" {
		t.Fatalf("tampered key released: %q", got)
	}
}
