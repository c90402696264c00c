package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"taskmaster/internal/shared/token"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd("1.0.0", "2026-08-30")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1.0.0") {
		t.Fatalf("version output: %q", out.String())
	}
}

func TestMintClientToken(t *testing.T) {
	os.Setenv("TASKMASTER_CLIENT_SECRET", "cli-client-secret")
	os.Setenv("TASKMASTER_AUTH_USER", "cli-subject")
	defer func() {
		os.Unsetenv("TASKMASTER_CLIENT_SECRET")
		os.Unsetenv("TASKMASTER_AUTH_USER")
	}()

	root := NewRootCmd("dev", "unknown")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"keys", "mint-client"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	tok := strings.TrimSpace(out.String())
	if tok == "" {
		t.Fatal("no token printed")
	}
	v := token.NewVerifier("cli-subject", nil)
	if !v.Verify(tok, []byte("cli-client-secret")) {
		t.Fatalf("minted token does not verify: %q", tok)
	}
}

func TestMintAPIKeyStoresVerifiableKey(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/keys.db"
	os.Setenv("TASKMASTER_STORE_DSN", dsn)
	os.Setenv("TASKMASTER_SECRET", "cli-server-secret")
	os.Setenv("TASKMASTER_AUTH_USER", "cli-subject")
	defer func() {
		os.Unsetenv("TASKMASTER_STORE_DSN")
		os.Unsetenv("TASKMASTER_SECRET")
		os.Unsetenv("TASKMASTER_AUTH_USER")
	}()

	root := NewRootCmd("dev", "unknown")
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"keys", "mint-api", "--print"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	key := lines[len(lines)-1]
	v := token.NewVerifier("cli-subject", nil)
	if !v.Verify(key, []byte("cli-server-secret")) {
		t.Fatalf("stored key does not verify: %q", key)
	}
}
