package password

import (
	"strings"
	"testing"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret1" || hash == "" {
		t.Fatalf("expected an opaque hash, got %q", hash)
	}
	if !strings.HasPrefix(hash, "$2a$12$") {
		t.Fatalf("expected cost-12 bcrypt hash, got %q", hash)
	}

	if !h.Verify("secret1", hash) {
		t.Fatalf("expected correct password to verify")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHasher_Verify_GarbageHash(t *testing.T) {
	h := NewHasher()
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected verification against garbage to fail")
	}
}
