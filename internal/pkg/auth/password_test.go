package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	testhelpers "github.com/echocare/echocare/internal/test"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("expected hash to differ from password")
	}

	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("expected password to match hash: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestBcryptHasherSaltsHashes(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("shared-password")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := hasher.Hash("shared-password")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected salted hashes of identical passwords to differ")
	}
}

func TestBcryptHasherArbitraryPasswords(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	for i := 0; i < 5; i++ {
		password := testhelpers.RandomASCIIString(8, 32)
		hash, err := hasher.Hash(password)
		if err != nil {
			t.Fatalf("hash returned error for %q: %v", password, err)
		}
		if err := hasher.Compare(hash, password); err != nil {
			t.Fatalf("expected %q to match its hash: %v", password, err)
		}
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}

	hash, err := hasher.Hash("pw")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt formatted hash, got %q", hash)
	}
}
