package service

import "testing"

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("p@ss")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "" || hash == "p@ss" {
		t.Fatalf("expected salted hash, got %q", hash)
	}
	if !h.Verify("p@ss", hash) {
		t.Fatalf("expected hash to verify original password")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestPasswordHasher_SaltedPerCall(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("p@ss")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	second, err := h.Hash("p@ss")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}

	if first == second {
		t.Fatalf("expected two hashes of the same password to differ")
	}
	if !h.Verify("p@ss", first) || !h.Verify("p@ss", second) {
		t.Fatalf("expected both hashes to verify the password")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher()

	if h.Verify("p@ss", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed stored hash to verify false")
	}
	if h.Verify("p@ss", "") {
		t.Fatalf("expected empty stored hash to verify false")
	}
}
