package auth

import "testing"

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(4) // minimum cost keeps the test fast

	hash, err := hasher.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !hasher.Compare(hash, "correct horse battery") {
		t.Error("Compare with right password must succeed")
	}
	if hasher.Compare(hash, "wrong password") {
		t.Error("Compare with wrong password must fail")
	}
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(4)

	h1, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
}
