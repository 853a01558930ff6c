package utils

import "testing"

func TestHashPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("password stored in plaintext")
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatalf("valid password rejected")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Fatalf("invalid password accepted")
	}
}
