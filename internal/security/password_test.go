package security

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("expected hash to differ from plaintext")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatalf("expected hash to verify against original password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	if CheckPassword("", "anything") {
		t.Fatalf("expected empty hash to never verify")
	}
}
