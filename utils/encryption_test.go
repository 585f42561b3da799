package utils

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Setenv("TOKEN_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	encrypted, err := EncryptToken("secret-access-token")
	if err != nil {
		t.Fatalf("EncryptToken: %v", err)
	}
	if encrypted == "secret-access-token" {
		t.Fatal("token was not encrypted")
	}

	decrypted, err := DecryptToken(encrypted)
	if err != nil {
		t.Fatalf("DecryptToken: %v", err)
	}
	if decrypted != "secret-access-token" {
		t.Errorf("decrypted = %q", decrypted)
	}
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	t.Setenv("TOKEN_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	a, _ := EncryptToken("same token")
	b, _ := EncryptToken("same token")
	if a == b {
		t.Error("two encryptions of the same token produced identical ciphertexts")
	}
}

func TestEncryptionPassthroughWithoutKey(t *testing.T) {
	t.Setenv("TOKEN_ENCRYPTION_KEY", "")

	encrypted, err := EncryptToken("plain")
	if err != nil || encrypted != "plain" {
		t.Errorf("EncryptToken without key = %q, %v", encrypted, err)
	}

	decrypted, err := DecryptToken("plain")
	if err != nil || decrypted != "plain" {
		t.Errorf("DecryptToken without key = %q, %v", decrypted, err)
	}
}

func TestEncryptionRejectsBadKeyLength(t *testing.T) {
	t.Setenv("TOKEN_ENCRYPTION_KEY", "too-short")

	if _, err := EncryptToken("anything"); err == nil {
		t.Error("expected an error for a non-32-byte key")
	}
}

func TestDecryptRejectsGarbage(t *testing.T) {
	t.Setenv("TOKEN_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	if _, err := DecryptToken("not-base64!!!"); err == nil {
		t.Error("expected an error for non-base64 input")
	}
	if _, err := DecryptToken("c2hvcnQ="); err == nil {
		t.Error("expected an error for truncated ciphertext")
	}
}
