package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"os"
)

var (
	errInvalidEncryptionKeyLength = errors.New("TOKEN_ENCRYPTION_KEY must be exactly 32 bytes for AES-256")
	errCiphertextTooShort         = errors.New("encrypted token is too short or malformed")
)

// EncryptToken encrypts an access token with AES-256-GCM using the key
// from TOKEN_ENCRYPTION_KEY. With no key configured the token passes
// through unchanged (not recommended for production).
func EncryptToken(token string) (string, error) {
	keyBytes, err := encryptionKey()
	if err != nil {
		return "", err
	}
	if len(keyBytes) == 0 {
		return token, nil
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(token), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptToken reverses EncryptToken.
func DecryptToken(encryptedToken string) (string, error) {
	keyBytes, err := encryptionKey()
	if err != nil {
		return "", err
	}
	if len(keyBytes) == 0 {
		return encryptedToken, nil
	}

	block, err := aes.NewCipher(keyBytes)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(encryptedToken)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize+gcm.Overhead() {
		return "", errCiphertextTooShort
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

func encryptionKey() ([]byte, error) {
	key := os.Getenv("TOKEN_ENCRYPTION_KEY")
	if key == "" {
		return nil, nil
	}

	keyBytes := []byte(key)
	if len(keyBytes) != 32 {
		return nil, errInvalidEncryptionKeyLength
	}

	return keyBytes, nil
}
