package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidSignature = errors.New("invalid cookie signature")

// HMACSigner appends an HMAC-SHA256 signature to a value.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner builds HMACSigner keyed with secret.
func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

// Sign returns value followed by a dot and its URL-safe signature.
func (s *HMACSigner) Sign(value string) string {
	return value + "." + s.sign(value)
}

// Verify checks the signature and returns the original value.
func (s *HMACSigner) Verify(signed string) (string, error) {
	idx := strings.LastIndexByte(signed, '.')
	if idx <= 0 || idx == len(signed)-1 {
		return "", ErrInvalidSignature
	}

	value, sig := signed[:idx], signed[idx+1:]
	if !hmac.Equal([]byte(s.sign(value)), []byte(sig)) {
		return "", ErrInvalidSignature
	}
	return value, nil
}

func (s *HMACSigner) Name() string {
	return "hmac"
}

func (s *HMACSigner) sign(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
