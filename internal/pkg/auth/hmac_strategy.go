package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy creates and verifies session tokens signed with HMAC-SHA256.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACStrategy builds HMACStrategy with the provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl}
}

// IssueToken generates a signed, expiring token for the operator.
func (s *HMACStrategy) IssueToken(operatorID int64) (string, error) {
	issued := time.Now().Unix()
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d.%d.%d", operatorID, issued, expires)
	token := payload + "." + s.sign(payload)
	return base64.RawURLEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates the token signature and expiry and returns the
// encoded operator ID.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ".")
	if len(parts) != 4 {
		return 0, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ".")
	if !hmac.Equal([]byte(parts[3]), []byte(s.sign(payload))) {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || time.Now().Unix() > expires {
		return 0, ErrInvalidToken
	}

	operatorID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || operatorID <= 0 {
		return 0, ErrInvalidToken
	}
	return operatorID, nil
}

// Name identifies the strategy.
func (s *HMACStrategy) Name() string { return "hmac-sha256" }

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
