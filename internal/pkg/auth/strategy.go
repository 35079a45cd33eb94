package auth

import "time"

// Strategy issues and verifies operator session tokens.
type Strategy interface {
	IssueToken(operatorID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
