package model

import "time"

// Operator is a back-office account that manages orders.
type Operator struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
