package model

import "time"

// Customer is a buyer record. RewardPoint is the redeemable loyalty balance,
// increased by timely settlements and spent whole on redemption.
type Customer struct {
	ID          int64
	Name        string
	Phone       string
	RewardPoint float64
	CreatedAt   time.Time
}
