package usecase

import (
	"math"
	"time"

	"github.com/okunev/orderdesk/internal/domain/model"
)

const (
	// rewardRate is the share of the order total granted as reward points
	// for a settlement within the accrual window.
	rewardRate = 0.10
	// rewardWindowDays bounds accrual eligibility, counted in whole days
	// since the order date, inclusive.
	rewardWindowDays = 7
)

// ComputeAccrual returns the reward points earned by a payment made at now.
// Eligibility is based on the order date, not on previous payments: settling
// within a week of ordering earns floor(10% of the order total), no matter
// how many partial payments it took. Outside the window the accrual is zero.
func ComputeAccrual(order *model.Order, now time.Time) float64 {
	days := int(now.Sub(order.OrderDate).Hours() / 24)
	if days > rewardWindowDays {
		return 0
	}
	return math.Floor(order.TotalAmount * rewardRate)
}
