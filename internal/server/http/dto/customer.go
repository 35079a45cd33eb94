package dto

// CustomerRequest describes a customer record for creation or import.
type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CustomerResponse is the customer view with its reward balance.
type CustomerResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	RewardPoint float64 `json:"reward_point"`
}

// ImportResponse summarizes a bulk customer import.
type ImportResponse struct {
	Created     int `json:"created"`
	FailedCount int `json:"failed_count"`
}
