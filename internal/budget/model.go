package budget

import "time"

type Budget struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Category     string    `json:"category"`
	MonthlyLimit float64   `json:"monthly_limit"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateBudgetRequest struct {
	Category     string  `json:"category"`
	MonthlyLimit float64 `json:"monthly_limit"`
}

type UpdateBudgetRequest struct {
	Category     *string  `json:"category"`
	MonthlyLimit *float64 `json:"monthly_limit"`
}
