package expense

import "time"

// Categories is the fixed set an expense must belong to.
var Categories = []string{"Food", "Travel", "Rent", "Shopping", "Other"}

func ValidCategory(s string) bool {
	for _, c := range Categories {
		if s == c {
			return true
		}
	}
	return false
}

type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"` // YYYY-MM-DD, no time component
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
}

// UpdateExpenseRequest carries only the fields the caller wants changed.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

// CreateExpenseResponse wraps the stored expense; Warning is a non-fatal
// advisory set when the category budget was exceeded.
type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
	Warning string   `json:"warning,omitempty"`
}
