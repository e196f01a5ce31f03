package export

import (
	"context"
	"strconv"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/expense"
)

// Row is one line of an export, already rendered to strings so both the CSV
// and PDF writers consume the same data.
type Row struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

var header = Row{Date: "Date", Category: "Category", Amount: "Amount", Description: "Description"}

// ExpenseLister is the single filtered query both formats share.
type ExpenseLister interface {
	List(ctx context.Context, userID string, f expense.Filter) ([]expense.Expense, error)
}

func fetchRows(ctx context.Context, store ExpenseLister, userID string, f expense.Filter) ([]Row, error) {
	items, err := store.List(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(items))
	for _, e := range items {
		rows = append(rows, Row{
			Date:        e.Date,
			Category:    e.Category,
			Amount:      strconv.FormatFloat(e.Amount, 'f', 2, 64),
			Description: e.Description,
		})
	}
	return rows, nil
}
