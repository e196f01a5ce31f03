package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// DayTotal is one distinct expense date within the window; Day is the
// two-digit day-of-month label.
type DayTotal struct {
	Day   string
	Cents int64
}

// MonthlyTotals sums a user's expenses between two dates inclusive
// (YYYY-MM-DD), overall and per category. Categories without expenses do not
// appear in the map.
func (r *Repo) MonthlyTotals(ctx context.Context, userID, from, to string) (int64, map[string]int64, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT category, COALESCE(SUM(amount_cents), 0)::bigint
		 FROM expenses
		 WHERE user_id = $1::uuid AND date >= $2::date AND date <= $3::date
		 GROUP BY category`,
		userID, from, to,
	)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	var total int64
	byCategory := make(map[string]int64)
	for rows.Next() {
		var category string
		var cents int64
		if err := rows.Scan(&category, &cents); err != nil {
			return 0, nil, err
		}
		byCategory[category] = cents
		total += cents
	}
	return total, byCategory, rows.Err()
}

// DailyTotals returns one entry per distinct date with at least one expense,
// ordered by date. Dates without expenses produce no entry.
func (r *Repo) DailyTotals(ctx context.Context, userID, from, to string) ([]DayTotal, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT to_char(date, 'DD'), COALESCE(SUM(amount_cents), 0)::bigint
		 FROM expenses
		 WHERE user_id = $1::uuid AND date >= $2::date AND date <= $3::date
		 GROUP BY date
		 ORDER BY date ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DayTotal, 0)
	for rows.Next() {
		var d DayTotal
		if err := rows.Scan(&d.Day, &d.Cents); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
