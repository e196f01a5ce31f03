package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/money"
)

var ErrNotFound = errors.New("expense not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, e *Expense) error {
	cents, err := money.ToCents(e.Amount)
	if err != nil {
		return err
	}
	return r.Pool.QueryRow(ctx,
		`INSERT INTO expenses (user_id, amount_cents, category, date, description)
		 VALUES ($1::uuid, $2, $3, $4::date, $5)
		 RETURNING id::text, created_at`,
		e.UserID, cents, e.Category, e.Date, e.Description,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *Repository) List(ctx context.Context, userID string, f Filter) ([]Expense, error) {
	q := `SELECT id::text, user_id::text, amount_cents, category, date::text, description, created_at
	      FROM expenses
	      WHERE user_id = $1::uuid`
	args := []any{userID}

	if f.Month != "" {
		args = append(args, f.Month)
		q += fmt.Sprintf(" AND to_char(date, 'YYYY-MM') = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		q += fmt.Sprintf(" AND category = $%d", len(args))
	}
	q += " ORDER BY date ASC, created_at ASC, id ASC"

	rows, err := r.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, userID, id string) (*Expense, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT id::text, user_id::text, amount_cents, category, date::text, description, created_at
		 FROM expenses
		 WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	)
	e, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Update(ctx context.Context, e *Expense) error {
	cents, err := money.ToCents(e.Amount)
	if err != nil {
		return err
	}
	tag, err := r.Pool.Exec(ctx,
		`UPDATE expenses
		 SET amount_cents = $1, category = $2, date = $3::date, description = $4
		 WHERE id = $5::uuid AND user_id = $6::uuid`,
		cents, e.Category, e.Date, e.Description, e.ID, e.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM expenses WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SumCategoryMonth totals a user's spend (in cents) for one category between
// two dates inclusive; both are YYYY-MM-DD.
func (r *Repository) SumCategoryMonth(ctx context.Context, userID, category, from, to string) (int64, error) {
	var total int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0)::bigint
		 FROM expenses
		 WHERE user_id = $1::uuid
		   AND category = $2
		   AND date >= $3::date
		   AND date <= $4::date`,
		userID, category, from, to,
	).Scan(&total)
	return total, err
}

func scanExpense(row pgx.Row) (Expense, error) {
	var e Expense
	var cents int64
	if err := row.Scan(&e.ID, &e.UserID, &cents, &e.Category, &e.Date, &e.Description, &e.CreatedAt); err != nil {
		return Expense{}, err
	}
	e.Amount = money.ToFloat(cents)
	return e, nil
}
