package budget

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/money"
)

var (
	ErrNotFound  = errors.New("budget not found")
	ErrDuplicate = errors.New("budget for category already exists")
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, b *Budget) error {
	cents, err := money.ToCents(b.MonthlyLimit)
	if err != nil {
		return err
	}
	err = r.Pool.QueryRow(ctx,
		`INSERT INTO budgets (user_id, category, monthly_limit_cents)
		 VALUES ($1::uuid, $2, $3)
		 RETURNING id::text, created_at`,
		b.UserID, b.Category, cents,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, userID string) ([]Budget, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, user_id::text, category, monthly_limit_cents, created_at
		 FROM budgets
		 WHERE user_id = $1::uuid
		 ORDER BY category ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Budget, 0)
	for rows.Next() {
		var b Budget
		var cents int64
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &cents, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.MonthlyLimit = money.ToFloat(cents)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repository) Get(ctx context.Context, userID, id string) (*Budget, error) {
	var b Budget
	var cents int64
	err := r.Pool.QueryRow(ctx,
		`SELECT id::text, user_id::text, category, monthly_limit_cents, created_at
		 FROM budgets
		 WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	).Scan(&b.ID, &b.UserID, &b.Category, &cents, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.MonthlyLimit = money.ToFloat(cents)
	return &b, nil
}

func (r *Repository) Update(ctx context.Context, b *Budget) error {
	cents, err := money.ToCents(b.MonthlyLimit)
	if err != nil {
		return err
	}
	tag, err := r.Pool.Exec(ctx,
		`UPDATE budgets
		 SET category = $1, monthly_limit_cents = $2
		 WHERE id = $3::uuid AND user_id = $4::uuid`,
		b.Category, cents, b.ID, b.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM budgets WHERE id = $1::uuid AND user_id = $2::uuid`,
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

// LimitFor returns the user's monthly limit in cents for a category. The
// schema keeps (user_id, category) unique, so at most one row matches.
func (r *Repository) LimitFor(ctx context.Context, userID, category string) (int64, bool, error) {
	var cents int64
	err := r.Pool.QueryRow(ctx,
		`SELECT monthly_limit_cents
		 FROM budgets
		 WHERE user_id = $1::uuid AND category = $2
		 ORDER BY id ASC
		 LIMIT 1`,
		userID, category,
	).Scan(&cents)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return cents, true, nil
}
