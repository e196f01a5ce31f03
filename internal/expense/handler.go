package expense

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/auth"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/money"
)

// Store is the expense persistence surface the handlers need.
type Store interface {
	Insert(ctx context.Context, e *Expense) error
	List(ctx context.Context, userID string, f Filter) ([]Expense, error)
	Get(ctx context.Context, userID, id string) (*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, userID, id string) error
	SumCategoryMonth(ctx context.Context, userID, category, from, to string) (int64, error)
}

// BudgetLookup resolves a user's monthly limit (in cents) for a category.
type BudgetLookup interface {
	LimitFor(ctx context.Context, userID, category string) (limitCents int64, found bool, err error)
}

type Handler struct {
	Store   Store
	Budgets BudgetLookup
}

func NewHandler(store Store, budgets BudgetLookup) *Handler {
	return &Handler{Store: store, Budgets: budgets}
}

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if !ValidCategory(req.Category) {
		return fiber.NewError(fiber.StatusBadRequest, "category must be one of Food, Travel, Rent, Shopping, Other")
	}
	if _, err := money.ToCents(req.Amount); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be a positive decimal")
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	e := &Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        day.Format("2006-01-02"),
		Description: req.Description,
	}
	if err := h.Store.Insert(userContext(c), e); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add expense")
	}

	resp := CreateExpenseResponse{Expense: e}
	if warning := h.budgetWarning(userContext(c), userID, e.Category); warning != "" {
		resp.Warning = warning
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// budgetWarning compares the user's month-to-date spend in the category
// against their budget, if any. Best-effort: failures are logged, never
// surfaced, and creation has already succeeded.
func (h *Handler) budgetWarning(ctx context.Context, userID, category string) string {
	today := time.Now()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	spent, err := h.Store.SumCategoryMonth(ctx, userID, category,
		monthStart.Format("2006-01-02"), today.Format("2006-01-02"))
	if err != nil {
		log.Printf("budget check: sum failed for user %s: %v", userID, err)
		return ""
	}

	limit, found, err := h.Budgets.LimitFor(ctx, userID, category)
	if err != nil {
		log.Printf("budget check: lookup failed for user %s: %v", userID, err)
		return ""
	}
	if !found || spent <= limit {
		return ""
	}

	return fmt.Sprintf("Warning: You exceeded %s budget (%s). Current spending: %s",
		category, money.Format(limit), money.Format(spent))
}

func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	f, err := FilterFromQuery(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	items, err := h.Store.List(userContext(c), userID, f)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses")
	}
	return c.JSON(items)
}

func (h *Handler) GetExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	e, err := h.Store.Get(userContext(c), userID, c.Params("id"))
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(e)
}

func (h *Handler) UpdateExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	e, err := h.Store.Get(userContext(c), userID, c.Params("id"))
	if err != nil {
		return notFoundOrInternal(err)
	}

	if req.Amount != nil {
		if _, err := money.ToCents(*req.Amount); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "amount must be a positive decimal")
		}
		e.Amount = *req.Amount
	}
	if req.Category != nil {
		if !ValidCategory(*req.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "category must be one of Food, Travel, Rent, Shopping, Other")
		}
		e.Category = *req.Category
	}
	if req.Date != nil {
		day, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		e.Date = day.Format("2006-01-02")
	}
	if req.Description != nil {
		e.Description = *req.Description
	}

	if err := h.Store.Update(userContext(c), e); err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(e)
}

func (h *Handler) DeleteExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.Store.Delete(userContext(c), userID, c.Params("id")); err != nil {
		return notFoundOrInternal(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func notFoundOrInternal(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "expense not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "internal error")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
