package budget

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/auth"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/expense"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/money"
)

// Store is the budget persistence surface the handlers need.
type Store interface {
	Insert(ctx context.Context, b *Budget) error
	List(ctx context.Context, userID string) ([]Budget, error)
	Get(ctx context.Context, userID, id string) (*Budget, error)
	Update(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, userID, id string) error
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) ListBudgets(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Store.List(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list budgets")
	}
	return c.JSON(items)
}

func (h *Handler) CreateBudget(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if !expense.ValidCategory(req.Category) {
		return fiber.NewError(fiber.StatusBadRequest, "category must be one of Food, Travel, Rent, Shopping, Other")
	}
	if _, err := money.ToCents(req.MonthlyLimit); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "monthly_limit must be a positive decimal")
	}

	// Owner is always the acting user, whatever the caller sent.
	b := &Budget{
		UserID:       userID,
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
	}
	if err := h.Store.Insert(userContext(c), b); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return fiber.NewError(fiber.StatusBadRequest, "budget for category already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create budget")
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *Handler) GetBudget(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	b, err := h.Store.Get(userContext(c), userID, c.Params("id"))
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(b)
}

func (h *Handler) UpdateBudget(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	b, err := h.Store.Get(userContext(c), userID, c.Params("id"))
	if err != nil {
		return notFoundOrInternal(err)
	}

	if req.Category != nil {
		if !expense.ValidCategory(*req.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "category must be one of Food, Travel, Rent, Shopping, Other")
		}
		b.Category = *req.Category
	}
	if req.MonthlyLimit != nil {
		if _, err := money.ToCents(*req.MonthlyLimit); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "monthly_limit must be a positive decimal")
		}
		b.MonthlyLimit = *req.MonthlyLimit
	}

	if err := h.Store.Update(userContext(c), b); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return fiber.NewError(fiber.StatusBadRequest, "budget for category already exists")
		}
		return notFoundOrInternal(err)
	}
	return c.JSON(b)
}

func (h *Handler) DeleteBudget(c *fiber.Ctx) error {
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
		return fiber.NewError(fiber.StatusNotFound, "budget not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "internal error")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
