package export

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/auth"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/expense"
)

type Handler struct {
	Expenses ExpenseLister
}

func NewHandler(expenses ExpenseLister) *Handler {
	return &Handler{Expenses: expenses}
}

func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	rows, err := h.rows(c)
	if err != nil {
		return err
	}

	out, err := WriteCSV(rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "csv build failed")
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="expenses.csv"`)
	return c.Send(out)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	rows, err := h.rows(c)
	if err != nil {
		return err
	}

	out, err := BuildPDF(rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "pdf build failed")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="expenses.pdf"`)
	return c.Send(out)
}

// rows resolves the acting user, applies the shared month/category filters
// and fetches the neutral row set both renderers consume.
func (h *Handler) rows(c *fiber.Ctx) ([]Row, error) {
	userID, err := auth.UserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	f, err := expense.FilterFromQuery(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rows, err := fetchRows(userContext(c), h.Expenses, userID, f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to fetch expenses")
	}
	return rows, nil
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
