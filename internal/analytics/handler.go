package analytics

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/auth"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/money"
)

// Store computes spending aggregates over a date window (both aggregates run
// over the current calendar month to date).
type Store interface {
	MonthlyTotals(ctx context.Context, userID, from, to string) (int64, map[string]int64, error)
	DailyTotals(ctx context.Context, userID, from, to string) ([]DayTotal, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

type monthlyResponse struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
}

type dailyEntry struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

func (h *Handler) Monthly(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	from, to := monthToDate()
	total, byCat, err := h.Store.MonthlyTotals(userContext(c), userID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute monthly totals")
	}

	resp := monthlyResponse{
		Total:      money.ToFloat(total),
		ByCategory: make(map[string]float64, len(byCat)),
	}
	for category, cents := range byCat {
		resp.ByCategory[category] = money.ToFloat(cents)
	}
	return c.JSON(resp)
}

func (h *Handler) Daily(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	from, to := monthToDate()
	days, err := h.Store.DailyTotals(userContext(c), userID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute daily totals")
	}

	out := make([]dailyEntry, 0, len(days))
	for _, d := range days {
		out = append(out, dailyEntry{Day: d.Day, Total: money.ToFloat(d.Cents)})
	}
	return c.JSON(out)
}

// monthToDate is the window from the 1st of the current month through today,
// inclusive.
func monthToDate() (from, to string) {
	today := time.Now()
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return start.Format("2006-01-02"), today.Format("2006-01-02")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
