package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/analytics"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/budget"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/expense"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/export"
	handlers "github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/http"
)

type Router struct {
	AuthHandler      *handlers.AuthHandler
	ExpenseHandler   *expense.Handler
	BudgetHandler    *budget.Handler
	AnalyticsHandler *analytics.Handler
	ExportHandler    *export.Handler
	AuthMW           fiber.Handler
	AuthLimiter      fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthLimiter != nil {
		app.Post("/api/auth/register", r.AuthLimiter, r.AuthHandler.Register)
		app.Post("/api/auth/login", r.AuthLimiter, r.AuthHandler.Login)
		app.Post("/api/auth/refresh", r.AuthLimiter, r.AuthHandler.Refresh)
	} else {
		app.Post("/api/auth/register", r.AuthHandler.Register)
		app.Post("/api/auth/login", r.AuthHandler.Login)
		app.Post("/api/auth/refresh", r.AuthHandler.Refresh)
	}

	// Export routes first so "export" is not captured by the :id param.
	app.Get("/api/expenses/export/csv", r.AuthMW, r.ExportHandler.ExportCSV)
	app.Get("/api/expenses/export/pdf", r.AuthMW, r.ExportHandler.ExportPDF)

	app.Get("/api/expenses", r.AuthMW, r.ExpenseHandler.ListExpenses)
	app.Post("/api/expenses", r.AuthMW, r.ExpenseHandler.CreateExpense)
	app.Get("/api/expenses/:id", r.AuthMW, r.ExpenseHandler.GetExpense)
	app.Put("/api/expenses/:id", r.AuthMW, r.ExpenseHandler.UpdateExpense)
	app.Patch("/api/expenses/:id", r.AuthMW, r.ExpenseHandler.UpdateExpense)
	app.Delete("/api/expenses/:id", r.AuthMW, r.ExpenseHandler.DeleteExpense)

	app.Get("/api/budgets", r.AuthMW, r.BudgetHandler.ListBudgets)
	app.Post("/api/budgets", r.AuthMW, r.BudgetHandler.CreateBudget)
	app.Get("/api/budgets/:id", r.AuthMW, r.BudgetHandler.GetBudget)
	app.Put("/api/budgets/:id", r.AuthMW, r.BudgetHandler.UpdateBudget)
	app.Delete("/api/budgets/:id", r.AuthMW, r.BudgetHandler.DeleteBudget)

	app.Get("/api/analytics/monthly", r.AuthMW, r.AnalyticsHandler.Monthly)
	app.Get("/api/analytics/daily", r.AuthMW, r.AnalyticsHandler.Daily)
}
