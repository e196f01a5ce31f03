package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var ErrBadMonth = errors.New("month must be YYYY-MM")

// Filter narrows listing and export to a calendar month and/or a category.
// Both fields are optional; an empty value means no filtering on it.
type Filter struct {
	Month    string // YYYY-MM
	Category string
}

// NewFilter validates raw query values. A malformed month is rejected, not
// silently dropped, so listing and export behave the same.
func NewFilter(month, category string) (Filter, error) {
	month = strings.TrimSpace(month)
	if month != "" {
		if _, err := time.Parse("2006-01", month); err != nil {
			return Filter{}, ErrBadMonth
		}
	}
	return Filter{Month: month, Category: strings.TrimSpace(category)}, nil
}

// FilterFromQuery reads month/category query params off the request.
func FilterFromQuery(c *fiber.Ctx) (Filter, error) {
	return NewFilter(c.Query("month"), c.Query("category"))
}
