// Package domain defines the subscription record and its closed
// category set, shared by the store, the core computations and the UI.
package domain

import (
	"fmt"
	"strings"
	"time"

	"subtrack/internal/money"
)

// Category is one of the closed set of spending categories.
type Category string

const (
	CategoryEntertainment Category = "entertainment"
	CategoryUtility       Category = "utility"
	CategoryWork          Category = "work"
	CategorySocial        Category = "social"
	CategoryTransport     Category = "transport"
	CategoryFood          Category = "food"
	CategoryInsurance     Category = "insurance"
	CategoryOther         Category = "other"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryEntertainment,
		CategoryUtility,
		CategoryWork,
		CategorySocial,
		CategoryTransport,
		CategoryFood,
		CategoryInsurance,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display name for c.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(c.String()[:1]) + c.String()[1:]
}

func (c Category) String() string { return string(c) }

// Icon returns the emoji marker for c.
func (c Category) Icon() string {
	switch c {
	case CategoryEntertainment:
		return "🎬"
	case CategoryUtility:
		return "💡"
	case CategoryWork:
		return "💼"
	case CategorySocial:
		return "💬"
	case CategoryTransport:
		return "🚗"
	case CategoryFood:
		return "🍔"
	case CategoryInsurance:
		return "🛡"
	default:
		return "📦"
	}
}

// ParseCategory converts a stored string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Subscription is a recurring payment record. The anchor date
// FirstPayment drives the charge schedule: monthly cycles reuse its
// day-of-month every month, yearly cycles fire once a year on its
// month and day.
type Subscription struct {
	ID           string
	Name         string
	PriceCents   int64
	Currency     money.Currency
	Cycle        money.Cycle
	Category     Category
	FirstPayment time.Time
	Color        string // hex, presentation only
	LogoURL      string // presentation only
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the record invariants: non-negative price, closed-set
// membership for currency/cycle/category, a usable anchor date and a
// non-empty name.
func (s Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if s.PriceCents < 0 {
		return fmt.Errorf("price must not be negative, got %d cents", s.PriceCents)
	}
	if !s.Currency.Valid() {
		return &money.UnknownCurrencyError{Code: string(s.Currency)}
	}
	if !s.Cycle.Valid() {
		return fmt.Errorf("unknown billing cycle %q", s.Cycle)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("unknown category %q", s.Category)
	}
	if s.FirstPayment.IsZero() {
		return &InvalidDateError{Value: ""}
	}
	return nil
}

// Price returns the raw price in currency units.
func (s Subscription) Price() float64 {
	return float64(s.PriceCents) / 100
}

// AnchorDay returns the day-of-month component of the anchor date.
func (s Subscription) AnchorDay() int {
	return s.FirstPayment.Day()
}

// AnchorMonth returns the month component of the anchor date.
func (s Subscription) AnchorMonth() time.Month {
	return s.FirstPayment.Month()
}
