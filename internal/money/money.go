// Package money holds the currency and billing-cycle types and the
// conversion arithmetic used to compare subscriptions priced in
// different currencies and cycles.
package money

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 code from the closed set the app supports.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
)

// Reference is the currency all rate factors are expressed against.
const Reference = EUR

// Currencies returns the supported set in display order.
func Currencies() []Currency {
	return []Currency{EUR, USD, GBP, CHF}
}

// Valid reports whether c is a member of the supported set.
func (c Currency) Valid() bool {
	switch c {
	case EUR, USD, GBP, CHF:
		return true
	}
	return false
}

// Symbol returns the display symbol for c.
func (c Currency) Symbol() string {
	switch c {
	case EUR:
		return "€"
	case USD:
		return "$"
	case GBP:
		return "£"
	case CHF:
		return "Fr"
	}
	return string(c)
}

// ParseCurrency converts a stored or user-entered code into a Currency.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", &UnknownCurrencyError{Code: string(c)}
	}
	return c, nil
}

// Cycle is a billing periodicity.
type Cycle string

const (
	Monthly Cycle = "monthly"
	Yearly  Cycle = "yearly"
)

// Valid reports whether cy is a member of the supported set.
func (cy Cycle) Valid() bool {
	return cy == Monthly || cy == Yearly
}

// ParseCycle converts a stored string into a Cycle.
func ParseCycle(s string) (Cycle, error) {
	cy := Cycle(strings.ToLower(strings.TrimSpace(s)))
	if !cy.Valid() {
		return "", fmt.Errorf("unknown billing cycle %q", s)
	}
	return cy, nil
}

// UnknownCurrencyError marks a currency code with no rate-table entry.
// Conversion rejects rather than silently assuming a factor of 1.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Code)
}

// RateTable maps currencies to conversion factors relative to Reference,
// so rates[Reference] == 1 by construction.
type RateTable map[Currency]float64

// DefaultRates returns the built-in rate table.
func DefaultRates() RateTable {
	return RateTable{
		EUR: 1,
		USD: 1.08,
		GBP: 0.85,
		CHF: 0.95,
	}
}

// Validate checks that every factor is positive and every key is a
// supported currency.
func (rt RateTable) Validate() error {
	for c, f := range rt {
		if !c.Valid() {
			return &UnknownCurrencyError{Code: string(c)}
		}
		if f <= 0 {
			return fmt.Errorf("rate for %s must be positive, got %v", c, f)
		}
	}
	return nil
}

// Convert converts amount from one currency to another through the
// reference currency.
func (rt RateTable) Convert(amount float64, from, to Currency) (float64, error) {
	if from == to {
		return amount, nil
	}
	fromRate, ok := rt[from]
	if !ok {
		return 0, &UnknownCurrencyError{Code: string(from)}
	}
	toRate, ok := rt[to]
	if !ok {
		return 0, &UnknownCurrencyError{Code: string(to)}
	}
	return amount / fromRate * toRate, nil
}

// NormalizeMonthly converts a price in cents into a monthly cost in base
// currency units. Yearly prices are amortized as price/12, a linear
// approximation with no day-count precision. No rounding is applied;
// rounding to two decimals is a display concern.
func NormalizeMonthly(priceCents int64, cycle Cycle, from, base Currency, rates RateTable) (float64, error) {
	amount := float64(priceCents) / 100
	if cycle == Yearly {
		amount /= 12
	}
	return rates.Convert(amount, from, base)
}
