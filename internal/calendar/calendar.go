// Package calendar projects subscription charge schedules onto a
// calendar month: which records charge on which day, the priciest
// charge per day, and the upcoming list for the viewed month.
package calendar

import (
	"time"

	"subtrack/internal/domain"
	"subtrack/internal/money"
)

// DaysIn returns the number of days in the given month, leap-year
// correct. Day 0 of the next month is the last day of this one.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOffset returns how many leading blanks a Monday-first grid needs
// before day 1 of the given month.
func StartOffset(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// chargeDay maps an anchor day onto a concrete month, clamping anchors
// past the end of short months to the month's last day (a day-31 plan
// charges Feb 28, or 29 in leap years).
func chargeDay(anchorDay, year int, month time.Month) int {
	if last := DaysIn(year, month); anchorDay > last {
		return last
	}
	return anchorDay
}

// chargesOn reports whether sub charges on the given date. Monthly
// cycles fire every month on the anchor day; yearly cycles only in the
// anchor month, regardless of the anchor year.
func chargesOn(sub domain.Subscription, year int, month time.Month, day int) bool {
	if sub.Cycle == money.Yearly && sub.AnchorMonth() != month {
		return false
	}
	return chargeDay(sub.AnchorDay(), year, month) == day
}

// DayCharges returns the subscriptions charging on a day of the given
// month, in input order.
func DayCharges(subs []domain.Subscription, year int, month time.Month, day int) []domain.Subscription {
	var out []domain.Subscription
	for _, sub := range subs {
		if chargesOn(sub, year, month, day) {
			out = append(out, sub)
		}
	}
	return out
}

// MonthCharges maps each charged day of the month to its subscriptions.
// Days without charges have no entry.
func MonthCharges(subs []domain.Subscription, year int, month time.Month) map[int][]domain.Subscription {
	out := make(map[int][]domain.Subscription)
	for _, sub := range subs {
		if sub.Cycle == money.Yearly && sub.AnchorMonth() != month {
			continue
		}
		day := chargeDay(sub.AnchorDay(), year, month)
		out[day] = append(out[day], sub)
	}
	return out
}

// MostExpensive returns the subscription with the highest raw price
// among subs, or nil for an empty slice. Ties keep the first
// encountered, matching the grid's left-fold behavior.
func MostExpensive(subs []domain.Subscription) *domain.Subscription {
	if len(subs) == 0 {
		return nil
	}
	top := subs[0]
	for _, sub := range subs[1:] {
		if sub.PriceCents > top.PriceCents {
			top = sub
		}
	}
	return &top
}

// Charge is one upcoming charge in a viewed month.
type Charge struct {
	Sub domain.Subscription
	Day int
}

// Upcoming lists the charges of the viewed (year, month), ascending by
// day. When the viewed month is today's month, days already passed are
// dropped; other months list every eligible charge. Yearly cycles are
// eligible only in their anchor month.
func Upcoming(subs []domain.Subscription, year int, month time.Month, today time.Time) []Charge {
	viewingCurrent := year == today.Year() && month == today.Month()

	var out []Charge
	for _, sub := range subs {
		if sub.Cycle == money.Yearly && sub.AnchorMonth() != month {
			continue
		}
		day := chargeDay(sub.AnchorDay(), year, month)
		if viewingCurrent && day < today.Day() {
			continue
		}
		out = append(out, Charge{Sub: sub, Day: day})
	}
	// insertion sort keeps input order on equal days
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Day < out[j-1].Day; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
