// Package stats turns a snapshot of subscriptions into the sorted
// breakdown behind the grid and stats views: each record paired with
// its normalized monthly cost, ordered most expensive first, with a
// total over the visible set.
package stats

import (
	"sort"

	"subtrack/internal/domain"
	"subtrack/internal/money"
)

// Item pairs a subscription with its monthly cost in the base currency.
type Item struct {
	Sub     domain.Subscription
	Monthly float64
}

// Share returns the item's percentage of total. A zero total yields 0
// so empty or filtered-out sets never divide by zero.
func (it Item) Share(total float64) float64 {
	if total == 0 {
		return 0
	}
	return it.Monthly / total * 100
}

// Breakdown is the aggregation result. Total sums the filtered set
// only, so shares across a filtered view add up to 100%.
type Breakdown struct {
	Items []Item
	Total float64
}

// Largest returns the most expensive item. Only meaningful on an
// unfiltered breakdown, where it is the featured card.
func (b Breakdown) Largest() (Item, bool) {
	if len(b.Items) == 0 {
		return Item{}, false
	}
	return b.Items[0], true
}

// Aggregate filters subs by category (nil filter keeps all), normalizes
// each retained record to a monthly cost in base, and sorts descending
// by that cost. The sort is stable, so ties keep input order.
func Aggregate(subs []domain.Subscription, base money.Currency, rates money.RateTable, filter *domain.Category) (Breakdown, error) {
	var b Breakdown
	for _, sub := range subs {
		if filter != nil && sub.Category != *filter {
			continue
		}
		monthly, err := money.NormalizeMonthly(sub.PriceCents, sub.Cycle, sub.Currency, base, rates)
		if err != nil {
			return Breakdown{}, err
		}
		b.Items = append(b.Items, Item{Sub: sub, Monthly: monthly})
		b.Total += monthly
	}
	sort.SliceStable(b.Items, func(i, j int) bool {
		return b.Items[i].Monthly > b.Items[j].Monthly
	})
	return b, nil
}
