package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"subtrack/internal/domain"
	"subtrack/internal/money"
)

func sub(name string, cents int64, cur money.Currency, cy money.Cycle, cat domain.Category) domain.Subscription {
	return domain.Subscription{
		ID:           name,
		Name:         name,
		PriceCents:   cents,
		Currency:     cur,
		Cycle:        cy,
		Category:     cat,
		FirstPayment: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAggregateSortsDescendingAndTotals(t *testing.T) {
	t.Parallel()

	subs := []domain.Subscription{
		sub("Yearly12", 1200, money.EUR, money.Yearly, domain.CategoryWork),
		sub("Spotify", 1099, money.EUR, money.Monthly, domain.CategoryEntertainment),
	}
	b, err := Aggregate(subs, money.EUR, money.DefaultRates(), nil)
	require.NoError(t, err)

	require.Len(t, b.Items, 2)
	require.Equal(t, "Spotify", b.Items[0].Sub.Name)
	require.InDelta(t, 10.99, b.Items[0].Monthly, 1e-9)
	require.Equal(t, "Yearly12", b.Items[1].Sub.Name)
	require.InDelta(t, 1.0, b.Items[1].Monthly, 1e-9)
	require.InDelta(t, 11.99, b.Total, 1e-9)

	for i := 0; i+1 < len(b.Items); i++ {
		require.GreaterOrEqual(t, b.Items[i].Monthly, b.Items[i+1].Monthly)
	}
}

func TestAggregateTotalMatchesItemSum(t *testing.T) {
	t.Parallel()

	subs := []domain.Subscription{
		sub("a", 1599, money.EUR, money.Monthly, domain.CategoryEntertainment),
		sub("b", 999, money.USD, money.Monthly, domain.CategoryUtility),
		sub("c", 12000, money.GBP, money.Yearly, domain.CategoryWork),
	}
	b, err := Aggregate(subs, money.CHF, money.DefaultRates(), nil)
	require.NoError(t, err)

	var sum float64
	for _, it := range b.Items {
		sum += it.Monthly
	}
	require.InDelta(t, b.Total, sum, 1e-9)
}

func TestAggregateCategoryFilterNarrowsTotal(t *testing.T) {
	t.Parallel()

	subs := []domain.Subscription{
		sub("Netflix", 1599, money.EUR, money.Monthly, domain.CategoryEntertainment),
		sub("Spotify", 1099, money.EUR, money.Monthly, domain.CategoryEntertainment),
		sub("Alan", 5500, money.EUR, money.Monthly, domain.CategoryInsurance),
	}
	filter := domain.CategoryEntertainment
	b, err := Aggregate(subs, money.EUR, money.DefaultRates(), &filter)
	require.NoError(t, err)

	require.Len(t, b.Items, 2)
	require.InDelta(t, 26.98, b.Total, 1e-9)

	var shares float64
	for _, it := range b.Items {
		shares += it.Share(b.Total)
	}
	require.InDelta(t, 100.0, shares, 1e-9)
}

func TestAggregateEmptySet(t *testing.T) {
	t.Parallel()

	b, err := Aggregate(nil, money.EUR, money.DefaultRates(), nil)
	require.NoError(t, err)
	require.Empty(t, b.Items)
	require.Zero(t, b.Total)

	_, ok := b.Largest()
	require.False(t, ok)

	// share over an empty total must not fault
	require.Zero(t, Item{}.Share(b.Total))
}

func TestAggregateStableOnTies(t *testing.T) {
	t.Parallel()

	subs := []domain.Subscription{
		sub("first", 500, money.EUR, money.Monthly, domain.CategoryOther),
		sub("second", 500, money.EUR, money.Monthly, domain.CategoryOther),
	}
	b, err := Aggregate(subs, money.EUR, money.DefaultRates(), nil)
	require.NoError(t, err)
	require.Equal(t, "first", b.Items[0].Sub.Name)
	require.Equal(t, "second", b.Items[1].Sub.Name)
}

func TestAggregateUnknownCurrencyFails(t *testing.T) {
	t.Parallel()

	subs := []domain.Subscription{sub("x", 100, "SEK", money.Monthly, domain.CategoryOther)}
	_, err := Aggregate(subs, money.EUR, money.DefaultRates(), nil)
	var ucErr *money.UnknownCurrencyError
	require.ErrorAs(t, err, &ucErr)
}

func TestLargestIsFeaturedCard(t *testing.T) {
	t.Parallel()

	subs := []domain.Subscription{
		sub("Spotify", 1099, money.EUR, money.Monthly, domain.CategoryEntertainment),
		sub("Adobe CC", 6500, money.EUR, money.Monthly, domain.CategoryWork),
	}
	b, err := Aggregate(subs, money.EUR, money.DefaultRates(), nil)
	require.NoError(t, err)

	top, ok := b.Largest()
	require.True(t, ok)
	require.Equal(t, "Adobe CC", top.Sub.Name)
}
