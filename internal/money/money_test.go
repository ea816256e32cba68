package money

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeMonthlyYearlyDividesByTwelve(t *testing.T) {
	t.Parallel()

	rates := DefaultRates()
	got, err := NormalizeMonthly(1200, Yearly, EUR, EUR, rates)
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-9)

	got, err = NormalizeMonthly(1099, Monthly, EUR, EUR, rates)
	require.NoError(t, err)
	require.InDelta(t, 10.99, got, 1e-9)
}

func TestConvertThroughReference(t *testing.T) {
	t.Parallel()

	rates := DefaultRates()

	// USD -> EUR: divide by the USD factor
	got, err := rates.Convert(10.80, USD, EUR)
	require.NoError(t, err)
	require.InDelta(t, 10.0, got, 1e-9)

	// EUR -> GBP: multiply by the GBP factor
	got, err = rates.Convert(10.0, EUR, GBP)
	require.NoError(t, err)
	require.InDelta(t, 8.5, got, 1e-9)

	// USD -> CHF via EUR
	got, err = rates.Convert(1.08, USD, CHF)
	require.NoError(t, err)
	require.InDelta(t, 0.95, got, 1e-9)
}

func TestConvertIsConsistentAcrossBases(t *testing.T) {
	t.Parallel()

	rates := DefaultRates()
	amount := 42.37

	// converting from USD to CHF directly equals USD -> GBP -> CHF
	direct, err := rates.Convert(amount, USD, CHF)
	require.NoError(t, err)
	mid, err := rates.Convert(amount, USD, GBP)
	require.NoError(t, err)
	hop, err := rates.Convert(mid, GBP, CHF)
	require.NoError(t, err)
	require.InDelta(t, direct, hop, 1e-9)
}

func TestConvertUnknownCurrency(t *testing.T) {
	t.Parallel()

	rates := RateTable{EUR: 1}
	_, err := rates.Convert(5, USD, EUR)
	var ucErr *UnknownCurrencyError
	require.ErrorAs(t, err, &ucErr)
	require.Equal(t, "USD", ucErr.Code)

	_, err = rates.Convert(5, EUR, GBP)
	require.True(t, errors.As(err, &ucErr))
	require.Equal(t, "GBP", ucErr.Code)
}

func TestNormalizeMonthlyRejectsUnknownBase(t *testing.T) {
	t.Parallel()

	rates := RateTable{EUR: 1, USD: 1.08}
	_, err := NormalizeMonthly(999, Monthly, USD, CHF, rates)
	var ucErr *UnknownCurrencyError
	require.ErrorAs(t, err, &ucErr)
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	c, err := ParseCurrency(" eur ")
	require.NoError(t, err)
	require.Equal(t, EUR, c)

	_, err = ParseCurrency("SEK")
	require.Error(t, err)
}

func TestParseCycle(t *testing.T) {
	t.Parallel()

	cy, err := ParseCycle("YEARLY")
	require.NoError(t, err)
	require.Equal(t, Yearly, cy)

	_, err = ParseCycle("weekly")
	require.Error(t, err)
}

func TestRateTableValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultRates().Validate())
	require.Error(t, RateTable{EUR: 0}.Validate())
	require.Error(t, RateTable{"XXX": 1}.Validate())
}
