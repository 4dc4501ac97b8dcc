package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveFallsBackToDefault(t *testing.T) {
	require.Equal(t, "USD", Resolve("Atlantis").Code)
	require.Equal(t, "JPY", Resolve("Japan").Code)
	require.Equal(t, 1.36, Resolve("Canada").Rate)
}

func TestFormatBaseCurrency(t *testing.T) {
	require.Equal(t, "$64.00", Format("United States", 64))
	require.Equal(t, "$190.08", Format("United States", 190.08))
	require.Equal(t, "$1,234.50", Format("United States", 1234.5))
}

func TestFormatJapanUsesZeroDecimals(t *testing.T) {
	// 176 base units at the configured 156.80 rate is 27,596.8 yen,
	// rendered with no minor unit.
	require.Equal(t, "¥27,597", Format("Japan", 176))
}

func TestFormatIsIdempotent(t *testing.T) {
	first := Format("India", 64)
	second := Format("India", 64)
	require.Equal(t, first, second)
	require.Equal(t, "₹5,340.80", first)
}

func TestTaxedScenario(t *testing.T) {
	// Cart of $64 x2 + $48 x1 = 176; 8% tax yields 190.08.
	total := 64.0*2 + 48.0*1
	require.Equal(t, 176.0, total)
	grand := total * 1.08
	require.InDelta(t, 190.08, grand, 1e-9)
	require.Equal(t, "$190.08", Format("United States", grand))
}

func TestCountriesMatchTable(t *testing.T) {
	for _, c := range Countries() {
		require.True(t, Supported(c), c)
	}
	require.False(t, Supported("Atlantis"))
}
