package repository

import (
	"findash/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_holdingsRepositoryHandler_Load(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "holdings.json")
		err := os.WriteFile(path, []byte(`{
			"stocks": {
				"AAPL": {"amount": 10, "currency": "USD"},
				"VOLV-B.ST": {"amount": 25.5, "currency": "SEK"}
			},
			"cryptocurrencies": {
				"BTC-USD": 0.25,
				"ETH-EUR": 0
			}
		}`), 0o600)
		require.NoError(t, err)

		holdings, err := NewHoldingsRepository().Load(path)
		require.NoError(t, err)

		require.Equal(t, []string{"AAPL", "VOLV-B.ST"}, holdings.StockSymbols())
		require.True(t, holdings.Stocks["VOLV-B.ST"].Amount.Equal(decimal.NewFromFloat(25.5)))
		require.True(t, holdings.Cryptocurrencies["ETH-EUR"].IsZero())

		pairs, err := holdings.InstrumentCurrencies()
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.InstrumentCurrency{
			{Symbol: "AAPL", Currency: "USD", AssetClass: domain.AssetClassStock},
			{Symbol: "VOLV-B.ST", Currency: "SEK", AssetClass: domain.AssetClassStock},
			{Symbol: "BTC-USD", Currency: "USD", AssetClass: domain.AssetClassCrypto},
			{Symbol: "ETH-EUR", Currency: "EUR", AssetClass: domain.AssetClassCrypto},
		}, pairs))
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		_, err := NewHoldingsRepository().Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		require.Equal(t, domain.ErrorCategoryConfig, domain.CategoryOf(err))
	})

	t.Run("malformed file is a config error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "holdings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"stocks": `), 0o600))

		_, err := NewHoldingsRepository().Load(path)
		require.Error(t, err)
		require.Equal(t, domain.ErrorCategoryConfig, domain.CategoryOf(err))
	})
}

func TestParseHoldings(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing stocks",
			doc:     `{"cryptocurrencies": {}}`,
			wantErr: `"stocks"`,
		},
		{
			name:    "missing cryptocurrencies",
			doc:     `{"stocks": {}}`,
			wantErr: `"cryptocurrencies"`,
		},
		{
			name:    "stock without currency",
			doc:     `{"stocks": {"AAPL": {"amount": 1}}, "cryptocurrencies": {}}`,
			wantErr: `"currency"`,
		},
		{
			name:    "stock without amount",
			doc:     `{"stocks": {"AAPL": {"currency": "USD"}}, "cryptocurrencies": {}}`,
			wantErr: `"amount"`,
		},
		{
			name:    "wrong amount type",
			doc:     `{"stocks": {"AAPL": {"amount": true, "currency": "USD"}}, "cryptocurrencies": {}}`,
			wantErr: "failed to parse holdings",
		},
		{
			name:    "negative amount",
			doc:     `{"stocks": {}, "cryptocurrencies": {"BTC-USD": -1}}`,
			wantErr: "negative amount",
		},
		{
			name:    "crypto symbol without currency",
			doc:     `{"stocks": {}, "cryptocurrencies": {"BTC": 1}}`,
			wantErr: "ASSET-CURRENCY",
		},
		{
			name:    "conflicting currencies",
			doc:     `{"stocks": {"BTC-USD": {"amount": 1, "currency": "EUR"}}, "cryptocurrencies": {"BTC-USD": 1}}`,
			wantErr: "conflicting base currencies",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHoldings(strings.NewReader(tc.doc))
			require.Error(t, err)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}

	t.Run("empty classes are fine", func(t *testing.T) {
		holdings, err := ParseHoldings(strings.NewReader(`{"stocks": {}, "cryptocurrencies": {}}`))
		require.NoError(t, err)
		require.Empty(t, holdings.Stocks)
		require.Empty(t, holdings.Cryptocurrencies)
	})

	t.Run("same instrument in both classes is tracked twice", func(t *testing.T) {
		holdings, err := ParseHoldings(strings.NewReader(`{
			"stocks": {"BTC-USD": {"amount": 1, "currency": "usd"}},
			"cryptocurrencies": {"BTC-USD": 2}
		}`))
		require.NoError(t, err)
		pairs, err := holdings.InstrumentCurrencies()
		require.NoError(t, err)
		require.Len(t, pairs, 2)
	})

	t.Run("several bad entries always report the same one", func(t *testing.T) {
		docs := []struct {
			doc  string
			want string
		}{
			{
				doc:  `{"stocks": {"ZZZ": {"amount": -1, "currency": "USD"}, "MMM": {"amount": -3, "currency": "USD"}, "AAA": {"amount": -2, "currency": "USD"}}, "cryptocurrencies": {}}`,
				want: "stock AAA has negative amount -2",
			},
			{
				doc:  `{"stocks": {"ZZZ": {"amount": 1}, "AAA": {"amount": 1}}, "cryptocurrencies": {}}`,
				want: "stock AAA is missing required key",
			},
			{
				doc:  `{"stocks": {}, "cryptocurrencies": {"ETH-USD": -1, "BTC-USD": -2, "SOL-USD": -3}}`,
				want: "crypto BTC-USD has negative amount -2",
			},
		}
		for _, d := range docs {
			for i := 0; i < 20; i++ {
				_, err := ParseHoldings(strings.NewReader(d.doc))
				require.ErrorContains(t, err, d.want)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		doc := `{"stocks": {"B": {"amount": 1, "currency": "USD"}, "A": {"amount": 2, "currency": "USD"}}, "cryptocurrencies": {"X-EUR": 1}}`
		first, err := ParseHoldings(strings.NewReader(doc))
		require.NoError(t, err)
		second, err := ParseHoldings(strings.NewReader(doc))
		require.NoError(t, err)
		p1, _ := first.InstrumentCurrencies()
		p2, _ := second.InstrumentCurrencies()
		require.Equal(t, "", cmp.Diff(p1, p2))
	})
}
