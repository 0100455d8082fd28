package app

import (
	"context"
	"errors"
	"findash/internal/domain"
	mock_repository "findash/internal/repository/mocks"
	mock_service "findash/internal/service/mocks"
	"findash/internal/util"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type refreshMocks struct {
	holdings *mock_repository.MockHoldingsRepository
	currency *mock_service.MockCurrencyService
	snapshot *mock_service.MockMarketSnapshotService
}

func newTestRefreshHandler(t *testing.T) (RefreshHandler, refreshMocks) {
	ctrl := gomock.NewController(t)
	m := refreshMocks{
		holdings: mock_repository.NewMockHoldingsRepository(ctrl),
		currency: mock_service.NewMockCurrencyService(ctrl),
		snapshot: mock_service.NewMockMarketSnapshotService(ctrl),
	}
	return RefreshHandler{
		HoldingsRepository:    m.holdings,
		CurrencyService:       m.currency,
		MarketSnapshotService: m.snapshot,
		HoldingsPath:          "holdings.json",
		TargetCurrency:        "SEK",
	}, m
}

func testHoldings() *domain.Holdings {
	return &domain.Holdings{
		Stocks: map[string]domain.StockHolding{
			"AAPL": {Amount: decimal.NewFromInt(10), Currency: "USD"},
		},
		Cryptocurrencies: map[string]decimal.Decimal{
			"BTC-USD": decimal.NewFromInt(1),
		},
	}
}

func testPrices(t *testing.T) *domain.PriceMatrix {
	m := domain.NewSeriesMatrix([]time.Time{util.NewDate(2024, 3, 14), util.NewDate(2024, 3, 15)})
	require.NoError(t, m.Set("AAPL", []float64{1800, 1900}))
	require.NoError(t, m.Set("BTC-USD", []float64{700000, 707000}))
	return &domain.PriceMatrix{SeriesMatrix: m}
}

var (
	testIndex = &domain.IndexMetrics{
		VolatilityIndex: domain.VolatilityIndexLevel{Symbol: "^VIX", Level: 14.2, FiftyTwoWeekHigh: 30.1},
		Indices:         []domain.IndexChange{{Label: "OMXS30", Symbol: "^OMX", Change: 0.0123}},
	}
	testIpos = &domain.IpoCalendar{
		From:     util.NewDate(2024, 3, 15),
		To:       util.NewDate(2024, 3, 17),
		Listings: []domain.IpoListing{{Date: "2024-03-16", Name: "Acme", Symbol: "ACME", Exchange: "NYSE"}},
	}
	testCoins = &domain.TrendingCoins{
		Top:   8,
		Coins: []domain.CoinChange{{Symbol: "DOGEUSDT", Change: 0.125}},
	}
)

func TestRefreshHandler_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("every group succeeds", func(t *testing.T) {
		handler, m := newTestRefreshHandler(t)

		gomock.InOrder(
			m.holdings.EXPECT().Load("holdings.json").Return(testHoldings(), nil),
			m.currency.EXPECT().Normalize(gomock.Any(), gomock.Len(2), domain.Period1y, "SEK").Return(testPrices(t), nil),
			m.snapshot.EXPECT().GetIndexMetrics(gomock.Any()).Return(testIndex, nil),
			m.snapshot.EXPECT().GetUpcomingIpos(gomock.Any()).Return(testIpos, nil),
			m.snapshot.EXPECT().GetTrendingCoins(gomock.Any()).Return(testCoins, nil),
		)

		result := handler.Refresh(ctx, domain.Period1y)
		require.Empty(t, result.Diagnostics)
		require.NotNil(t, result.Portfolio)
		require.Equal(t, int64(19000), result.Portfolio.StockValue)
		require.Equal(t, int64(707000), result.Portfolio.CryptoValue)
		require.Equal(t, int64(726000), result.Portfolio.TotalValue)
		require.Equal(t, testIndex, result.Index)
		require.Equal(t, testIpos, result.Ipos)
		require.Equal(t, testCoins, result.Coins)
		require.Len(t, result.Profile.Spans, 4)
		require.NotNil(t, result.Profile.TotalMs)
	})

	t.Run("ipo failure leaves the other groups intact", func(t *testing.T) {
		handler, m := newTestRefreshHandler(t)

		m.holdings.EXPECT().Load(gomock.Any()).Return(testHoldings(), nil)
		m.currency.EXPECT().Normalize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(testPrices(t), nil)
		m.snapshot.EXPECT().GetIndexMetrics(gomock.Any()).Return(testIndex, nil)
		m.snapshot.EXPECT().GetUpcomingIpos(gomock.Any()).
			Return(nil, domain.NewDataProviderError("finnhub", "ipo calendar", errors.New("connection reset")))
		m.snapshot.EXPECT().GetTrendingCoins(gomock.Any()).Return(testCoins, nil)

		result := handler.Refresh(ctx, domain.Period1y)
		require.NotNil(t, result.Portfolio)
		require.NotNil(t, result.Index)
		require.Nil(t, result.Ipos)
		require.NotNil(t, result.Coins)
		require.Equal(t, []domain.Diagnostic{{
			Group:    domain.GroupIpos,
			Category: domain.ErrorCategoryDataProvider,
			Message:  "finnhub ipo calendar failed: connection reset",
		}}, result.Diagnostics)
	})

	t.Run("portfolio failure skips the index metrics", func(t *testing.T) {
		handler, m := newTestRefreshHandler(t)

		m.holdings.EXPECT().Load(gomock.Any()).
			Return(nil, domain.NewConfigError("holdings.json", "missing key %q", "stocks"))
		m.snapshot.EXPECT().GetUpcomingIpos(gomock.Any()).Return(testIpos, nil)
		m.snapshot.EXPECT().GetTrendingCoins(gomock.Any()).Return(testCoins, nil)

		result := handler.Refresh(ctx, domain.Period1y)
		require.Nil(t, result.Portfolio)
		require.Nil(t, result.Index)
		require.NotNil(t, result.Ipos)
		require.NotNil(t, result.Coins)
		require.Len(t, result.Diagnostics, 1)
		require.Equal(t, domain.GroupPortfolio, result.Diagnostics[0].Group)
		require.Equal(t, domain.ErrorCategoryConfig, result.Diagnostics[0].Category)
	})

	t.Run("index failure keeps the portfolio", func(t *testing.T) {
		handler, m := newTestRefreshHandler(t)

		m.holdings.EXPECT().Load(gomock.Any()).Return(testHoldings(), nil)
		m.currency.EXPECT().Normalize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(testPrices(t), nil)
		m.snapshot.EXPECT().GetIndexMetrics(gomock.Any()).
			Return(nil, domain.NewComputationError("^OMX", "no opening price"))
		m.snapshot.EXPECT().GetUpcomingIpos(gomock.Any()).Return(testIpos, nil)
		m.snapshot.EXPECT().GetTrendingCoins(gomock.Any()).Return(testCoins, nil)

		result := handler.Refresh(ctx, domain.Period1y)
		require.NotNil(t, result.Portfolio)
		require.Nil(t, result.Index)
		require.Len(t, result.Diagnostics, 1)
		require.Equal(t, domain.GroupIndex, result.Diagnostics[0].Group)
		require.Equal(t, domain.ErrorCategoryComputation, result.Diagnostics[0].Category)
	})

	t.Run("every group fails", func(t *testing.T) {
		handler, m := newTestRefreshHandler(t)

		m.holdings.EXPECT().Load(gomock.Any()).Return(testHoldings(), nil)
		m.currency.EXPECT().Normalize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.NewDataProviderError("yahoo", "historical series", errors.New("503")))
		m.snapshot.EXPECT().GetUpcomingIpos(gomock.Any()).Return(nil, errors.New("boom"))
		m.snapshot.EXPECT().GetTrendingCoins(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.TrendingCoins, error) {
			panic("nil map")
		})

		result := handler.Refresh(ctx, domain.Period1y)
		require.Nil(t, result.Portfolio)
		require.Nil(t, result.Index)
		require.Nil(t, result.Ipos)
		require.Nil(t, result.Coins)
		require.Equal(t, []domain.ErrorCategory{
			domain.ErrorCategoryDataProvider,
			domain.ErrorCategoryUnknown,
			domain.ErrorCategoryUnknown,
		}, []domain.ErrorCategory{
			result.Diagnostics[0].Category,
			result.Diagnostics[1].Category,
			result.Diagnostics[2].Category,
		})
		require.Contains(t, result.Diagnostics[2].Message, "nil map")
	})

	t.Run("invalid period never loads holdings", func(t *testing.T) {
		handler, m := newTestRefreshHandler(t)

		m.snapshot.EXPECT().GetUpcomingIpos(gomock.Any()).Return(testIpos, nil)
		m.snapshot.EXPECT().GetTrendingCoins(gomock.Any()).Return(testCoins, nil)

		result := handler.Refresh(ctx, domain.Period("10y"))
		require.Nil(t, result.Portfolio)
		require.Equal(t, domain.ErrorCategoryConfig, result.Diagnostics[0].Category)
	})
}

func TestRefreshResult_Tables(t *testing.T) {
	t.Run("formats percents and placeholders", func(t *testing.T) {
		result := RefreshResult{
			Period: domain.Period1y,
			Portfolio: &domain.PortfolioMetrics{
				Currency:        "SEK",
				StockValue:      19000,
				CryptoValue:     707000,
				TotalValue:      726000,
				StockReturn:     util.FloatPointer(0.0556),
				StockVolatility: util.FloatPointer(0.2),
				TotalReturn:     util.FloatPointer(0.012),
			},
			Coins: testCoins,
		}

		tables := result.Tables()
		require.Len(t, tables, 2)
		require.Equal(t, [][]string{
			{"Stocks", "19000", "5.56%", "20.00%"},
			{"Cryptos", "707000", "---", "---"},
			{"---", "---", "---", "---"},
			{"Total", "726000", "1.20%", "---"},
		}, tables[0].Rows)
		require.Equal(t, [][]string{{"DOGEUSDT", "12.50%"}}, tables[1].Rows)
	})

	t.Run("index footer carries the volatility level", func(t *testing.T) {
		tables := RefreshResult{Index: testIndex, Ipos: testIpos}.Tables()
		require.Len(t, tables, 2)
		require.Equal(t, "VIX - Current: 14.20, 1Y MAX: 30.10", tables[0].Footer)
		require.Equal(t, [][]string{{"OMXS30", "1.23%"}}, tables[0].Rows)
		require.Equal(t, [][]string{{"2024-03-16", "Acme", "ACME", "NYSE"}}, tables[1].Rows)
	})
}
