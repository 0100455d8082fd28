package repository

import (
	"context"
	"errors"
	"findash/internal/domain"
	mock_repository "findash/internal/repository/mocks"
	"findash/pkg/binance"
	"findash/pkg/finnhub"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

func newTestMarketDataRepository(yahoo YahooRepository, ipo IpoCalendarClient, tickers TickerClient) marketDataRepositoryHandler {
	return marketDataRepositoryHandler{
		YahooRepository: yahoo,
		IpoClient:       ipo,
		TickerClient:    tickers,
		Now: func() time.Time {
			return testNow
		},
	}
}

func Test_marketDataRepositoryHandler_FetchHistoricalSeries(t *testing.T) {
	t.Run("requests the period window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		yahoo := mock_repository.NewMockYahooRepository(ctrl)
		handler := newTestMarketDataRepository(yahoo, nil, nil)

		series := domain.NewSeriesMatrixFromColumns(map[string]map[time.Time]float64{
			"AAPL": {time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC): 170},
		})
		yahoo.EXPECT().
			GetAdjustedCloses(gomock.Any(), []string{"AAPL"}, testNow.AddDate(0, -1, 0), testNow).
			Return(series, nil)

		prices, err := handler.FetchHistoricalSeries(context.Background(), []string{"AAPL"}, domain.Period1mo)
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, prices.Columns)
		require.Equal(t, 1, prices.Len())
	})

	t.Run("provider failure is a data provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		yahoo := mock_repository.NewMockYahooRepository(ctrl)
		handler := newTestMarketDataRepository(yahoo, nil, nil)

		yahoo.EXPECT().
			GetAdjustedCloses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.SeriesMatrix{}, errors.New("no prices returned for NOPE"))

		_, err := handler.FetchHistoricalSeries(context.Background(), []string{"NOPE"}, domain.Period1y)
		require.Error(t, err)
		require.Equal(t, domain.ErrorCategoryDataProvider, domain.CategoryOf(err))
		require.ErrorContains(t, err, "NOPE")
	})

	t.Run("unknown period is a config error", func(t *testing.T) {
		handler := newTestMarketDataRepository(nil, nil, nil)

		_, err := handler.FetchHistoricalSeries(context.Background(), []string{"AAPL"}, domain.Period("7w"))
		require.Equal(t, domain.ErrorCategoryConfig, domain.CategoryOf(err))
	})
}

func Test_marketDataRepositoryHandler_FetchFxRates(t *testing.T) {
	t.Run("keys columns by pair code and skips trivial pairs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		yahoo := mock_repository.NewMockYahooRepository(ctrl)
		handler := newTestMarketDataRepository(yahoo, nil, nil)

		d := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
		yahoo.EXPECT().
			GetAdjustedCloses(gomock.Any(), []string{"USDSEK=X", "EURSEK=X"}, gomock.Any(), testNow).
			Return(domain.NewSeriesMatrixFromColumns(map[string]map[time.Time]float64{
				"USDSEK=X": {d: 10.3},
				"EURSEK=X": {d: 11.2},
			}), nil)

		fx, err := handler.FetchFxRates(context.Background(), []domain.FxPair{
			{Base: "USD", Quote: "SEK"},
			{Base: "SEK", Quote: "SEK"},
			{Base: "EUR", Quote: "SEK"},
			{Base: "USD", Quote: "SEK"},
		}, domain.Period1y)
		require.NoError(t, err)
		require.Equal(t, []string{"USDSEK", "EURSEK"}, fx.Columns)
		usdsek, ok := fx.Column("USDSEK")
		require.True(t, ok)
		require.Equal(t, []float64{10.3}, usdsek)
	})

	t.Run("no request when every pair is trivial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		yahoo := mock_repository.NewMockYahooRepository(ctrl)
		handler := newTestMarketDataRepository(yahoo, nil, nil)

		fx, err := handler.FetchFxRates(context.Background(), []domain.FxPair{{Base: "SEK", Quote: "SEK"}}, domain.Period1y)
		require.NoError(t, err)
		require.Empty(t, fx.Columns)
	})
}

func Test_marketDataRepositoryHandler_FetchIndexSnapshot(t *testing.T) {
	t.Run("missing ticker fails the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		yahoo := mock_repository.NewMockYahooRepository(ctrl)
		handler := newTestMarketDataRepository(yahoo, nil, nil)

		yahoo.EXPECT().
			GetQuotes(gomock.Any(), []string{"^VIX", "^OMX"}).
			Return(map[string]domain.IndexQuote{
				"^VIX": {Symbol: "^VIX", Price: 14.2},
			}, nil)

		_, err := handler.FetchIndexSnapshot(context.Background(), []string{"^VIX", "^OMX"})
		require.Equal(t, domain.ErrorCategoryDataProvider, domain.CategoryOf(err))
		require.ErrorContains(t, err, "^OMX")
	})
}

func Test_marketDataRepositoryHandler_FetchIpoCalendar(t *testing.T) {
	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)

	t.Run("orders by date", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ipoCalendar":[
				{"date":"2024-03-17","exchange":"NYSE","name":"Zeta","symbol":"ZT"},
				{"date":"2024-03-15","exchange":"NASDAQ","name":"Beta","symbol":"BT"},
				{"date":"2024-03-15","exchange":"NASDAQ","name":"Alpha","symbol":"AL"}
			]}`))
		}))
		defer server.Close()
		client := finnhub.NewClient("key", time.Second)
		client.BaseURL = server.URL
		handler := newTestMarketDataRepository(nil, client, nil)

		listings, err := handler.FetchIpoCalendar(context.Background(), from, to)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.IpoListing{
			{Date: "2024-03-15", Name: "Alpha", Symbol: "AL", Exchange: "NASDAQ"},
			{Date: "2024-03-15", Name: "Beta", Symbol: "BT", Exchange: "NASDAQ"},
			{Date: "2024-03-17", Name: "Zeta", Symbol: "ZT", Exchange: "NYSE"},
		}, listings))
	})

	t.Run("inverted window is a config error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ipo := mock_repository.NewMockIpoCalendarClient(ctrl)
		handler := newTestMarketDataRepository(nil, ipo, nil)

		_, err := handler.FetchIpoCalendar(context.Background(), to, from)
		require.Equal(t, domain.ErrorCategoryConfig, domain.CategoryOf(err))
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ipo := mock_repository.NewMockIpoCalendarClient(ctrl)
		handler := newTestMarketDataRepository(nil, ipo, nil)

		ipo.EXPECT().GetIpoCalendar(gomock.Any(), from, to).Return(nil, errors.New("timeout"))

		_, err := handler.FetchIpoCalendar(context.Background(), from, to)
		require.Equal(t, domain.ErrorCategoryDataProvider, domain.CategoryOf(err))
	})
}

func Test_marketDataRepositoryHandler_FetchTickerSnapshot(t *testing.T) {
	t.Run("parses percent strings", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"symbol":"BTCUSDT","priceChangePercent":"1.500"},
				{"symbol":"ETHUSDT","priceChangePercent":"-2.25"}
			]`))
		}))
		defer server.Close()
		client := binance.NewClient("", time.Second)
		client.BaseURL = server.URL
		handler := newTestMarketDataRepository(nil, nil, client)

		tickers, err := handler.FetchTickerSnapshot(context.Background())
		require.NoError(t, err)
		require.Equal(t, []domain.TickerChange{
			{Symbol: "BTCUSDT", PriceChangePercent: 1.5},
			{Symbol: "ETHUSDT", PriceChangePercent: -2.25},
		}, tickers)
	})

	t.Run("bad number fails the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tickerClient := mock_repository.NewMockTickerClient(ctrl)
		handler := newTestMarketDataRepository(nil, nil, tickerClient)

		tickerClient.EXPECT().Get24hrTickers(gomock.Any()).Return([]binance.Ticker24hr{
			{Symbol: "BTCUSDT", PriceChangePercent: "n/a"},
		}, nil)

		_, err := handler.FetchTickerSnapshot(context.Background())
		require.Equal(t, domain.ErrorCategoryDataProvider, domain.CategoryOf(err))
	})
}
