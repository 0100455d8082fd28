package repository

import (
	"context"
	"findash/internal/domain"
	"findash/internal/logger"
	"findash/internal/util"
	"fmt"
	"math"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// YahooRepository reads daily bars and live quotes from Yahoo Finance.
// FX rates are plain symbols there too, e.g. EURSEK=X.
type YahooRepository interface {
	GetAdjustedCloses(ctx context.Context, symbols []string, start, end time.Time) (domain.SeriesMatrix, error)
	GetQuotes(ctx context.Context, symbols []string) (map[string]domain.IndexQuote, error)
}

func NewYahooRepository() YahooRepository {
	return yahooRepositoryHandler{}
}

type yahooRepositoryHandler struct{}

func FxSymbol(pair domain.FxPair) string {
	return pair.Code() + "=X"
}

func (h yahooRepositoryHandler) GetAdjustedCloses(ctx context.Context, symbols []string, start, end time.Time) (domain.SeriesMatrix, error) {
	log := logger.FromContext(ctx)

	columns := map[string]map[time.Time]float64{}
	for _, symbol := range symbols {
		closes, err := getAdjustedCloses(symbol, start, end)
		if err != nil {
			return domain.SeriesMatrix{}, err
		}
		if len(closes) == 0 {
			return domain.SeriesMatrix{}, fmt.Errorf("no prices returned for %s", symbol)
		}
		log.Debugw("downloaded closes", "symbol", symbol, "count", len(closes))
		columns[symbol] = closes
	}

	return domain.NewSeriesMatrixFromColumns(columns), nil
}

func getAdjustedCloses(symbol string, start, end time.Time) (map[time.Time]float64, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	bars := []finance.ChartBar{}
	for iter.Next() {
		bars = append(bars, *iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return map[time.Time]float64{}, nil
	}

	meta := iter.Meta()
	return closesBySession(bars, util.ExchangeLocation(meta.ExchangeTimezoneName, meta.Gmtoffset)), nil
}

// closesBySession keys adjusted closes by exchange-local session day.
// Bars without an adjusted close are kept as missing; when a day has
// more than one bar the last one wins.
func closesBySession(bars []finance.ChartBar, loc *time.Location) map[time.Time]float64 {
	out := map[time.Time]float64{}
	for _, bar := range bars {
		d := util.SessionDate(int64(bar.Timestamp), loc)
		if bar.AdjClose.IsZero() {
			if _, ok := out[d]; !ok {
				out[d] = math.NaN()
			}
			continue
		}
		out[d] = bar.AdjClose.InexactFloat64()
	}
	return out
}

func (h yahooRepositoryHandler) GetQuotes(ctx context.Context, symbols []string) (map[string]domain.IndexQuote, error) {
	log := logger.FromContext(ctx)

	out := map[string]domain.IndexQuote{}
	for _, symbol := range symbols {
		q, err := quote.Get(symbol)
		if err != nil {
			return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
		}
		if q == nil {
			return nil, fmt.Errorf("no quote returned for %s", symbol)
		}
		log.Debugw("downloaded quote", "symbol", symbol, "price", q.RegularMarketPrice)
		out[symbol] = domain.IndexQuote{
			Symbol:           symbol,
			Price:            q.RegularMarketPrice,
			Open:             q.RegularMarketOpen,
			FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		}
	}
	return out, nil
}
