package app

import (
	"findash/internal/domain"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

type TimeSeriesRow struct {
	Date   string  `csv:"date"`
	Crypto float64 `csv:"crypto"`
	Stock  float64 `csv:"stock"`
	Total  float64 `csv:"total"`
}

func (r RefreshResult) TimeSeriesRows() ([]TimeSeriesRow, error) {
	if r.Portfolio == nil {
		return nil, domain.NewComputationError("", "portfolio metrics missing from run %s", r.RunID)
	}

	ts := r.Portfolio.TimeSeries
	rows := make([]TimeSeriesRow, 0, len(ts.Dates))
	for i, d := range ts.Dates {
		rows = append(rows, TimeSeriesRow{
			Date:   d.Format(time.DateOnly),
			Crypto: ts.Crypto[i],
			Stock:  ts.Stock[i],
			Total:  ts.Total[i],
		})
	}
	return rows, nil
}

// WriteTimeSeriesCsv writes the valuation history the renderer plots,
// one row per session.
func (r RefreshResult) WriteTimeSeriesCsv(w io.Writer) error {
	rows, err := r.TimeSeriesRows()
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
