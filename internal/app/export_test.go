package app

import (
	"bytes"
	"findash/internal/domain"
	"findash/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRefreshResult_WriteTimeSeriesCsv(t *testing.T) {
	t.Run("one row per session", func(t *testing.T) {
		result := RefreshResult{
			Portfolio: &domain.PortfolioMetrics{
				TimeSeries: domain.PortfolioTimeSeries{
					Dates:  []time.Time{util.NewDate(2024, 3, 14), util.NewDate(2024, 3, 15)},
					Crypto: []float64{100, 110.5},
					Stock:  []float64{50, 49},
					Total:  []float64{150, 159.5},
				},
			},
		}

		out := bytes.Buffer{}
		require.NoError(t, result.WriteTimeSeriesCsv(&out))
		require.Equal(t, "date,crypto,stock,total\n2024-03-14,100,50,150\n2024-03-15,110.5,49,159.5\n", out.String())
	})

	t.Run("no portfolio", func(t *testing.T) {
		err := RefreshResult{}.WriteTimeSeriesCsv(&bytes.Buffer{})
		require.Equal(t, domain.ErrorCategoryComputation, domain.CategoryOf(err))
	})
}
