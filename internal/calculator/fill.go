package calculator

import (
	"findash/internal/domain"
	"math"
)

// FillMissing replaces each NaN with the closest earlier value and any
// leading NaNs with the first value that follows them. It returns false
// when the series has no value at all, leaving it untouched.
func FillMissing(values []float64) ([]float64, bool) {
	out := append([]float64{}, values...)

	first := -1
	for i, v := range out {
		if !math.IsNaN(v) {
			first = i
			break
		}
	}
	if first < 0 {
		return out, false
	}

	for i := 0; i < first; i++ {
		out[i] = out[first]
	}
	for i := first + 1; i < len(out); i++ {
		if math.IsNaN(out[i]) {
			out[i] = out[i-1]
		}
	}

	return out, true
}

// FillMatrix applies FillMissing to every column. Columns with no values
// are returned as undefined and left out of the result.
func FillMatrix(m domain.SeriesMatrix) (filled domain.SeriesMatrix, undefined []string) {
	filled = domain.NewSeriesMatrix(m.Dates)
	for _, name := range m.Columns {
		values, ok := FillMissing(m.Values[name])
		if !ok {
			undefined = append(undefined, name)
			continue
		}
		filled.Columns = append(filled.Columns, name)
		filled.Values[name] = values
	}
	return filled, undefined
}
