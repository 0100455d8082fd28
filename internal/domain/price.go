package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// SeriesMatrix is a date-indexed table of float columns. Missing cells
// are NaN. Dates are unique, ascending, and truncated to the session day.
type SeriesMatrix struct {
	Dates   []time.Time
	Columns []string
	Values  map[string][]float64
}

func NewSeriesMatrix(dates []time.Time) SeriesMatrix {
	return SeriesMatrix{
		Dates:   dates,
		Columns: []string{},
		Values:  map[string][]float64{},
	}
}

// NewSeriesMatrixFromColumns aligns independently dated columns onto the
// union of their dates.
func NewSeriesMatrixFromColumns(columns map[string]map[time.Time]float64) SeriesMatrix {
	dateSet := map[time.Time]struct{}{}
	for _, series := range columns {
		for d := range series {
			dateSet[d] = struct{}{}
		}
	}
	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	m := NewSeriesMatrix(dates)
	for _, name := range names {
		values := make([]float64, len(dates))
		for i, d := range dates {
			v, ok := columns[name][d]
			if !ok {
				v = math.NaN()
			}
			values[i] = v
		}
		m.Columns = append(m.Columns, name)
		m.Values[name] = values
	}
	return m
}

func (m SeriesMatrix) Len() int {
	return len(m.Dates)
}

func (m SeriesMatrix) Column(name string) ([]float64, bool) {
	v, ok := m.Values[name]
	return v, ok
}

func (m *SeriesMatrix) Set(name string, values []float64) error {
	if len(values) != len(m.Dates) {
		return fmt.Errorf("column %s has %d values, expected %d", name, len(values), len(m.Dates))
	}
	if _, ok := m.Values[name]; !ok {
		m.Columns = append(m.Columns, name)
	}
	m.Values[name] = values
	return nil
}

// Reindex returns a copy aligned onto dates. Dates that are not in m
// become NaN and dates of m that are not in the new index are dropped.
func (m SeriesMatrix) Reindex(dates []time.Time) SeriesMatrix {
	position := map[time.Time]int{}
	for i, d := range m.Dates {
		position[d] = i
	}
	out := NewSeriesMatrix(dates)
	for _, name := range m.Columns {
		values := make([]float64, len(dates))
		for i, d := range dates {
			values[i] = math.NaN()
			if j, ok := position[d]; ok {
				values[i] = m.Values[name][j]
			}
		}
		out.Columns = append(out.Columns, name)
		out.Values[name] = values
	}
	return out
}

func (m SeriesMatrix) Clone() SeriesMatrix {
	out := NewSeriesMatrix(append([]time.Time{}, m.Dates...))
	for _, name := range m.Columns {
		out.Columns = append(out.Columns, name)
		out.Values[name] = append([]float64{}, m.Values[name]...)
	}
	return out
}

// PriceMatrix holds adjusted closes, one column per instrument.
type PriceMatrix struct {
	SeriesMatrix
}

// FxMatrix holds exchange rates, one column per FxPair code.
type FxMatrix struct {
	SeriesMatrix
}

// FxPair converts Base into Quote. Its code follows the BASEQUOTE
// convention, e.g. USDSEK.
type FxPair struct {
	Base  string
	Quote string
}

func (p FxPair) Code() string {
	return p.Base + p.Quote
}

func (p FxPair) String() string {
	return p.Code()
}

func (p FxPair) IsTrivial() bool {
	return p.Base == p.Quote
}
