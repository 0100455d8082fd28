package app

import (
	"fmt"
	"strconv"
)

const placeholder = "---"

// Table is a renderer-ready grid of display strings.
type Table struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	Footer string     `json:"footer,omitempty"`
}

func formatPercent(v *float64) string {
	if v == nil {
		return placeholder
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

// Tables lays the result out the way the dashboard shows it. Absent
// groups produce no table.
func (r RefreshResult) Tables() []Table {
	out := []Table{}

	if p := r.Portfolio; p != nil {
		out = append(out, Table{
			Title:  "Portfolio",
			Header: []string{"Portfolio", "Value", "1D %", fmt.Sprintf("%s σ", r.Period)},
			Rows: [][]string{
				{"Stocks", strconv.FormatInt(p.StockValue, 10), formatPercent(p.StockReturn), formatPercent(p.StockVolatility)},
				{"Cryptos", strconv.FormatInt(p.CryptoValue, 10), formatPercent(p.CryptoReturn), formatPercent(p.CryptoVolatility)},
				{placeholder, placeholder, placeholder, placeholder},
				{"Total", strconv.FormatInt(p.TotalValue, 10), formatPercent(p.TotalReturn), placeholder},
			},
			Footer: p.Currency,
		})
	}

	if idx := r.Index; idx != nil {
		t := Table{
			Title:  "Index",
			Header: []string{"Index", "1D %"},
			Rows:   [][]string{},
			Footer: fmt.Sprintf("VIX - Current: %.2f, 1Y MAX: %.2f", idx.VolatilityIndex.Level, idx.VolatilityIndex.FiftyTwoWeekHigh),
		}
		for _, c := range idx.Indices {
			change := c.Change
			t.Rows = append(t.Rows, []string{c.Label, formatPercent(&change)})
		}
		out = append(out, t)
	}

	if ipos := r.Ipos; ipos != nil {
		t := Table{
			Title:  "IPOs",
			Header: []string{"date", "name", "ticker", "exchange"},
			Rows:   [][]string{},
		}
		for _, l := range ipos.Listings {
			t.Rows = append(t.Rows, []string{l.Date, l.Name, l.Symbol, l.Exchange})
		}
		out = append(out, t)
	}

	if coins := r.Coins; coins != nil {
		t := Table{
			Title:  "Coins",
			Header: []string{"Coin Pair", "24h %"},
			Rows:   [][]string{},
		}
		for _, c := range coins.Coins {
			change := c.Change
			t.Rows = append(t.Rows, []string{c.Symbol, formatPercent(&change)})
		}
		out = append(out, t)
	}

	return out
}
