// Package render maps scan results to display rows. Row order is the order
// the engine answered in; nothing is re-sorted here.
package render

import (
	"math"
	"strconv"

	"strategy-scanner/internal/dto"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	LabelMeets    = "Meets condition"
	LabelNotMeets = "Does not meet"
)

// Headers are the table columns, left to right.
var Headers = []string{"Symbol", "Buy Signal", "Sell Signal", "Last Price", "MA200", "MA50", "MA20", "Volume", "Date"}

// SignalCell is one buy or sell cell. For error rows Text is the engine's
// error message and Positive is false.
type SignalCell struct {
	Text     string
	Positive bool
	IsError  bool
}

type Row struct {
	Even      bool
	Symbol    string
	Buy       SignalCell
	Sell      SignalCell
	LastPrice string
	MA200     string
	MA50      string
	MA20      string
	Volume    string
	Date      string
}

// Cells flattens the row in Headers order.
func (r Row) Cells() []string {
	return []string{r.Symbol, r.Buy.Text, r.Sell.Text, r.LastPrice, r.MA200, r.MA50, r.MA20, r.Volume, r.Date}
}

type Renderer struct {
	printer *message.Printer
}

// New returns a renderer formatting volumes for tag, e.g. language.English
// gives 1,234,567.
func New(tag language.Tag) *Renderer {
	return &Renderer{printer: message.NewPrinter(tag)}
}

func (r *Renderer) Rows(results []dto.ScanResult) []Row {
	rows := make([]Row, 0, len(results))
	for i, res := range results {
		rows = append(rows, r.Row(i, res))
	}
	return rows
}

// Row renders a single result. Buy and sell are judged independently.
func (r *Renderer) Row(index int, res dto.ScanResult) Row {
	row := Row{
		Even:   index%2 == 0,
		Symbol: res.Symbol,
	}

	if res.Error != nil {
		cell := SignalCell{Text: *res.Error, IsError: true}
		row.Buy = cell
		row.Sell = cell
		return row
	}

	row.Buy = signal(res.BuyCondition)
	row.Sell = signal(res.SellCondition)
	row.LastPrice = Fixed2(res.LastPrice)
	row.MA200 = Fixed2(res.MA200)
	row.MA50 = Fixed2(res.MA50)
	row.MA20 = Fixed2(res.MA20)
	row.Volume = r.Volume(res.Volume)
	if res.Date != nil {
		row.Date = *res.Date
	}
	return row
}

// Volume formats with the locale's thousands separator; absent is "".
func (r *Renderer) Volume(v *float64) string {
	if !present(v) {
		return ""
	}
	return r.printer.Sprint(number.Decimal(*v, number.MaxFractionDigits(3)))
}

// Fixed2 prints v with two decimals. Absent stays "" so a computed zero
// ("0.00") is distinguishable from a value the engine never sent.
func Fixed2(v *float64) string {
	if !present(v) {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func present(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func signal(ok bool) SignalCell {
	if ok {
		return SignalCell{Text: LabelMeets, Positive: true}
	}
	return SignalCell{Text: LabelNotMeets}
}
