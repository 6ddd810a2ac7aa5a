// Package estimate checks the arithmetic of a cost estimate and formats
// amounts for display.
package estimate

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"palette-backend/internal/models"
)

// Violation describes one broken invariant in a result.
type Violation struct {
	Path    string
	Message string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Message
}

// LaborSubtotal sums the labor fields of every breakdown row.
func LaborSubtotal(rows []models.BreakdownItem) models.CostRange {
	low, high := decimal.Zero, decimal.Zero
	for _, row := range rows {
		low = low.Add(decimal.NewFromFloat(row.LaborLow))
		high = high.Add(decimal.NewFromFloat(row.LaborHigh))
	}
	return models.CostRange{Low: low.InexactFloat64(), High: high.InexactFloat64()}
}

// Check returns every invariant the result breaks. Rows must add up
// (materials + labor == total), ranges must be ordered and the labor
// subtotal must equal the sum of the rows.
func Check(r *models.GenerationResult) []Violation {
	var out []Violation

	checkRange := func(path string, low, high float64) {
		if low > high {
			out = append(out, Violation{Path: path, Message: fmt.Sprintf("low %v exceeds high %v", low, high)})
		}
	}

	checkRange("estimateRange", r.EstimateRange.Low, r.EstimateRange.High)
	checkRange("totalEstimate", r.TotalEstimate.Low, r.TotalEstimate.High)
	checkRange("laborSubtotal", r.LaborSubtotal.Low, r.LaborSubtotal.High)

	for i, row := range r.Breakdown {
		path := fmt.Sprintf("breakdown.%d", i)
		checkRange(path+".materials", row.MaterialsLow, row.MaterialsHigh)
		checkRange(path+".labor", row.LaborLow, row.LaborHigh)
		checkRange(path+".total", row.TotalLow, row.TotalHigh)

		if !sumEquals(row.MaterialsLow, row.LaborLow, row.TotalLow) {
			out = append(out, Violation{Path: path + ".totalLow", Message: fmt.Sprintf("expected %v, got %v", sum(row.MaterialsLow, row.LaborLow), row.TotalLow)})
		}
		if !sumEquals(row.MaterialsHigh, row.LaborHigh, row.TotalHigh) {
			out = append(out, Violation{Path: path + ".totalHigh", Message: fmt.Sprintf("expected %v, got %v", sum(row.MaterialsHigh, row.LaborHigh), row.TotalHigh)})
		}
	}

	labor := LaborSubtotal(r.Breakdown)
	if !decimal.NewFromFloat(labor.Low).Equal(decimal.NewFromFloat(r.LaborSubtotal.Low)) {
		out = append(out, Violation{Path: "laborSubtotal.low", Message: fmt.Sprintf("expected %v, got %v", labor.Low, r.LaborSubtotal.Low)})
	}
	if !decimal.NewFromFloat(labor.High).Equal(decimal.NewFromFloat(r.LaborSubtotal.High)) {
		out = append(out, Violation{Path: "laborSubtotal.high", Message: fmt.Sprintf("expected %v, got %v", labor.High, r.LaborSubtotal.High)})
	}

	return out
}

func sum(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

func sumEquals(a, b, total float64) bool {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Equal(decimal.NewFromFloat(total))
}

// FormatCurrency renders a whole-dollar amount as en-US currency, e.g. $27,500.
func FormatCurrency(v float64) string {
	n := decimal.NewFromFloat(v).Round(0).IntPart()
	p := message.NewPrinter(language.AmericanEnglish)
	if n < 0 {
		return p.Sprintf("-$%d", -n)
	}
	return p.Sprintf("$%d", n)
}

// FormatRange renders "low - high" as shown in the report.
func FormatRange(low, high float64) string {
	return FormatCurrency(low) + " - " + FormatCurrency(high)
}
