package report

import (
	"context"
	"fmt"
	"image"

	"palette-backend/internal/estimate"
	"palette-backend/internal/models"
)

// Section is one marked block of the report. Each section becomes one PDF
// page.
type Section interface {
	Name() string
	Rasterize(ctx context.Context) (image.Image, error)
}

// Sections builds the standard report: summary, cost breakdown and tips.
func Sections(r *models.GenerationResult) []Section {
	return []Section{
		summarySection(r),
		breakdownSection(r),
		tipsSection(r),
	}
}

func summarySection(r *models.GenerationResult) TextSection {
	lines := []Line{
		{Text: "Your Design Plan", Style: Heading},
		{Text: "Transformed design: " + r.AfterImageURL},
		{Style: Rule},
		{Text: "What We Applied", Style: Heading},
	}
	for _, item := range r.WhatApplied {
		lines = append(lines, Line{Text: item, Style: Bullet})
	}
	lines = append(lines,
		Line{Style: Rule},
		Line{Text: "Estimated Project Cost", Style: Heading},
		Line{Text: estimate.FormatRange(r.TotalEstimate.Low, r.TotalEstimate.High)},
		Line{Text: "Includes materials and estimated labor costs for your area."},
	)
	return TextSection{Title: "summary", Lines: lines}
}

const tableRow = "%-24s %21s %21s %21s"

func breakdownSection(r *models.GenerationResult) TextSection {
	lines := []Line{
		{Text: "Detailed Cost Breakdown", Style: Heading},
		{Text: "Estimates based on current market rates"},
		{Style: Rule},
		{Text: fmt.Sprintf(tableRow, "Category", "Materials", "Labor", "Total Range")},
		{Style: Rule},
	}
	for _, row := range r.Breakdown {
		lines = append(lines, Line{Text: fmt.Sprintf(tableRow,
			truncate(row.Category, 24),
			estimate.FormatRange(row.MaterialsLow, row.MaterialsHigh),
			estimate.FormatRange(row.LaborLow, row.LaborHigh),
			estimate.FormatRange(row.TotalLow, row.TotalHigh),
		)})
	}
	lines = append(lines,
		Line{Style: Rule},
		Line{Text: fmt.Sprintf(tableRow, "Totals", "",
			estimate.FormatRange(r.LaborSubtotal.Low, r.LaborSubtotal.High),
			estimate.FormatRange(r.TotalEstimate.Low, r.TotalEstimate.High),
		)},
	)
	return TextSection{Title: "breakdown", Lines: lines}
}

func tipsSection(r *models.GenerationResult) TextSection {
	lines := []Line{{Text: "Where to Splurge", Style: Heading}}
	for _, tip := range r.UpgradeTips {
		lines = append(lines, Line{Text: tip, Style: Bullet})
	}
	lines = append(lines, Line{Style: Rule}, Line{Text: "Smart Savings", Style: Heading})
	for _, tip := range r.SavingsTips {
		lines = append(lines, Line{Text: tip, Style: Bullet})
	}
	return TextSection{Title: "tips", Lines: lines}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}
