package models

import "time"

const DefaultCurrency = "USD"

// GenerationResult is the design plan and cost estimate returned by
// POST /api/generate. Field order is the wire order.
type GenerationResult struct {
	AfterImageURL string          `json:"afterImageUrl" yaml:"afterImageUrl"`
	WhatApplied   []string        `json:"whatApplied" yaml:"whatApplied" binding:"required"`
	EstimateRange EstimateRange   `json:"estimateRange" yaml:"estimateRange"`
	Breakdown     []BreakdownItem `json:"breakdown" yaml:"breakdown" binding:"required,dive"`
	LaborSubtotal CostRange       `json:"laborSubtotal" yaml:"laborSubtotal"`
	TotalEstimate CostRange       `json:"totalEstimate" yaml:"totalEstimate"`
	UpgradeTips   []string        `json:"upgradeTips" yaml:"upgradeTips" binding:"required"`
	SavingsTips   []string        `json:"savingsTips" yaml:"savingsTips" binding:"required"`
}

type EstimateRange struct {
	Low      float64 `json:"low" yaml:"low"`
	High     float64 `json:"high" yaml:"high"`
	Currency string  `json:"currency" yaml:"currency" default:"USD"`
}

type CostRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// BreakdownItem is one row of the cost table.
type BreakdownItem struct {
	Category      string  `json:"category" yaml:"category"`
	MaterialsLow  float64 `json:"materialsLow" yaml:"materialsLow"`
	MaterialsHigh float64 `json:"materialsHigh" yaml:"materialsHigh"`
	LaborLow      float64 `json:"laborLow" yaml:"laborLow"`
	LaborHigh     float64 `json:"laborHigh" yaml:"laborHigh"`
	TotalLow      float64 `json:"totalLow" yaml:"totalLow"`
	TotalHigh     float64 `json:"totalHigh" yaml:"totalHigh"`
}

// ApplyDefaults fills optional fields the way the schema defaults them.
func (r *GenerationResult) ApplyDefaults() {
	if r.EstimateRange.Currency == "" {
		r.EstimateRange.Currency = DefaultCurrency
	}
}

// Clone returns a deep copy so callers never share slices with a template.
func (r *GenerationResult) Clone() *GenerationResult {
	out := *r
	out.WhatApplied = cloneStrings(r.WhatApplied)
	out.UpgradeTips = cloneStrings(r.UpgradeTips)
	out.SavingsTips = cloneStrings(r.SavingsTips)
	if r.Breakdown != nil {
		out.Breakdown = make([]BreakdownItem, len(r.Breakdown))
		copy(out.Breakdown, r.Breakdown)
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

type UploadResponse struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type GenerationSummary struct {
	ID           string    `json:"id"`
	BudgetTier   string    `json:"budgetTier"`
	EstimateLow  float64   `json:"estimateLow"`
	EstimateHigh float64   `json:"estimateHigh"`
	CreatedAt    time.Time `json:"createdAt"`
}

type GenerationListResponse struct {
	Generations []GenerationSummary `json:"generations"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
