package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Generation is a persisted record of one successful generate call.
type Generation struct {
	ID           uuid.UUID
	UserID       uuid.NullUUID
	BudgetTier   string
	EstimateLow  float64
	EstimateHigh float64
	Result       json.RawMessage
	CreatedAt    time.Time
}

func (g Generation) Summary() GenerationSummary {
	return GenerationSummary{
		ID:           g.ID.String(),
		BudgetTier:   g.BudgetTier,
		EstimateLow:  g.EstimateLow,
		EstimateHigh: g.EstimateHigh,
		CreatedAt:    g.CreatedAt,
	}
}
