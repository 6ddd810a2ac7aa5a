package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"palette-backend/internal/history"
	"palette-backend/internal/models"
)

const generationsTable = "generations"

// RESTHistory stores generations through the Supabase REST API, for
// deployments that only hold the publishable key.
type RESTHistory struct {
	client *Client
}

func NewRESTHistory(client *Client) *RESTHistory {
	return &RESTHistory{client: client}
}

type generationRow struct {
	ID           string          `json:"id"`
	UserID       *string         `json:"user_id"`
	BudgetTier   string          `json:"budget_tier"`
	EstimateLow  float64         `json:"estimate_low"`
	EstimateHigh float64         `json:"estimate_high"`
	Result       json.RawMessage `json:"result"`
	CreatedAt    time.Time       `json:"created_at"`
}

// postgrest-go has no context support; ctx is only checked before the call.
func (r *RESTHistory) Record(ctx context.Context, g *models.Generation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := generationRow{
		ID:           g.ID.String(),
		BudgetTier:   g.BudgetTier,
		EstimateLow:  g.EstimateLow,
		EstimateHigh: g.EstimateHigh,
		Result:       g.Result,
		CreatedAt:    g.CreatedAt.UTC(),
	}
	if g.UserID.Valid {
		s := g.UserID.UUID.String()
		row.UserID = &s
	}

	_, _, err := r.client.Supabase.From(generationsTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

func (r *RESTHistory) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []generationRow
	_, err := r.client.Supabase.From(generationsTable).
		Select("id,user_id,budget_tier,estimate_low,estimate_high,result,created_at", "", false).
		Eq("user_id", userID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(history.ClampLimit(limit), "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	generations := make([]models.Generation, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid generation id %q: %w", row.ID, err)
		}
		g := models.Generation{
			ID:           id,
			BudgetTier:   row.BudgetTier,
			EstimateLow:  row.EstimateLow,
			EstimateHigh: row.EstimateHigh,
			Result:       row.Result,
			CreatedAt:    row.CreatedAt,
		}
		if row.UserID != nil {
			if uid, err := uuid.Parse(*row.UserID); err == nil {
				g.UserID = uuid.NullUUID{UUID: uid, Valid: true}
			}
		}
		generations = append(generations, g)
	}
	return generations, nil
}
