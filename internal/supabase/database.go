package supabase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"palette-backend/internal/history"
	"palette-backend/internal/models"
)

// DatabaseClient talks to the Supabase Postgres instance directly.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) Record(ctx context.Context, g *models.Generation) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO generations (id, user_id, budget_tier, estimate_low, estimate_high, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, g.ID, g.UserID, g.BudgetTier, g.EstimateLow, g.EstimateHigh, []byte(g.Result), g.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

func (d *DatabaseClient) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.Generation, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, user_id, budget_tier, estimate_low, estimate_high, result, created_at
		FROM generations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, history.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var generations []models.Generation
	for rows.Next() {
		var g models.Generation
		err := rows.Scan(
			&g.ID, &g.UserID, &g.BudgetTier,
			&g.EstimateLow, &g.EstimateHigh, &g.Result, &g.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		generations = append(generations, g)
	}

	return generations, rows.Err()
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
