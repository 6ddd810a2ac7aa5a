package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"palette-backend/internal/models"

	_ "modernc.org/sqlite"
)

// Fixed width so text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore keeps history in a local file, for development without
// Postgres.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS generations (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			budget_tier TEXT NOT NULL,
			estimate_low REAL NOT NULL,
			estimate_high REAL NOT NULL,
			result TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_generations_user_created
			ON generations (user_id, created_at DESC);`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Record(ctx context.Context, g *models.Generation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations (id, user_id, budget_tier, estimate_low, estimate_high, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, g.ID.String(), g.UserID, g.BudgetTier, g.EstimateLow, g.EstimateHigh,
		string(g.Result), g.CreatedAt.UTC().Format(sqliteTimeLayout))
	if err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.Generation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, budget_tier, estimate_low, estimate_high, result, created_at
		FROM generations
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, userID.String(), ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	defer rows.Close()

	var generations []models.Generation
	for rows.Next() {
		var (
			g         models.Generation
			id        string
			result    string
			createdAt string
		)
		if err := rows.Scan(&id, &g.UserID, &g.BudgetTier, &g.EstimateLow, &g.EstimateHigh, &result, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		if g.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid generation id %q: %w", id, err)
		}
		if g.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
		}
		g.Result = []byte(result)
		generations = append(generations, g)
	}

	return generations, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
