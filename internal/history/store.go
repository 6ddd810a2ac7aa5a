// Package history records successful generations so signed-in users can
// list their past plans.
package history

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"palette-backend/internal/models"
)

// ErrNotConfigured is returned by List when no backing store is set up.
var ErrNotConfigured = errors.New("generation history is not configured")

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Store interface {
	Record(ctx context.Context, g *models.Generation) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]models.Generation, error)
}

// NopStore drops every record.
type NopStore struct{}

func (NopStore) Record(context.Context, *models.Generation) error { return nil }

func (NopStore) List(context.Context, uuid.UUID, int) ([]models.Generation, error) {
	return nil, ErrNotConfigured
}

// ClampLimit bounds a requested page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
