package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"palette-backend/internal/generator"
	"palette-backend/internal/history"
	"palette-backend/internal/metrics"
	"palette-backend/internal/models"
)

const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

type GenerationService struct {
	generator generator.Generator
	history   history.Store
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewGenerationService wires a generator to history and metrics. A nil store
// records nothing; nil metrics are skipped.
func NewGenerationService(
	gen generator.Generator,
	store history.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *GenerationService {
	if store == nil {
		store = history.NopStore{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationService{
		generator: gen,
		history:   store,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate produces a plan for req. userID is empty for anonymous callers.
func (s *GenerationService) Generate(ctx context.Context, req models.GenerateRequest, userID string) (*models.GenerationResult, error) {
	start := s.now()
	result, err := s.generator.Generate(ctx, req)
	elapsed := s.now().Sub(start)

	if err != nil {
		outcome := OutcomeError
		if ctx.Err() != nil {
			outcome = OutcomeCanceled
		}
		s.observe(req.BudgetTier, outcome, elapsed)
		return nil, fmt.Errorf("generate: %w", err)
	}
	s.observe(req.BudgetTier, OutcomeSuccess, elapsed)

	s.logger.Info("design generated",
		"budget_tier", req.BudgetTier,
		"user_id", userID,
		"duration", elapsed,
	)

	if err := s.record(ctx, req.BudgetTier, userID, result); err != nil {
		s.logger.Warn("failed to record generation", "error", err)
	}
	return result, nil
}

// History lists a user's past generations.
func (s *GenerationService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.Generation, error) {
	return s.history.List(ctx, userID, history.ClampLimit(limit))
}

func (s *GenerationService) observe(tier, outcome string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveGeneration(tier, outcome, d)
	}
}

func (s *GenerationService) record(ctx context.Context, tier, userID string, result *models.GenerationResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	g := &models.Generation{
		ID:           uuid.New(),
		BudgetTier:   tier,
		EstimateLow:  result.TotalEstimate.Low,
		EstimateHigh: result.TotalEstimate.High,
		Result:       raw,
		CreatedAt:    s.now().UTC(),
	}
	if userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", userID, err)
		}
		g.UserID = uuid.NullUUID{UUID: id, Valid: true}
	}

	return s.history.Record(ctx, g)
}
