package generator_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"palette-backend/internal/estimate"
	"palette-backend/internal/generator"
	"palette-backend/internal/models"
)

func TestMockGenerator_FixtureSatisfiesInvariants(t *testing.T) {
	g, err := generator.NewMockGenerator(0)
	require.NoError(t, err)

	result := g.Fixture()
	assert.Empty(t, estimate.Check(result))
	assert.Len(t, result.Breakdown, 3)
	assert.Equal(t, "USD", result.EstimateRange.Currency)
	assert.Equal(t, models.CostRange{Low: 27500, High: 33000}, result.TotalEstimate)
	assert.Equal(t, "Cabinets / Built-ins", result.Breakdown[0].Category)
}

func TestMockGenerator_IgnoresTierAndIsIdempotent(t *testing.T) {
	g, err := generator.NewMockGenerator(0)
	require.NoError(t, err)

	var bodies []string
	for _, tier := range models.BudgetTiers {
		result, err := g.Generate(context.Background(), models.GenerateRequest{BudgetTier: tier})
		require.NoError(t, err)
		body, err := json.Marshal(result)
		require.NoError(t, err)
		bodies = append(bodies, string(body))
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[0], bodies[2])
}

func TestMockGenerator_ResultsAreIndependentCopies(t *testing.T) {
	g, err := generator.NewMockGenerator(0)
	require.NoError(t, err)

	first, err := g.Generate(context.Background(), models.GenerateRequest{BudgetTier: "mid"})
	require.NoError(t, err)
	first.WhatApplied[0] = "mutated"
	first.Breakdown[0].TotalLow = 0

	second, err := g.Generate(context.Background(), models.GenerateRequest{BudgetTier: "mid"})
	require.NoError(t, err)
	assert.Equal(t, "Warm, mid-tone wood materials", second.WhatApplied[0])
	assert.Equal(t, float64(12000), second.Breakdown[0].TotalLow)
}

func TestMockGenerator_Delay(t *testing.T) {
	g, err := generator.NewMockGenerator(30 * time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	_, err = g.Generate(context.Background(), models.GenerateRequest{BudgetTier: "budget"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMockGenerator_ContextCancelled(t *testing.T) {
	g, err := generator.NewMockGenerator(time.Minute)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = g.Generate(ctx, models.GenerateRequest{BudgetTier: "luxury"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFixture_DefaultsCurrency(t *testing.T) {
	result, err := generator.LoadFixture([]byte("estimateRange:\n  low: 1\n  high: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "USD", result.EstimateRange.Currency)
}

func TestLoadFixture_Invalid(t *testing.T) {
	_, err := generator.LoadFixture([]byte("breakdown: [unterminated"))
	assert.Error(t, err)
}
