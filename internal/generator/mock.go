// Package generator produces design plans. The only implementation today is
// a mock that returns a fixed plan after a simulated delay.
package generator

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"palette-backend/internal/models"
)

// DefaultDelay matches the latency the client was designed around.
const DefaultDelay = 1500 * time.Millisecond

//go:embed fixture.yaml
var fixtureYAML []byte

// Generator turns a validated request into a design plan.
type Generator interface {
	Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerationResult, error)
}

type MockGenerator struct {
	delay  time.Duration
	result *models.GenerationResult
}

// NewMockGenerator loads the embedded fixture. A zero or negative delay
// returns immediately.
func NewMockGenerator(delay time.Duration) (*MockGenerator, error) {
	result, err := LoadFixture(fixtureYAML)
	if err != nil {
		return nil, err
	}
	return &MockGenerator{delay: delay, result: result}, nil
}

// LoadFixture parses a YAML design plan.
func LoadFixture(data []byte) (*models.GenerationResult, error) {
	var result models.GenerationResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	result.ApplyDefaults()
	return &result, nil
}

// Generate ignores the budget tier and returns a copy of the fixture.
func (g *MockGenerator) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerationResult, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return g.result.Clone(), nil
}

// Fixture returns a copy of the plan the mock serves.
func (g *MockGenerator) Fixture() *models.GenerationResult {
	return g.result.Clone()
}
