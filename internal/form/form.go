// Package form holds the client-side state of one design request: the two
// room photos, the budget tier and the outcome of the last submission.
package form

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"palette-backend/internal/models"
)

var (
	ErrMissingImages = errors.New("Please upload both your current space and an inspiration photo.")
	ErrBusy          = errors.New("a generation is already in progress")
	ErrNotImage      = errors.New("only image files can be uploaded")
	ErrInvalidTier   = errors.New("unknown budget tier")
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusUploading  Status = "uploading"
	StatusReady      Status = "ready"
	StatusGenerating Status = "generating"
	StatusSuccess    Status = "success"
)

type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Generator submits a budget tier and returns the resulting plan.
type Generator interface {
	Generate(ctx context.Context, budgetTier string) (*models.GenerationResult, error)
}

// Snapshot is a point-in-time copy of the form for rendering.
type Snapshot struct {
	Status         Status
	HasSpace       bool
	HasInspiration bool
	BudgetTier     string
	CanGenerate    bool
	Result         *models.GenerationResult
	// Error is the message of the last failed submission.
	Error string
}

type Form struct {
	mu          sync.Mutex
	space       *Image
	inspiration *Image
	tier        string
	generating  bool
	result      *models.GenerationResult
	lastErr     string
}

func New() *Form {
	return &Form{tier: models.BudgetTierMid}
}

// SetSpace stores the photo of the current room. A nil image clears it.
func (f *Form) SetSpace(img *Image) error {
	return f.setImage(&f.space, img)
}

// SetInspiration stores the inspiration photo. A nil image clears it.
func (f *Form) SetInspiration(img *Image) error {
	return f.setImage(&f.inspiration, img)
}

func (f *Form) setImage(slot **Image, img *Image) error {
	if img != nil && !strings.HasPrefix(img.ContentType, "image/") {
		return fmt.Errorf("%w: %s", ErrNotImage, img.ContentType)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generating {
		return ErrBusy
	}
	*slot = img
	return nil
}

func (f *Form) SetBudgetTier(tier string) error {
	if !slices.Contains(models.BudgetTiers, tier) {
		return fmt.Errorf("%w: %q", ErrInvalidTier, tier)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generating {
		return ErrBusy
	}
	f.tier = tier
	return nil
}

func (f *Form) CanGenerate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canGenerate()
}

func (f *Form) canGenerate() bool {
	return f.space != nil && f.inspiration != nil && !f.generating
}

// Submit sends the form through gen. Only one submission may be in flight;
// a failure keeps the photos so the user can retry.
func (f *Form) Submit(ctx context.Context, gen Generator) (*models.GenerationResult, error) {
	f.mu.Lock()
	if f.generating {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	if f.space == nil || f.inspiration == nil {
		f.mu.Unlock()
		return nil, ErrMissingImages
	}
	f.generating = true
	f.lastErr = ""
	tier := f.tier
	f.mu.Unlock()

	result, err := gen.Generate(ctx, tier)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.generating = false
	if err != nil {
		f.lastErr = err.Error()
		return nil, err
	}
	f.result = result
	return result, nil
}

// Reset clears photos, tier and result.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.space = nil
	f.inspiration = nil
	f.tier = models.BudgetTierMid
	f.result = nil
	f.lastErr = ""
}

func (f *Form) Images() (space, inspiration *Image) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.space, f.inspiration
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Status:         f.status(),
		HasSpace:       f.space != nil,
		HasInspiration: f.inspiration != nil,
		BudgetTier:     f.tier,
		CanGenerate:    f.canGenerate(),
		Result:         f.result,
		Error:          f.lastErr,
	}
}

func (f *Form) status() Status {
	switch {
	case f.generating:
		return StatusGenerating
	case f.result != nil:
		return StatusSuccess
	case f.space != nil && f.inspiration != nil:
		return StatusReady
	case f.space != nil || f.inspiration != nil:
		return StatusUploading
	default:
		return StatusIdle
	}
}
