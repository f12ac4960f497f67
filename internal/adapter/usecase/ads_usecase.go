package usecase

import (
	"fmt"
	"time"

	"erogram-ads/internal/core/port"
)

// AdsUseCase provides the business logic for the advertising back-office:
// field validation, slot capacity allocation, campaign lifecycle and the
// analytics rollups. It orchestrates the repository to implement the
// AdsUseCase port.
type AdsUseCase struct {
	repo port.AdsRepository

	// now is the clock used for liveness and window calculations. Tests
	// replace it with a fixed time.
	now func() time.Time
}

// NewAdsUseCase creates a new usecase with the provided repository.
func NewAdsUseCase(repo port.AdsRepository) *AdsUseCase {
	return &AdsUseCase{repo: repo, now: time.Now}
}

// invalid wraps a message into port.ErrValidation so handlers can map it to
// a client error while keeping the full text.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", port.ErrValidation, fmt.Sprintf(format, args...))
}
