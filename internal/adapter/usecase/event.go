package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// RegisterClick records a click event for a campaign and returns its
// destination URL for redirection. The event append and the counter bump
// happen in one repository transaction.
func (u *AdsUseCase) RegisterClick(ctx context.Context, campaignID int64) (string, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", fmt.Errorf("%w: campaign %d", port.ErrNotFound, campaignID)
	}
	click := &domain.ClickEvent{
		Token:      uuid.NewString(),
		CampaignID: c.ID,
		Slot:       c.Slot,
	}
	if err = u.repo.RecordClick(ctx, click); err != nil {
		return "", err
	}
	return c.DestinationURL, nil
}

// RegisterView increments a campaign's impression counter.
func (u *AdsUseCase) RegisterView(ctx context.Context, campaignID int64) error {
	return u.repo.RecordImpression(ctx, campaignID)
}
