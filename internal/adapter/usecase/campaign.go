package usecase

import (
	"context"
	"fmt"
	"strings"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// CreateCampaign validates the payload, checks slot capacity and persists
// the campaign. The repository repeats the capacity check inside its write
// transaction, so passing validation here does not guarantee the slot when
// two admins race; the loser receives the same capacity error.
func (u *AdsUseCase) CreateCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	c, err := u.buildCampaign(ctx, in)
	if err != nil {
		return nil, err
	}
	if err = u.validateAssignment(ctx, c); err != nil {
		return nil, err
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaign applies the create validation to an existing campaign. The
// capacity check excludes the campaign's own occupancy so editing the
// current holder of a full slot succeeds.
func (u *AdsUseCase) UpdateCampaign(ctx context.Context, id int64, in port.CampaignInput) (*domain.Campaign, error) {
	existing, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrNotFound, id)
	}
	c, err := u.buildCampaign(ctx, in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	c.Impressions = existing.Impressions
	c.Clicks = existing.Clicks
	c.CreatedAt = existing.CreatedAt
	if err = u.validateAssignment(ctx, c); err != nil {
		return nil, err
	}
	if err = u.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCampaign removes the campaign and its click events.
func (u *AdsUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	return u.repo.DeleteCampaign(ctx, id)
}

// ToggleCampaign flips a campaign between active and paused. Ended
// campaigns, stored or date-expired, are refused; reviving one requires an
// explicit edit that resets its end date or status.
func (u *AdsUseCase) ToggleCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign %d", port.ErrNotFound, id)
	}
	if c.IsEnded(u.now()) {
		return nil, invalid("campaign %d has ended", id)
	}
	if c.Status == domain.StatusActive {
		c.Status = domain.StatusPaused
	} else {
		c.Status = domain.StatusActive
	}
	if err = u.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// buildCampaign turns a write payload into a validated domain campaign.
// Creatives are force-cleared for text-only slots; tier and position are
// cleared for non-feed slots. The legacy position field passes through
// unvalidated.
func (u *AdsUseCase) buildCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	if in.AdvertiserID == 0 {
		return nil, invalid("advertiserId is required")
	}
	adv, err := u.repo.GetAdvertiser(ctx, in.AdvertiserID)
	if err != nil {
		return nil, err
	}
	if adv == nil {
		return nil, invalid("unknown advertiser %d", in.AdvertiserID)
	}

	slot, ok := domain.ParseSlot(in.Slot)
	if !ok {
		return nil, invalid("unknown slot %q", in.Slot)
	}

	dest := strings.TrimSpace(in.DestinationURL)
	if !strings.HasPrefix(dest, "http://") && !strings.HasPrefix(dest, "https://") {
		return nil, invalid("destinationUrl must start with http:// or https://")
	}

	if strings.TrimSpace(in.StartDate) == "" || strings.TrimSpace(in.EndDate) == "" {
		return nil, invalid("startDate and endDate are required")
	}
	start, err := domain.ParseDate(in.StartDate)
	if err != nil {
		return nil, invalid("startDate: %v", err)
	}
	end, err := domain.ParseDate(in.EndDate)
	if err != nil {
		return nil, invalid("endDate: %v", err)
	}
	if end.Time.Before(start.Time) {
		return nil, invalid("endDate must not be before startDate")
	}

	status, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, invalid("unknown status %q", in.Status)
	}
	visible := true
	if in.IsVisible != nil {
		visible = *in.IsVisible
	}

	c := &domain.Campaign{
		AdvertiserID:   in.AdvertiserID,
		Name:           name,
		Slot:           slot,
		Creative:       strings.TrimSpace(in.Creative),
		DestinationURL: dest,
		StartDate:      start,
		EndDate:        end,
		Status:         status,
		IsVisible:      visible,
		Position:       in.Position,
		FeedTier:       in.FeedTier,
		TierSlot:       in.TierSlot,
		Description:    strings.TrimSpace(in.Description),
		Category:       strings.TrimSpace(in.Category),
		Country:        strings.TrimSpace(in.Country),
		ButtonText:     strings.TrimSpace(in.ButtonText),
	}

	if slot.TextOnly() {
		c.Creative = ""
		if c.Label() == "" {
			return nil, invalid("text slot %s requires a buttonText or description label", slot)
		}
	} else if c.Creative == "" {
		return nil, invalid("slot %s requires a creative", slot)
	}

	if slot == domain.SlotFeed {
		if c.FeedTier == 0 || c.TierSlot == 0 {
			return nil, port.ErrMissingTierOrPosition
		}
		if !domain.ValidFeedPlacement(c.FeedTier, c.TierSlot) {
			return nil, invalid("feed placement out of range: tier %d position %d", c.FeedTier, c.TierSlot)
		}
	} else {
		c.FeedTier = 0
		c.TierSlot = 0
	}
	return c, nil
}

// validateAssignment is the optimistic half of the capacity allocation: it
// re-queries current occupancy and rejects assignments that would exceed the
// slot. Occupancy counts only live campaigns and always excludes the
// campaign being edited.
func (u *AdsUseCase) validateAssignment(ctx context.Context, c *domain.Campaign) error {
	now := u.now()
	if c.Slot == domain.SlotFeed {
		taken, err := u.repo.FeedPositionTaken(ctx, c.FeedTier, c.TierSlot, c.ID, now)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: tier %d position %d", port.ErrPositionTaken, c.FeedTier, c.TierSlot)
		}
		return nil
	}
	count, err := u.repo.CountLiveInSlot(ctx, c.Slot, c.ID, now)
	if err != nil {
		return err
	}
	if count >= c.Slot.MaxCapacity() {
		return fmt.Errorf("%w: %s", port.ErrSlotFull, c.Slot)
	}
	return nil
}
