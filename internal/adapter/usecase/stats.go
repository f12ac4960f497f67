package usecase

import (
	"context"
	"time"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// Dashboard assembles the full admin dashboard payload. Slot and feed tier
// occupancy are derived in memory from the campaign list so the numbers are
// consistent with the campaigns shown next to them.
func (u *AdsUseCase) Dashboard(ctx context.Context) (*port.DashboardResp, error) {
	advertisers, err := u.repo.ListAdvertisers(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := u.globalStats(ctx)
	if err != nil {
		return nil, err
	}
	slotTotals, err := u.repo.SlotTotals(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	return &port.DashboardResp{
		Advertisers:      advertisers,
		Campaigns:        campaigns,
		Slots:            slotCapacities(campaigns, now),
		FeedTierCapacity: feedTierCapacity(campaigns, now),
		GlobalStats:      *stats,
		SlotTotals:       slotTotals,
	}, nil
}

// ClicksByDay returns the trailing click series for 7 or 30 days, one entry
// per calendar day including today, zero-filled and ascending.
func (u *AdsUseCase) ClicksByDay(ctx context.Context, days int) ([]port.DayClicks, error) {
	if days != 7 && days != 30 {
		return nil, invalid("days must be 7 or 30")
	}
	now := u.now()
	from := domain.NewDate(now.AddDate(0, 0, -(days - 1)))
	counts, err := u.repo.ClicksPerDay(ctx, from.Time, now)
	if err != nil {
		return nil, err
	}
	series := make([]port.DayClicks, 0, days)
	for i := 0; i < days; i++ {
		day := domain.NewDate(from.AddDate(0, 0, i))
		series = append(series, port.DayClicks{Date: day.String(), Clicks: counts[day.String()]})
	}
	return series, nil
}

func (u *AdsUseCase) globalStats(ctx context.Context) (*port.GlobalStats, error) {
	total, err := u.repo.TotalClicks(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	last7, err := u.repo.ClicksSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	last30, err := u.repo.ClicksSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	return &port.GlobalStats{TotalClicks: total, Last7Days: last7, Last30Days: last30}, nil
}

// slotCapacities counts live campaigns per slot. Remaining never goes
// negative even if the store holds an over-allocation from before the
// transactional capacity check existed.
func slotCapacities(campaigns []domain.Campaign, now time.Time) []port.SlotCapacity {
	live := make(map[domain.Slot]int)
	for i := range campaigns {
		if campaigns[i].IsLive(now) {
			live[campaigns[i].Slot]++
		}
	}
	out := make([]port.SlotCapacity, 0, len(domain.AllSlots()))
	for _, s := range domain.AllSlots() {
		max := s.MaxCapacity()
		remaining := max - live[s]
		if remaining < 0 {
			remaining = 0
		}
		out = append(out, port.SlotCapacity{
			Slot:      s,
			Label:     s.Label(),
			TextOnly:  s.TextOnly(),
			Max:       max,
			Active:    live[s],
			Remaining: remaining,
		})
	}
	return out
}

func feedTierCapacity(campaigns []domain.Campaign, now time.Time) []port.TierCapacity {
	live := make(map[int]int)
	for i := range campaigns {
		c := &campaigns[i]
		if c.Slot == domain.SlotFeed && c.IsLive(now) {
			live[c.FeedTier]++
		}
	}
	tiers := domain.FeedTiers()
	out := make([]port.TierCapacity, 0, len(tiers))
	for _, t := range tiers {
		remaining := domain.FeedTierCapacity - live[t.Tier]
		if remaining < 0 {
			remaining = 0
		}
		out = append(out, port.TierCapacity{
			Tier:      t.Tier,
			Label:     t.Label,
			Max:       domain.FeedTierCapacity,
			Active:    live[t.Tier],
			Remaining: remaining,
		})
	}
	return out
}
