package usecase

import (
	"context"
	"errors"
	"testing"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestClicksByDayZeroFills ensures the 7-day series has exactly one entry
// per calendar day, ascending, with zeros for quiet days.
func TestClicksByDayZeroFills(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().ClicksPerDay(mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]int64{
			"2026-08-28": 5,
			"2026-09-01": 2,
		}, nil)

	series, err := newTestUseCase(repo).ClicksByDay(context.Background(), 7)
	if err != nil {
		t.Fatalf("ClicksByDay error: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[0].Date != "2026-08-26" || series[6].Date != "2026-09-01" {
		t.Fatalf("window = %s..%s, want 2026-08-26..2026-09-01", series[0].Date, series[6].Date)
	}
	for i := 1; i < len(series); i++ {
		if series[i].Date <= series[i-1].Date {
			t.Fatalf("dates not strictly ascending at %d: %s after %s", i, series[i].Date, series[i-1].Date)
		}
	}
	var total int64
	for _, d := range series {
		total += d.Clicks
	}
	if total != 7 {
		t.Fatalf("total clicks = %d, want 7", total)
	}
	if series[2].Clicks != 5 {
		t.Fatalf("2026-08-28 clicks = %d, want 5", series[2].Clicks)
	}
	if series[1].Clicks != 0 {
		t.Fatalf("quiet day clicks = %d, want 0", series[1].Clicks)
	}
}

// TestClicksByDayRejectsOtherWindows pins the 7-or-30 contract.
func TestClicksByDayRejectsOtherWindows(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	_, err := newTestUseCase(repo).ClicksByDay(context.Background(), 10)
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

// TestDashboardOccupancy ensures slot and feed tier occupancy are derived
// from live campaigns only: paused and date-expired campaigns free their
// slots.
func TestDashboardOccupancy(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)

	future := domain.NewDate(testNow.AddDate(0, 1, 0))
	past := domain.NewDate(testNow.AddDate(0, 0, -1))
	campaigns := []domain.Campaign{
		{ID: 1, Slot: domain.SlotNavbarCTA, Status: domain.StatusActive, EndDate: future},
		{ID: 2, Slot: domain.SlotJoinCTA, Status: domain.StatusActive, EndDate: past},
		{ID: 3, Slot: domain.SlotFilterCTA, Status: domain.StatusPaused, EndDate: future},
		{ID: 4, Slot: domain.SlotFeed, Status: domain.StatusActive, EndDate: future, FeedTier: 1, TierSlot: 2},
	}

	repo.EXPECT().ListAdvertisers(mock.Anything).Return([]domain.Advertiser{{ID: 7}}, nil)
	repo.EXPECT().ListCampaigns(mock.Anything).Return(campaigns, nil)
	repo.EXPECT().TotalClicks(mock.Anything).Return(120, nil)
	repo.EXPECT().ClicksSince(mock.Anything, mock.Anything).Return(10, nil)
	repo.EXPECT().SlotTotals(mock.Anything).Return([]port.SlotTotal{{Slot: domain.SlotFeed, TotalClicks: 80, CampaignCount: 1}}, nil)

	resp, err := newTestUseCase(repo).Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard error: %v", err)
	}

	remaining := make(map[domain.Slot]int)
	for _, s := range resp.Slots {
		remaining[s.Slot] = s.Remaining
	}
	if remaining[domain.SlotNavbarCTA] != 0 {
		t.Fatalf("navbar-cta remaining = %d, want 0 (occupied)", remaining[domain.SlotNavbarCTA])
	}
	if remaining[domain.SlotJoinCTA] != 1 {
		t.Fatalf("join-cta remaining = %d, want 1 (occupant date-expired)", remaining[domain.SlotJoinCTA])
	}
	if remaining[domain.SlotFilterCTA] != 1 {
		t.Fatalf("filter-cta remaining = %d, want 1 (occupant paused)", remaining[domain.SlotFilterCTA])
	}

	if len(resp.FeedTierCapacity) != domain.FeedTierCount {
		t.Fatalf("feed tiers = %d, want %d", len(resp.FeedTierCapacity), domain.FeedTierCount)
	}
	tier1 := resp.FeedTierCapacity[0]
	if tier1.Tier != 1 || tier1.Active != 1 || tier1.Remaining != 3 {
		t.Fatalf("tier 1 = %+v, want active 1 remaining 3", tier1)
	}

	if resp.GlobalStats.TotalClicks != 120 || resp.GlobalStats.Last7Days != 10 || resp.GlobalStats.Last30Days != 10 {
		t.Fatalf("globalStats = %+v", resp.GlobalStats)
	}
}
