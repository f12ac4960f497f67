package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
	"erogram-ads/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo port.AdsRepository) *AdsUseCase {
	u := NewAdsUseCase(repo)
	u.now = func() time.Time { return testNow }
	return u
}

func ctaInput() port.CampaignInput {
	return port.CampaignInput{
		AdvertiserID:   7,
		Name:           "Navbar promo",
		Slot:           "navbar-cta",
		DestinationURL: "https://example.com/landing",
		StartDate:      "2026-08-01",
		EndDate:        "2026-09-30",
		ButtonText:     "Meet your AI",
	}
}

// TestCreateTextSlotForceClearsCreative ensures a creative sent for a
// text-only slot is dropped before persistence, and that status and
// visibility default to active/true.
func TestCreateTextSlotForceClearsCreative(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().GetAdvertiser(mock.Anything, int64(7)).Return(&domain.Advertiser{ID: 7}, nil)
	repo.EXPECT().CountLiveInSlot(mock.Anything, domain.SlotNavbarCTA, int64(0), testNow).Return(0, nil)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) { c.ID = 1 }).
		Return(nil)

	in := ctaInput()
	in.Creative = "https://example.com/sneaky.png"

	c, err := newTestUseCase(repo).CreateCampaign(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if c.Creative != "" {
		t.Fatalf("creative = %q, want force-cleared for text slot", c.Creative)
	}
	if c.Status != domain.StatusActive {
		t.Fatalf("status = %q, want default active", c.Status)
	}
	if !c.IsVisible {
		t.Fatal("isVisible must default to true")
	}
}

// TestCreateSlotFull ensures a full singleton slot rejects a second
// campaign.
func TestCreateSlotFull(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().GetAdvertiser(mock.Anything, int64(7)).Return(&domain.Advertiser{ID: 7}, nil)
	repo.EXPECT().CountLiveInSlot(mock.Anything, domain.SlotNavbarCTA, int64(0), testNow).Return(1, nil)

	_, err := newTestUseCase(repo).CreateCampaign(context.Background(), ctaInput())
	if !errors.Is(err, port.ErrSlotFull) {
		t.Fatalf("err = %v, want ErrSlotFull", err)
	}
}

// TestCreateFeedPositionTaken ensures a duplicate (tier, position) pair is
// rejected.
func TestCreateFeedPositionTaken(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().GetAdvertiser(mock.Anything, int64(7)).Return(&domain.Advertiser{ID: 7}, nil)
	repo.EXPECT().FeedPositionTaken(mock.Anything, 2, 3, int64(0), testNow).Return(true, nil)

	in := ctaInput()
	in.Slot = "feed"
	in.Creative = "https://example.com/feed.png"
	in.FeedTier = 2
	in.TierSlot = 3

	_, err := newTestUseCase(repo).CreateCampaign(context.Background(), in)
	if !errors.Is(err, port.ErrPositionTaken) {
		t.Fatalf("err = %v, want ErrPositionTaken", err)
	}
}

// TestCreateValidation walks the field-level validation rules.
func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*port.CampaignInput)
		wantErr error
	}{
		{"missing name", func(in *port.CampaignInput) { in.Name = "  " }, port.ErrValidation},
		{"missing advertiser", func(in *port.CampaignInput) { in.AdvertiserID = 0 }, port.ErrValidation},
		{"unknown slot", func(in *port.CampaignInput) { in.Slot = "sidebar" }, port.ErrValidation},
		{"bad destination", func(in *port.CampaignInput) { in.DestinationURL = "ftp://example.com" }, port.ErrValidation},
		{"missing dates", func(in *port.CampaignInput) { in.EndDate = "" }, port.ErrValidation},
		{"end before start", func(in *port.CampaignInput) { in.EndDate = "2026-07-01" }, port.ErrValidation},
		{"unknown status", func(in *port.CampaignInput) { in.Status = "archived" }, port.ErrValidation},
		{"text slot without label", func(in *port.CampaignInput) { in.ButtonText = ""; in.Description = "" }, port.ErrValidation},
		{"image slot without creative", func(in *port.CampaignInput) { in.Slot = "top-banner"; in.Creative = "" }, port.ErrValidation},
		{"feed without tier", func(in *port.CampaignInput) {
			in.Slot = "feed"
			in.Creative = "https://example.com/feed.png"
			in.TierSlot = 2
		}, port.ErrMissingTierOrPosition},
		{"feed tier out of range", func(in *port.CampaignInput) {
			in.Slot = "feed"
			in.Creative = "https://example.com/feed.png"
			in.FeedTier = 4
			in.TierSlot = 1
		}, port.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockAdsRepository(t)
			repo.EXPECT().GetAdvertiser(mock.Anything, int64(7)).Return(&domain.Advertiser{ID: 7}, nil).Maybe()

			in := ctaInput()
			tc.mutate(&in)

			_, err := newTestUseCase(repo).CreateCampaign(context.Background(), in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

// TestUpdateExcludesSelf ensures editing the current occupant of a full
// slot passes the capacity check and keeps its counters.
func TestUpdateExcludesSelf(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	existing := &domain.Campaign{
		ID:           3,
		AdvertiserID: 7,
		Slot:         domain.SlotNavbarCTA,
		Impressions:  200,
		Clicks:       42,
	}
	repo.EXPECT().GetCampaign(mock.Anything, int64(3)).Return(existing, nil)
	repo.EXPECT().GetAdvertiser(mock.Anything, int64(7)).Return(&domain.Advertiser{ID: 7}, nil)
	repo.EXPECT().CountLiveInSlot(mock.Anything, domain.SlotNavbarCTA, int64(3), testNow).Return(0, nil)
	repo.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	in := ctaInput()
	in.ButtonText = "New label"

	c, err := newTestUseCase(repo).UpdateCampaign(context.Background(), 3, in)
	if err != nil {
		t.Fatalf("UpdateCampaign error: %v", err)
	}
	if c.ID != 3 || c.Clicks != 42 || c.Impressions != 200 {
		t.Fatalf("update must keep id and counters, got id=%d clicks=%d impressions=%d", c.ID, c.Clicks, c.Impressions)
	}
	if c.ButtonText != "New label" {
		t.Fatalf("buttonText = %q, want updated label", c.ButtonText)
	}
}

// TestUpdateNotFound ensures editing a missing campaign fails cleanly.
func TestUpdateNotFound(t *testing.T) {
	repo := mocks.NewMockAdsRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, int64(99)).Return(nil, nil)

	_, err := newTestUseCase(repo).UpdateCampaign(context.Background(), 99, ctaInput())
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// TestToggleCampaign checks the active/paused flip and that ended
// campaigns, stored or date-expired, refuse to toggle.
func TestToggleCampaign(t *testing.T) {
	t.Run("active to paused", func(t *testing.T) {
		repo := mocks.NewMockAdsRepository(t)
		c := &domain.Campaign{ID: 1, Status: domain.StatusActive, EndDate: domain.NewDate(testNow.AddDate(0, 1, 0))}
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(c, nil)
		repo.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

		got, err := newTestUseCase(repo).ToggleCampaign(context.Background(), 1)
		if err != nil {
			t.Fatalf("ToggleCampaign error: %v", err)
		}
		if got.Status != domain.StatusPaused {
			t.Fatalf("status = %q, want paused", got.Status)
		}
	})

	t.Run("paused to active", func(t *testing.T) {
		repo := mocks.NewMockAdsRepository(t)
		c := &domain.Campaign{ID: 1, Status: domain.StatusPaused, EndDate: domain.NewDate(testNow.AddDate(0, 1, 0))}
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(c, nil)
		repo.EXPECT().UpdateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

		got, err := newTestUseCase(repo).ToggleCampaign(context.Background(), 1)
		if err != nil {
			t.Fatalf("ToggleCampaign error: %v", err)
		}
		if got.Status != domain.StatusActive {
			t.Fatalf("status = %q, want active", got.Status)
		}
	})

	t.Run("date-expired refuses toggle", func(t *testing.T) {
		repo := mocks.NewMockAdsRepository(t)
		c := &domain.Campaign{ID: 1, Status: domain.StatusActive, EndDate: domain.NewDate(testNow.AddDate(0, 0, -1))}
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(c, nil)

		_, err := newTestUseCase(repo).ToggleCampaign(context.Background(), 1)
		if !errors.Is(err, port.ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation for ended campaign", err)
		}
	})
}
