package port

import (
	"context"

	"erogram-ads/internal/core/domain"
)

// AdsUseCase defines the business operations behind the admin back-office
// and the public click/view write path. This interface is the primary port
// into the application domain. Mock implementations can be generated from it
// for testing.
type AdsUseCase interface {
	// Dashboard assembles everything the admin dashboard renders in one
	// call: advertisers, campaigns, slot occupancy, feed tier capacity and
	// the analytics rollups.
	Dashboard(ctx context.Context) (*DashboardResp, error)

	CreateAdvertiser(ctx context.Context, in AdvertiserInput) (*domain.Advertiser, error)
	UpdateAdvertiser(ctx context.Context, id int64, in AdvertiserInput) (*domain.Advertiser, error)
	// DeleteAdvertiser cascade-deletes all campaigns of the advertiser.
	DeleteAdvertiser(ctx context.Context, id int64) error

	CreateCampaign(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, in CampaignInput) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
	// ToggleCampaign flips active and paused. Ended campaigns (stored or
	// date-expired) are refused; only an explicit edit revives them.
	ToggleCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// RegisterClick records a click on a campaign and returns its
	// destination URL for redirection.
	RegisterClick(ctx context.Context, campaignID int64) (string, error)
	// RegisterView increments a campaign's impression counter.
	RegisterView(ctx context.Context, campaignID int64) error

	// ClicksByDay returns one entry per calendar day for the trailing
	// window (7 or 30 days including today), zero-filled, ascending.
	ClicksByDay(ctx context.Context, days int) ([]DayClicks, error)
}

// AdvertiserInput is the write payload for advertiser create and update.
type AdvertiserInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Logo    string `json:"logo"`
	Notes   string `json:"notes"`
	Status  string `json:"status"`
}

// CampaignInput is the write payload for campaign create and update. Field
// names are the wire contract; dates are ISO-8601 date strings. IsVisible
// defaults to true when omitted.
type CampaignInput struct {
	AdvertiserID   int64  `json:"advertiserId"`
	Name           string `json:"name"`
	Slot           string `json:"slot"`
	Creative       string `json:"creative"`
	DestinationURL string `json:"destinationUrl"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Status         string `json:"status"`
	IsVisible      *bool  `json:"isVisible"`
	Position       int    `json:"position"`
	FeedTier       int    `json:"feedTier"`
	TierSlot       int    `json:"tierSlot"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Country        string `json:"country"`
	ButtonText     string `json:"buttonText"`
}

// DayClicks is one day of the clicks-by-day series.
type DayClicks struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

// GlobalStats carries the dashboard click totals.
type GlobalStats struct {
	TotalClicks int64 `json:"totalClicks"`
	Last7Days   int64 `json:"last7Days"`
	Last30Days  int64 `json:"last30Days"`
}

// SlotCapacity reports current occupancy of one slot for the dashboard.
type SlotCapacity struct {
	Slot      domain.Slot `json:"slot"`
	Label     string      `json:"label"`
	TextOnly  bool        `json:"textOnly"`
	Max       int         `json:"max"`
	Active    int         `json:"active"`
	Remaining int         `json:"remaining"`
}

// TierCapacity reports occupancy of one feed tier.
type TierCapacity struct {
	Tier      int    `json:"tier"`
	Label     string `json:"label"`
	Max       int    `json:"max"`
	Active    int    `json:"active"`
	Remaining int    `json:"remaining"`
}

// DashboardResp is the aggregate payload behind GET /advertisers-dashboard.
type DashboardResp struct {
	Advertisers      []domain.Advertiser `json:"advertisers"`
	Campaigns        []domain.Campaign   `json:"campaigns"`
	Slots            []SlotCapacity      `json:"slots"`
	FeedTierCapacity []TierCapacity      `json:"feedTierCapacity"`
	GlobalStats      GlobalStats         `json:"globalStats"`
	SlotTotals       []SlotTotal         `json:"slotTotals"`
}
