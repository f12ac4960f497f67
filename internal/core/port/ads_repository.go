package port

import (
	"context"
	"errors"
	"time"

	"erogram-ads/internal/core/domain"
)

// Sentinel errors shared across layers. Validation and capacity failures are
// surfaced to the admin UI verbatim; handlers map them to HTTP status codes.
var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("not found")
	ErrSlotFull              = errors.New("slot is full")
	ErrPositionTaken         = errors.New("feed position is already taken")
	ErrMissingTierOrPosition = errors.New("feed campaigns require a tier and a position")
)

// AdsRepository defines the persistence layer for advertisers, campaigns and
// click analytics. It is an outbound port in hexagonal architecture.
// Campaign writes must enforce slot capacity atomically: CreateCampaign and
// UpdateCampaign re-run the capacity check inside a serializable transaction
// so a concurrent writer loses with ErrSlotFull or ErrPositionTaken instead
// of over-allocating the slot.
type AdsRepository interface {
	ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error)
	// GetAdvertiser returns nil, nil when the id is unknown.
	GetAdvertiser(ctx context.Context, id int64) (*domain.Advertiser, error)
	// CreateAdvertiser fills in the generated ID and CreatedAt.
	CreateAdvertiser(ctx context.Context, a *domain.Advertiser) error
	UpdateAdvertiser(ctx context.Context, a *domain.Advertiser) error
	// DeleteAdvertiser cascades to all campaigns of the advertiser.
	DeleteAdvertiser(ctx context.Context, id int64) error

	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns nil, nil when the id is unknown.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id int64) error

	// CountLiveInSlot counts campaigns in the slot that are live at now
	// (stored status active, end date not passed), excluding excludeID when
	// non-zero.
	CountLiveInSlot(ctx context.Context, slot domain.Slot, excludeID int64, now time.Time) (int, error)
	// FeedPositionTaken reports whether a live feed campaign other than
	// excludeID already occupies the (tier, pos) pair.
	FeedPositionTaken(ctx context.Context, tier, pos int, excludeID int64, now time.Time) (bool, error)

	// RecordClick appends a click event and increments the campaign's click
	// counter in one transaction.
	RecordClick(ctx context.Context, click *domain.ClickEvent) error
	// RecordImpression increments the campaign's impression counter.
	RecordImpression(ctx context.Context, campaignID int64) error

	// TotalClicks sums the click counters across all campaigns.
	TotalClicks(ctx context.Context) (int64, error)
	// ClicksSince counts click events recorded at or after since.
	ClicksSince(ctx context.Context, since time.Time) (int64, error)
	// ClicksPerDay returns click-event counts grouped by calendar day,
	// keyed "YYYY-MM-DD". Days without clicks are absent; the caller
	// zero-fills.
	ClicksPerDay(ctx context.Context, from, to time.Time) (map[string]int64, error)
	// SlotTotals aggregates click counters and campaign counts per slot.
	SlotTotals(ctx context.Context) ([]SlotTotal, error)
}

// SlotTotal is a per-slot analytics rollup, used to compare slot demand.
type SlotTotal struct {
	Slot          domain.Slot `json:"slot"`
	TotalClicks   int64       `json:"totalClicks"`
	CampaignCount int         `json:"campaignCount"`
}
