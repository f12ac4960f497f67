package domain

import "time"

// AdvertiserStatus marks whether an advertiser account may run campaigns.
type AdvertiserStatus string

const (
	AdvertiserActive   AdvertiserStatus = "active"
	AdvertiserInactive AdvertiserStatus = "inactive"
)

// ParseAdvertiserStatus validates a raw status string. Empty input defaults
// to active.
func ParseAdvertiserStatus(raw string) (AdvertiserStatus, bool) {
	switch AdvertiserStatus(raw) {
	case "":
		return AdvertiserActive, true
	case AdvertiserActive, AdvertiserInactive:
		return AdvertiserStatus(raw), true
	default:
		return "", false
	}
}

// Advertiser owns zero or more campaigns. Deleting an advertiser cascades to
// all of its campaigns.
type Advertiser struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Company string           `json:"company"`
	Logo    string           `json:"logo"`
	Notes   string           `json:"notes"`
	Status  AdvertiserStatus `json:"status"`
	// CampaignCount is derived from the campaigns table at read time.
	CampaignCount int       `json:"campaignCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
