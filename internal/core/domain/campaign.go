package domain

import "time"

// Status is the stored lifecycle state of a campaign. The stored value and
// the effective value can diverge once the end date passes; callers must use
// IsEnded/IsLive rather than comparing Status directly when deciding whether
// a campaign is running.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusEnded  Status = "ended"
)

// ParseStatus validates a raw status string. Empty input defaults to active.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case "":
		return StatusActive, true
	case StatusActive, StatusPaused, StatusEnded:
		return Status(raw), true
	default:
		return "", false
	}
}

// Campaign is a scheduled placement of a creative (or text label) in a slot,
// owned by exactly one advertiser. JSON field names are the wire contract
// with the admin UI.
type Campaign struct {
	ID             int64  `json:"id"`
	AdvertiserID   int64  `json:"advertiserId"`
	Name           string `json:"name"`
	Slot           Slot   `json:"slot"`
	Creative       string `json:"creative"`
	DestinationURL string `json:"destinationUrl"`
	StartDate      Date   `json:"startDate"`
	EndDate        Date   `json:"endDate"`
	Status         Status `json:"status"`
	IsVisible      bool   `json:"isVisible"`
	Impressions    int64  `json:"impressions"`
	Clicks         int64  `json:"clicks"`
	// Position predates the feed tier model and is carried through
	// unvalidated for older campaigns.
	Position    int       `json:"position"`
	FeedTier    int       `json:"feedTier"`
	TierSlot    int       `json:"tierSlot"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Country     string    `json:"country"`
	ButtonText  string    `json:"buttonText"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsEnded reports whether the campaign has finished: either the stored
// status says so or the end date lies in the past. This is computed on every
// read, never stored back.
func (c *Campaign) IsEnded(now time.Time) bool {
	if c.Status == StatusEnded {
		return true
	}
	return !c.EndDate.IsZero() && c.EndDate.Before(now)
}

// IsLive reports whether the campaign currently occupies its slot: stored
// status active and not date-expired.
func (c *Campaign) IsLive(now time.Time) bool {
	return c.Status == StatusActive && !c.IsEnded(now)
}

// Label returns the text shown for text-only slots: buttonText when set,
// otherwise description.
func (c *Campaign) Label() string {
	if c.ButtonText != "" {
		return c.ButtonText
	}
	return c.Description
}
