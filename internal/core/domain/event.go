package domain

import (
	"time"
)

// ClickEvent is one recorded click on a campaign. Events are append-only and
// feed the windowed analytics; the per-campaign counter is bumped in the same
// write.
type ClickEvent struct {
	ID         int64
	Token      string
	CampaignID int64
	Slot       Slot
	CreatedAt  time.Time
}
