package domain

import "strings"

// Slot identifies a fixed advertising location on the site. The string
// values are a stable external contract shared with the admin UI and must
// not be renamed.
type Slot string

const (
	SlotTopBanner    Slot = "top-banner"
	SlotHomepageHero Slot = "homepage-hero"
	SlotFeed         Slot = "feed"
	SlotNavbarCTA    Slot = "navbar-cta"
	SlotJoinCTA      Slot = "join-cta"
	SlotFilterCTA    Slot = "filter-cta"
)

// Feed inventory is organised as tiers of fixed-size position bands.
const (
	FeedTierCount    = 3
	FeedTierCapacity = 4
)

// slotInfo carries the static registry entry for a slot.
type slotInfo struct {
	label    string
	textOnly bool
	max      int
}

var slotRegistry = map[Slot]slotInfo{
	SlotTopBanner:    {label: "Top Banner", max: 3},
	SlotHomepageHero: {label: "Homepage Hero", max: 1},
	SlotFeed:         {label: "In-Feed", max: FeedTierCount * FeedTierCapacity},
	SlotNavbarCTA:    {label: "Navbar CTA", textOnly: true, max: 1},
	SlotJoinCTA:      {label: "Join CTA", textOnly: true, max: 1},
	SlotFilterCTA:    {label: "Filter CTA", textOnly: true, max: 1},
}

// ParseSlot normalises raw input (trimmed, case-insensitive) into a Slot.
// The second return value reports whether the identifier is known.
func ParseSlot(raw string) (Slot, bool) {
	s := Slot(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := slotRegistry[s]
	return s, ok
}

// AllSlots returns every slot in stable display order.
func AllSlots() []Slot {
	return []Slot{SlotTopBanner, SlotHomepageHero, SlotFeed, SlotNavbarCTA, SlotJoinCTA, SlotFilterCTA}
}

// TextOnly reports whether the slot renders a label and link without a
// creative image. Creatives are force-cleared for these slots.
func (s Slot) TextOnly() bool {
	return slotRegistry[s].textOnly
}

// Label returns the human readable name of the slot.
func (s Slot) Label() string {
	return slotRegistry[s].label
}

// MaxCapacity returns the maximum number of concurrently live campaigns the
// slot may hold. For the feed slot this is the derived tier×position total;
// occupancy there is enforced per (tier, position) pair rather than as a
// flat count.
func (s Slot) MaxCapacity() int {
	return slotRegistry[s].max
}

// FeedTier describes one positional band of the in-feed slot.
type FeedTier struct {
	Tier  int    `json:"tier"`
	Label string `json:"label"`
}

// FeedTiers returns the three feed bands in top-to-bottom order. Each band
// holds exactly FeedTierCapacity positions.
func FeedTiers() []FeedTier {
	return []FeedTier{
		{Tier: 1, Label: "Top"},
		{Tier: 2, Label: "Middle"},
		{Tier: 3, Label: "Bottom"},
	}
}

// ValidFeedPlacement reports whether the (tier, position) pair addresses a
// real feed position.
func ValidFeedPlacement(tier, pos int) bool {
	return tier >= 1 && tier <= FeedTierCount && pos >= 1 && pos <= FeedTierCapacity
}
