package domain

import "testing"

// TestParseSlot ensures slot identifiers are matched after trimming and
// case-folding.
func TestParseSlot(t *testing.T) {
	for _, raw := range []string{"navbar-cta", "  NAVBAR-CTA  ", "Navbar-Cta"} {
		s, ok := ParseSlot(raw)
		if !ok {
			t.Fatalf("ParseSlot(%q) not recognised", raw)
		}
		if s != SlotNavbarCTA {
			t.Fatalf("ParseSlot(%q) = %q, want %q", raw, s, SlotNavbarCTA)
		}
	}
	if _, ok := ParseSlot("sidebar"); ok {
		t.Fatal("ParseSlot accepted unknown slot")
	}
	if _, ok := ParseSlot(""); ok {
		t.Fatal("ParseSlot accepted empty slot")
	}
}

// TestTextOnlySlots pins the text-only slot set: CTA slots carry a label and
// link, never a creative.
func TestTextOnlySlots(t *testing.T) {
	textOnly := map[Slot]bool{
		SlotNavbarCTA: true,
		SlotJoinCTA:   true,
		SlotFilterCTA: true,
	}
	for _, s := range AllSlots() {
		if s.TextOnly() != textOnly[s] {
			t.Fatalf("slot %s: TextOnly = %v, want %v", s, s.TextOnly(), textOnly[s])
		}
	}
}

// TestFeedCapacity checks the derived feed capacity and placement bounds.
func TestFeedCapacity(t *testing.T) {
	if got := SlotFeed.MaxCapacity(); got != 12 {
		t.Fatalf("feed capacity = %d, want 12 (3 tiers x 4 positions)", got)
	}
	tiers := FeedTiers()
	if len(tiers) != FeedTierCount {
		t.Fatalf("FeedTiers returned %d tiers, want %d", len(tiers), FeedTierCount)
	}
	if !ValidFeedPlacement(1, 1) || !ValidFeedPlacement(3, 4) {
		t.Fatal("valid feed placement rejected")
	}
	for _, p := range [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 5}} {
		if ValidFeedPlacement(p[0], p[1]) {
			t.Fatalf("placement tier %d position %d should be invalid", p[0], p[1])
		}
	}
}

// TestCTASlotsAreSingleton verifies each CTA slot holds exactly one
// campaign.
func TestCTASlotsAreSingleton(t *testing.T) {
	for _, s := range []Slot{SlotNavbarCTA, SlotJoinCTA, SlotFilterCTA} {
		if got := s.MaxCapacity(); got != 1 {
			t.Fatalf("slot %s capacity = %d, want 1", s, got)
		}
	}
}
