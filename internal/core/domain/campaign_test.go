package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func date(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestIsEndedDerived ensures a campaign counts as ended once its end date
// passes, no matter what the stored status still says.
func TestIsEndedDerived(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	c := Campaign{Status: StatusActive, EndDate: date("2026-08-31")}
	if !c.IsEnded(now) {
		t.Fatal("date-expired campaign must be ended regardless of stored status")
	}
	if c.IsLive(now) {
		t.Fatal("date-expired campaign must not be live")
	}

	c.EndDate = date("2026-09-01")
	if c.IsEnded(now) {
		t.Fatal("campaign ending today is not yet ended")
	}
	if !c.IsLive(now) {
		t.Fatal("active campaign ending today must be live")
	}

	c.Status = StatusEnded
	if !c.IsEnded(now) {
		t.Fatal("stored ended status must win even before the end date")
	}

	c.Status = StatusPaused
	if c.IsLive(now) {
		t.Fatal("paused campaign must not be live")
	}
}

// TestCampaignLabel checks the text-slot label fallback order.
func TestCampaignLabel(t *testing.T) {
	c := Campaign{ButtonText: "Meet your AI", Description: "ignored"}
	if got := c.Label(); got != "Meet your AI" {
		t.Fatalf("label = %q, want buttonText", got)
	}
	c.ButtonText = ""
	if got := c.Label(); got != "ignored" {
		t.Fatalf("label = %q, want description fallback", got)
	}
}

// TestDateJSON checks the YYYY-MM-DD wire format, including the empty zero
// value.
func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(date("2026-09-01"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-09-01"` {
		t.Fatalf("marshalled date = %s", b)
	}

	var d Date
	if err = json.Unmarshal([]byte(`"2026-07-15"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.String() != "2026-07-15" {
		t.Fatalf("round-tripped date = %q", d.String())
	}

	if err = json.Unmarshal([]byte(`"15.07.2026"`), &d); err == nil {
		t.Fatal("expected error for non-ISO date")
	}

	b, _ = json.Marshal(Date{})
	if string(b) != `""` {
		t.Fatalf("zero date marshalled as %s, want empty string", b)
	}
}
