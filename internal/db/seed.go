package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo advertisers, campaigns and click events for local
// development. It is idempotent over the fixed ids it uses.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	start := time.Now().AddDate(0, 0, -30)
	end := time.Now().AddDate(0, 1, 0)

	// advertisers
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("Advertiser %d", i)
		email := fmt.Sprintf("ads%d@example.com", i)
		company := fmt.Sprintf("Company %d", i)
		logo := fmt.Sprintf("https://example.com/logo/%d.png", i)
		_, err := db.Exec(ctx, `INSERT INTO advertisers (id, name, email, company, logo, notes, status, created_at)
VALUES ($1,$2,$3,$4,$5,'','active',now()) ON CONFLICT DO NOTHING`,
			i, name, email, company, logo)
		if err != nil {
			return err
		}
	}

	// one campaign per image slot, two feed positions, two CTA slots
	type seedCampaign struct {
		id       int64
		slot     string
		creative string
		tier     int
		pos      int
		button   string
	}
	campaigns := []seedCampaign{
		{id: 1, slot: "top-banner", creative: "https://example.com/banner/1.png"},
		{id: 2, slot: "homepage-hero", creative: "https://example.com/hero/1.png"},
		{id: 3, slot: "feed", creative: "https://example.com/feed/1.png", tier: 1, pos: 1},
		{id: 4, slot: "feed", creative: "https://example.com/feed/2.png", tier: 2, pos: 3},
		{id: 5, slot: "navbar-cta", button: "Meet your AI"},
		{id: 6, slot: "join-cta", button: "Join the directory"},
	}
	for i, sc := range campaigns {
		name := fmt.Sprintf("Campaign %d", sc.id)
		destination := fmt.Sprintf("https://example.com/landing/%d", sc.id)
		advertiserID := int64(i%3 + 1)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, name, slot, creative, destination_url, start_date, end_date, status, is_visible,
     "position", feed_tier, tier_slot, description, category, country, button_text, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'active',true,0,$9,$10,'','','',$11,now()) ON CONFLICT DO NOTHING`,
			sc.id, advertiserID, name, sc.slot, sc.creative, destination, start, end, sc.tier, sc.pos, sc.button)
		if err != nil {
			return err
		}
	}

	// click events spread over the last 30 days
	for i := 0; i < 500; i++ {
		sc := campaigns[r.Intn(len(campaigns))]
		createdAt := time.Now().AddDate(0, 0, -r.Intn(30)).Add(-time.Duration(r.Intn(86400)) * time.Second)
		_, err := db.Exec(ctx, `INSERT INTO click_events (token, campaign_id, slot, created_at)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			uuid.NewString(), sc.id, sc.slot, createdAt)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `UPDATE campaigns SET clicks = clicks + 1, impressions = impressions + $2 WHERE id = $1`,
			sc.id, int64(r.Intn(20)+1))
		if err != nil {
			return err
		}
	}
	return nil
}
