package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// AdsRepository implements port.AdsRepository using pgxpool for PostgreSQL.
type AdsRepository struct {
	pool *pgxpool.Pool
}

// NewAdsRepository returns a new repository instance.
func NewAdsRepository(pool *pgxpool.Pool) *AdsRepository {
	return &AdsRepository{pool: pool}
}

const advertiserColumns = `
        a.id,
        a.name,
        a.email,
        a.company,
        a.logo,
        a.notes,
        a.status,
        (SELECT count(*) FROM campaigns c WHERE c.advertiser_id = a.id),
        a.created_at`

// ListAdvertisers returns all advertisers with their derived campaign
// counts, newest first.
func (r *AdsRepository) ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+advertiserColumns+` FROM advertisers a ORDER BY a.id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAdvertiser)
}

// GetAdvertiser returns an advertiser by id, or nil when it does not exist.
func (r *AdsRepository) GetAdvertiser(ctx context.Context, id int64) (*domain.Advertiser, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+advertiserColumns+` FROM advertisers a WHERE a.id = $1`, id)
	if err != nil {
		return nil, err
	}
	a, err := pgx.CollectOneRow(rows, scanAdvertiser)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdvertiser inserts the advertiser and fills in its generated id and
// creation time.
func (r *AdsRepository) CreateAdvertiser(ctx context.Context, a *domain.Advertiser) error {
	return r.pool.QueryRow(ctx, `INSERT INTO advertisers (name, email, company, logo, notes, status)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at`,
		a.Name, a.Email, a.Company, a.Logo, a.Notes, a.Status).Scan(&a.ID, &a.CreatedAt)
}

// UpdateAdvertiser rewrites all editable fields of the advertiser.
func (r *AdsRepository) UpdateAdvertiser(ctx context.Context, a *domain.Advertiser) error {
	tag, err := r.pool.Exec(ctx, `UPDATE advertisers SET name=$1, email=$2, company=$3, logo=$4, notes=$5, status=$6 WHERE id=$7`,
		a.Name, a.Email, a.Company, a.Logo, a.Notes, a.Status, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: advertiser %d", port.ErrNotFound, a.ID)
	}
	return nil
}

// DeleteAdvertiser removes the advertiser; its campaigns and their click
// events go with it via ON DELETE CASCADE.
func (r *AdsRepository) DeleteAdvertiser(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM advertisers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: advertiser %d", port.ErrNotFound, id)
	}
	return nil
}

const campaignColumns = `
        id,
        advertiser_id,
        name,
        slot,
        creative,
        destination_url,
        start_date,
        end_date,
        status,
        is_visible,
        impressions,
        clicks,
        "position",
        feed_tier,
        tier_slot,
        description,
        category,
        country,
        button_text,
        created_at`

// ListCampaigns returns all campaigns, newest first.
func (r *AdsRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *AdsRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts the campaign after re-checking slot capacity inside
// a serializable transaction. Of two concurrent writers racing for the last
// opening, one commits and the other fails the re-check or the serialization
// conflict, so the slot is never over-allocated.
func (r *AdsRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	if err = checkCapacityTx(ctx, tx, c); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `INSERT INTO campaigns
        (advertiser_id, name, slot, creative, destination_url, start_date, end_date, status, is_visible, "position", feed_tier, tier_slot, description, category, country, button_text)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at`,
		c.AdvertiserID, c.Name, c.Slot, c.Creative, c.DestinationURL, c.StartDate.Time, c.EndDate.Time,
		c.Status, c.IsVisible, c.Position, c.FeedTier, c.TierSlot, c.Description, c.Category, c.Country, c.ButtonText).
		Scan(&c.ID, &c.CreatedAt)
	return err
}

// UpdateCampaign rewrites the editable fields of the campaign inside the
// same serializable capacity re-check used by CreateCampaign. Counters and
// creation time are left untouched.
func (r *AdsRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	if err = checkCapacityTx(ctx, tx, c); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `UPDATE campaigns SET
        advertiser_id=$1, name=$2, slot=$3, creative=$4, destination_url=$5, start_date=$6, end_date=$7,
        status=$8, is_visible=$9, "position"=$10, feed_tier=$11, tier_slot=$12, description=$13, category=$14, country=$15, button_text=$16
        WHERE id = $17`,
		c.AdvertiserID, c.Name, c.Slot, c.Creative, c.DestinationURL, c.StartDate.Time, c.EndDate.Time,
		c.Status, c.IsVisible, c.Position, c.FeedTier, c.TierSlot, c.Description, c.Category, c.Country, c.ButtonText, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %d", port.ErrNotFound, c.ID)
	}
	return nil
}

// DeleteCampaign removes the campaign and, via cascade, its click events.
func (r *AdsRepository) DeleteCampaign(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %d", port.ErrNotFound, id)
	}
	return nil
}

// liveCond matches campaigns that currently occupy their slot: stored status
// active and end date not yet passed. $1 is the reference day.
const liveCond = `status = 'active' AND end_date >= $1`

// CountLiveInSlot counts live campaigns in the slot, excluding excludeID
// when non-zero.
func (r *AdsRepository) CountLiveInSlot(ctx context.Context, slot domain.Slot, excludeID int64, now time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE `+liveCond+` AND slot = $2 AND id <> $3`,
		domain.NewDate(now).Time, slot, excludeID).Scan(&count)
	return count, err
}

// FeedPositionTaken reports whether a live feed campaign other than
// excludeID occupies the (tier, pos) pair.
func (r *AdsRepository) FeedPositionTaken(ctx context.Context, tier, pos int, excludeID int64, now time.Time) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE `+liveCond+` AND slot = $2 AND feed_tier = $3 AND tier_slot = $4 AND id <> $5)`,
		domain.NewDate(now).Time, domain.SlotFeed, tier, pos, excludeID).Scan(&taken)
	return taken, err
}

// RecordClick appends a click event and bumps the campaign counter in one
// transaction.
func (r *AdsRepository) RecordClick(ctx context.Context, click *domain.ClickEvent) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	tag, err := tx.Exec(ctx, `UPDATE campaigns SET clicks = clicks + 1 WHERE id = $1`, click.CampaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %d", port.ErrNotFound, click.CampaignID)
	}
	click.CreatedAt = time.Now().UTC()
	err = tx.QueryRow(ctx, `INSERT INTO click_events (token, campaign_id, slot, created_at) VALUES ($1,$2,$3,$4) RETURNING id`,
		click.Token, click.CampaignID, click.Slot, click.CreatedAt).Scan(&click.ID)
	return err
}

// RecordImpression bumps the campaign's impression counter.
func (r *AdsRepository) RecordImpression(ctx context.Context, campaignID int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET impressions = impressions + 1 WHERE id = $1`, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %d", port.ErrNotFound, campaignID)
	}
	return nil
}

// TotalClicks sums the click counters across all campaigns.
func (r *AdsRepository) TotalClicks(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(sum(clicks), 0) FROM campaigns`).Scan(&total)
	return total, err
}

// ClicksSince counts click events recorded at or after since.
func (r *AdsRepository) ClicksSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM click_events WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

// ClicksPerDay groups click events by calendar day. Days without clicks are
// absent from the result.
func (r *AdsRepository) ClicksPerDay(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT created_at::date AS day, count(*)
        FROM click_events WHERE created_at >= $1 AND created_at <= $2 GROUP BY day`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int64)
	for rows.Next() {
		var day time.Time
		var n int64
		if err = rows.Scan(&day, &n); err != nil {
			return nil, err
		}
		counts[domain.NewDate(day).String()] = n
	}
	return counts, rows.Err()
}

// SlotTotals aggregates click counters and campaign counts per slot, most
// clicked first.
func (r *AdsRepository) SlotTotals(ctx context.Context) ([]port.SlotTotal, error) {
	rows, err := r.pool.Query(ctx, `SELECT slot, COALESCE(sum(clicks), 0), count(*)
        FROM campaigns GROUP BY slot ORDER BY 2 DESC, slot`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SlotTotal, error) {
		var t port.SlotTotal
		err := row.Scan(&t.Slot, &t.TotalClicks, &t.CampaignCount)
		return t, err
	})
}

// checkCapacityTx re-runs the capacity gate inside the write transaction.
// For the feed slot occupancy is per (tier, position); other slots use a
// flat live count against the registry maximum. The campaign's own row is
// always excluded so updates of a current occupant pass.
func checkCapacityTx(ctx context.Context, tx pgx.Tx, c *domain.Campaign) error {
	today := domain.NewDate(time.Now()).Time
	if c.Slot == domain.SlotFeed {
		var taken bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE `+liveCond+` AND slot = $2 AND feed_tier = $3 AND tier_slot = $4 AND id <> $5)`,
			today, domain.SlotFeed, c.FeedTier, c.TierSlot, c.ID).Scan(&taken)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: tier %d position %d", port.ErrPositionTaken, c.FeedTier, c.TierSlot)
		}
		return nil
	}
	var count int
	err := tx.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE `+liveCond+` AND slot = $2 AND id <> $3`,
		today, c.Slot, c.ID).Scan(&count)
	if err != nil {
		return err
	}
	if count >= c.Slot.MaxCapacity() {
		return fmt.Errorf("%w: %s", port.ErrSlotFull, c.Slot)
	}
	return nil
}

func scanAdvertiser(row pgx.CollectableRow) (domain.Advertiser, error) {
	var a domain.Advertiser
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Company, &a.Logo, &a.Notes, &a.Status, &a.CampaignCount, &a.CreatedAt)
	return a, err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	var start, end time.Time
	err := row.Scan(
		&c.ID,
		&c.AdvertiserID,
		&c.Name,
		&c.Slot,
		&c.Creative,
		&c.DestinationURL,
		&start,
		&end,
		&c.Status,
		&c.IsVisible,
		&c.Impressions,
		&c.Clicks,
		&c.Position,
		&c.FeedTier,
		&c.TierSlot,
		&c.Description,
		&c.Category,
		&c.Country,
		&c.ButtonText,
		&c.CreatedAt,
	)
	c.StartDate = domain.NewDate(start)
	c.EndDate = domain.NewDate(end)
	return c, err
}
