package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-adoption/internal/domain/campaigns"
)

type CampaignsRepo struct {
	db *sql.DB
}

func NewCampaignsRepo(db *sql.DB) *CampaignsRepo {
	return &CampaignsRepo{db: db}
}

const campaignColumns = `
	id, owner_email, pet_name, pet_picture,
	target_cents, last_date,
	short_description, long_description,
	paused, created_at, updated_at`

func (r *CampaignsRepo) Create(ctx context.Context, c campaigns.Campaign) (string, error) {
	c.ID = newID()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO donation_campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID,
		c.OwnerEmail,
		c.PetName,
		c.PetPicture,
		c.TargetCents,
		toNullDate(c.LastDate),
		c.ShortDescription,
		c.LongDescription,
		c.Paused,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (r *CampaignsRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE donation_campaigns
		SET
			pet_name = $2,
			pet_picture = $3,
			target_cents = $4,
			last_date = $5,
			short_description = $6,
			long_description = $7,
			updated_at = $8
		WHERE id = $1
	`,
		c.ID,
		c.PetName,
		c.PetPicture,
		c.TargetCents,
		toNullDate(c.LastDate),
		c.ShortDescription,
		c.LongDescription,
		c.UpdatedAt,
	)
	return expectOne(res, err, campaigns.ErrNotFound)
}

func (r *CampaignsRepo) TogglePaused(ctx context.Context, id string) (bool, error) {
	var paused bool
	err := r.db.QueryRowContext(ctx, `
		UPDATE donation_campaigns SET paused = NOT paused WHERE id = $1
		RETURNING paused
	`, id).Scan(&paused)
	if errors.Is(err, sql.ErrNoRows) {
		return false, campaigns.ErrNotFound
	}
	return paused, err
}

func (r *CampaignsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM donation_campaigns WHERE id = $1`, id)
	return expectOne(res, err, campaigns.ErrNotFound)
}

func (r *CampaignsRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM donation_campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

func (r *CampaignsRepo) List(ctx context.Context, ownerEmail string) ([]campaigns.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+campaignColumns+`
		FROM donation_campaigns
		WHERE ($1 = '' OR owner_email = $1)
		ORDER BY created_at ASC
	`, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]campaigns.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCampaign(s scanner) (campaigns.Campaign, error) {
	var c campaigns.Campaign
	var last sql.NullTime
	if err := s.Scan(
		&c.ID,
		&c.OwnerEmail,
		&c.PetName,
		&c.PetPicture,
		&c.TargetCents,
		&last,
		&c.ShortDescription,
		&c.LongDescription,
		&c.Paused,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return campaigns.Campaign{}, campaigns.ErrNotFound
		}
		return campaigns.Campaign{}, err
	}
	if last.Valid {
		// last_date es DATE; pgx lo devuelve como medianoche UTC
		t := last.Time
		c.LastDate = &t
	}
	return c, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
