package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption/internal/domain/donations"
)

type DonationsRepo struct {
	db *sql.DB
}

func NewDonationsRepo(db *sql.DB) *DonationsRepo {
	return &DonationsRepo{db: db}
}

const donationColumns = `id, campaign_id, donor_email, donor_name, amount_cents, payment_intent_id, created_at`

func (r *DonationsRepo) Create(ctx context.Context, d donations.Donation) (string, error) {
	d.ID = newID()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO donations (`+donationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, d.ID, d.CampaignID, d.DonorEmail, d.DonorName, d.AmountCents, d.PaymentIntentID, d.CreatedAt)
	if err != nil {
		return "", err
	}
	return d.ID, nil
}

func (r *DonationsRepo) GetByID(ctx context.Context, id string) (donations.Donation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+donationColumns+` FROM donations WHERE id = $1`, id)
	return scanDonation(row)
}

func (r *DonationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id)
	return expectOne(res, err, donations.ErrNotFound)
}

func (r *DonationsRepo) ListByDonor(ctx context.Context, donorEmail string) ([]donations.Donation, error) {
	return r.list(ctx, `donor_email = $1`, donorEmail)
}

func (r *DonationsRepo) ListByCampaign(ctx context.Context, campaignID string) ([]donations.Donation, error) {
	return r.list(ctx, `campaign_id = $1`, campaignID)
}

func (r *DonationsRepo) list(ctx context.Context, where string, arg string) ([]donations.Donation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+donationColumns+`
		FROM donations
		WHERE `+where+`
		ORDER BY created_at ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]donations.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDonation(s scanner) (donations.Donation, error) {
	var d donations.Donation
	if err := s.Scan(&d.ID, &d.CampaignID, &d.DonorEmail, &d.DonorName, &d.AmountCents, &d.PaymentIntentID, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return donations.Donation{}, donations.ErrNotFound
		}
		return donations.Donation{}, err
	}
	return d, nil
}
