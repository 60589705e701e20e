package donations

import "context"

type Repository interface {
	Create(ctx context.Context, d Donation) (string, error)
	GetByID(ctx context.Context, id string) (Donation, error)
	Delete(ctx context.Context, id string) error
	ListByDonor(ctx context.Context, donorEmail string) ([]Donation, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]Donation, error)
}
