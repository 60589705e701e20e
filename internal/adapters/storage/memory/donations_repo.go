package memory

import (
	"context"
	"sort"

	"pet-adoption/internal/domain/donations"
)

type donationRepo struct{ s *Store }

func (r *donationRepo) Create(ctx context.Context, d donations.Donation) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.ID = r.s.newID()
	r.s.donations[d.ID] = d
	return d.ID, nil
}

func (r *donationRepo) GetByID(ctx context.Context, id string) (donations.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.donations[id]
	if !ok {
		return donations.Donation{}, donations.ErrNotFound
	}
	return d, nil
}

func (r *donationRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.donations[id]; !ok {
		return donations.ErrNotFound
	}
	delete(r.s.donations, id)
	return nil
}

func (r *donationRepo) ListByDonor(ctx context.Context, donorEmail string) ([]donations.Donation, error) {
	return r.list(func(d donations.Donation) bool { return d.DonorEmail == donorEmail })
}

func (r *donationRepo) ListByCampaign(ctx context.Context, campaignID string) ([]donations.Donation, error) {
	return r.list(func(d donations.Donation) bool { return d.CampaignID == campaignID })
}

func (r *donationRepo) list(keep func(donations.Donation) bool) ([]donations.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]donations.Donation, 0)
	for _, d := range r.s.donations {
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
