package memory

import (
	"context"
	"sort"

	"pet-adoption/internal/domain/campaigns"
)

type campaignRepo struct{ s *Store }

func (r *campaignRepo) Create(ctx context.Context, c campaigns.Campaign) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = r.s.newID()
	r.s.campaigns[c.ID] = c
	return c.ID, nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.campaigns[id]
	if !ok {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	return c, nil
}

func (r *campaignRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.campaigns[c.ID]
	if !ok {
		return campaigns.ErrNotFound
	}
	c.OwnerEmail = current.OwnerEmail
	c.Paused = current.Paused
	c.CreatedAt = current.CreatedAt
	r.s.campaigns[c.ID] = c
	return nil
}

func (r *campaignRepo) TogglePaused(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.campaigns[id]
	if !ok {
		return false, campaigns.ErrNotFound
	}
	c.Paused = !c.Paused
	r.s.campaigns[id] = c
	return c.Paused, nil
}

func (r *campaignRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.campaigns[id]; !ok {
		return campaigns.ErrNotFound
	}
	delete(r.s.campaigns, id)
	return nil
}

func (r *campaignRepo) List(ctx context.Context, ownerEmail string) ([]campaigns.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]campaigns.Campaign, 0)
	for _, c := range r.s.campaigns {
		if ownerEmail != "" && c.OwnerEmail != ownerEmail {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
