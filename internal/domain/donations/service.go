package donations

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption/internal/domain/campaigns"
	"pet-adoption/internal/platform/money"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrCampaignClosed   = errors.New("campaign is not accepting donations")
)

// CampaignReader evita depender del Service concreto de campaigns.
type CampaignReader interface {
	GetByID(ctx context.Context, id string) (campaigns.Campaign, error)
}

type Service struct {
	repo      Repository
	campaigns CampaignReader
	now       func() time.Time
}

func NewService(repo Repository, campaigns CampaignReader) *Service {
	return &Service{
		repo:      repo,
		campaigns: campaigns,
		now:       time.Now,
	}
}

type CreateInput struct {
	CampaignID      string
	DonorName       string
	Amount          float64
	PaymentIntentID string
}

func (s *Service) Create(ctx context.Context, donorEmail string, in CreateInput) (Donation, error) {
	donorEmail = strings.TrimSpace(donorEmail)
	campaignID := strings.TrimSpace(in.CampaignID)
	if donorEmail == "" || campaignID == "" {
		return Donation{}, ErrInvalidInput
	}

	cents, err := money.ToCents(in.Amount)
	if err != nil || cents < 1 {
		return Donation{}, ErrInvalidInput
	}

	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, campaigns.ErrNotFound) {
			return Donation{}, ErrCampaignNotFound
		}
		return Donation{}, err
	}

	now := s.now()
	if !c.AcceptsDonations(now) {
		return Donation{}, ErrCampaignClosed
	}

	d := Donation{
		CampaignID:      c.ID,
		DonorEmail:      donorEmail,
		DonorName:       strings.TrimSpace(in.DonorName),
		AmountCents:     cents,
		PaymentIntentID: strings.TrimSpace(in.PaymentIntentID),
		CreatedAt:       now,
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return Donation{}, err
	}
	d.ID = id
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Donation{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListByDonor(ctx context.Context, donorEmail string) ([]Donation, error) {
	donorEmail = strings.TrimSpace(donorEmail)
	if donorEmail == "" {
		return []Donation{}, nil
	}
	return s.repo.ListByDonor(ctx, donorEmail)
}

// CampaignSummary devuelve las donaciones de una campaña y el total en centavos.
func (s *Service) CampaignSummary(ctx context.Context, campaignID string) ([]Donation, int64, error) {
	items, err := s.repo.ListByCampaign(ctx, strings.TrimSpace(campaignID))
	if err != nil {
		return nil, 0, err
	}
	var total int64
	for _, d := range items {
		total += d.AmountCents
	}
	return items, total, nil
}
