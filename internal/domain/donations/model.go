package donations

import "time"

// Donation es el registro de un aporte a una campaña (colección "donate").
type Donation struct {
	ID         string
	CampaignID string

	DonorEmail string
	DonorName  string

	AmountCents     int64
	PaymentIntentID string

	CreatedAt time.Time
}
