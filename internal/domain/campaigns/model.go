package campaigns

import "time"

// Campaign es una campaña de donación. Independiente de pets: PetName/PetPicture
// son sólo descriptivos.
type Campaign struct {
	ID         string
	OwnerEmail string

	PetName    string
	PetPicture string

	TargetCents int64      // max donation amount, en centavos
	LastDate    *time.Time // deadline (fecha, sin hora)

	ShortDescription string
	LongDescription  string

	Paused bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsDonations: no pausada y deadline (inclusive) no vencido.
func (c Campaign) AcceptsDonations(now time.Time) bool {
	if c.Paused {
		return false
	}
	if c.LastDate == nil {
		return true
	}
	end := c.LastDate.AddDate(0, 0, 1)
	return now.Before(end)
}
