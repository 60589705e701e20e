package mongo

import (
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/campaigns"
	"pet-adoption/internal/domain/donations"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/platform/money"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dateLayout = "2006-01-02"

// Los documentos mantienen los nombres camelCase de la base existente.

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty"`
	Role      string             `bson:"role,omitempty"`
	Status    string             `bson:"status,omitempty"`
	TimeStamp int64              `bson:"timeStamp,omitempty"` // ms epoch
}

type petDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail        string             `bson:"userEmail"`
	PetName          string             `bson:"petName"`
	PetAge           int                `bson:"petAge"`
	PetCategory      string             `bson:"petCategory,omitempty"`
	PetLocation      string             `bson:"petLocation,omitempty"`
	PetImage         string             `bson:"petImage,omitempty"`
	ShortDescription string             `bson:"shortDescription,omitempty"`
	LongDescription  string             `bson:"longDescription,omitempty"`
	// Adopted puede venir como bool o string en documentos viejos.
	Adopted   interface{} `bson:"adopted"`
	CreatedAt time.Time   `bson:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt"`
}

type campaignDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail  string             `bson:"userEmail"`
	PetName    string             `bson:"petName"`
	PetPicture string             `bson:"petPicture,omitempty"`
	// monto decimal (no centavos); documentos viejos lo traen como string
	MaxDonationAmount interface{} `bson:"maxDonationAmount"`
	LastDate          string      `bson:"lastDate,omitempty"`
	ShortDescription  string      `bson:"shortDescription,omitempty"`
	LongDescription   string      `bson:"longDescription,omitempty"`
	Paused            bool        `bson:"paused"`
	CreatedAt         time.Time   `bson:"createdAt"`
	UpdatedAt         time.Time   `bson:"updatedAt"`
}

type requestDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PetID     string             `bson:"petId"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	Address   string             `bson:"address,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type donationDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CampaignID      string             `bson:"campaignId"`
	Email           string             `bson:"email"`
	Name            string             `bson:"name,omitempty"`
	Amount          interface{}        `bson:"amount"`
	PaymentIntentID string             `bson:"paymentIntentId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

func fromUser(u users.User) userDoc {
	return userDoc{
		Email:     u.Email,
		Name:      u.Name,
		Photo:     u.PhotoURL,
		Role:      string(u.Role),
		Status:    u.Status,
		TimeStamp: u.CreatedAt.UnixMilli(),
	}
}

func (d userDoc) toUser() users.User {
	u := users.User{
		ID:       d.ID.Hex(),
		Email:    d.Email,
		Name:     d.Name,
		PhotoURL: d.Photo,
		Role:     users.Role(d.Role),
		Status:   d.Status,
	}
	if d.TimeStamp > 0 {
		u.CreatedAt = time.UnixMilli(d.TimeStamp).UTC()
	}
	return u
}

func fromPet(p pets.Pet) petDoc {
	return petDoc{
		UserEmail:        p.OwnerEmail,
		PetName:          p.Name,
		PetAge:           p.Age,
		PetCategory:      p.Category,
		PetLocation:      p.Location,
		PetImage:         p.ImageURL,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		Adopted:          string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (d petDoc) toPet() pets.Pet {
	status, ok := pets.ParseAdoptionStatus(d.Adopted)
	if !ok {
		status = pets.StatusNotAdopted
	}
	return pets.Pet{
		ID:               d.ID.Hex(),
		OwnerEmail:       d.UserEmail,
		Name:             d.PetName,
		Age:              d.PetAge,
		Category:         d.PetCategory,
		Location:         d.PetLocation,
		ImageURL:         d.PetImage,
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
		Status:           status,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// statusValues lista todas las formas (nuevas y legacy) con las que un
// estado puede estar guardado. nil matchea documentos sin el campo.
func statusValues(s pets.AdoptionStatus) []interface{} {
	switch s {
	case pets.StatusNotAdopted:
		return []interface{}{string(pets.StatusNotAdopted), "false", false, "", nil}
	case pets.StatusRequested:
		return []interface{}{string(pets.StatusRequested), "request"}
	case pets.StatusAdopted:
		return []interface{}{string(pets.StatusAdopted), "true", true}
	}
	return []interface{}{string(s)}
}

func fromCampaign(c campaigns.Campaign) campaignDoc {
	d := campaignDoc{
		UserEmail:         c.OwnerEmail,
		PetName:           c.PetName,
		PetPicture:        c.PetPicture,
		MaxDonationAmount: money.FromCents(c.TargetCents),
		ShortDescription:  c.ShortDescription,
		LongDescription:   c.LongDescription,
		Paused:            c.Paused,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.LastDate != nil {
		d.LastDate = c.LastDate.Format(dateLayout)
	}
	return d
}

func (d campaignDoc) toCampaign() campaigns.Campaign {
	c := campaigns.Campaign{
		ID:               d.ID.Hex(),
		OwnerEmail:       d.UserEmail,
		PetName:          d.PetName,
		PetPicture:       d.PetPicture,
		TargetCents:      centsOf(d.MaxDonationAmount),
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
		Paused:           d.Paused,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if t, err := time.Parse(dateLayout, strings.TrimSpace(d.LastDate)); err == nil {
		c.LastDate = &t
	}
	return c
}

func fromRequest(r adoptions.Request) requestDoc {
	return requestDoc{
		PetID:     r.PetID,
		Email:     r.RequesterEmail,
		Name:      r.Name,
		Phone:     r.Phone,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
	}
}

func (d requestDoc) toRequest() adoptions.Request {
	return adoptions.Request{
		ID:             d.ID.Hex(),
		PetID:          d.PetID,
		RequesterEmail: d.Email,
		Name:           d.Name,
		Phone:          d.Phone,
		Address:        d.Address,
		CreatedAt:      d.CreatedAt,
	}
}

func fromDonation(dn donations.Donation) donationDoc {
	return donationDoc{
		CampaignID:      dn.CampaignID,
		Email:           dn.DonorEmail,
		Name:            dn.DonorName,
		Amount:          money.FromCents(dn.AmountCents),
		PaymentIntentID: dn.PaymentIntentID,
		CreatedAt:       dn.CreatedAt,
	}
}

func (d donationDoc) toDonation() donations.Donation {
	return donations.Donation{
		ID:              d.ID.Hex(),
		CampaignID:      d.CampaignID,
		DonorEmail:      d.Email,
		DonorName:       d.Name,
		AmountCents:     centsOf(d.Amount),
		PaymentIntentID: d.PaymentIntentID,
		CreatedAt:       d.CreatedAt,
	}
}

// centsOf convierte un monto decimal guardado como número o string.
// Valores ilegibles cuentan como 0.
func centsOf(v interface{}) int64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case primitive.Decimal128:
		parsed, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	cents, err := money.ToCents(f)
	if err != nil {
		return 0
	}
	return cents
}

func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
