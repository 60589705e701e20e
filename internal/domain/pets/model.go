package pets

import (
	"strings"
	"time"
)

// AdoptionStatus es tri-estado. Reemplaza al viejo campo "adopted", que mezclaba
// "false" (string), false/true (bool) y "request".
// @Enum not_adopted, requested, adopted
type AdoptionStatus string

const (
	StatusNotAdopted AdoptionStatus = "not_adopted"
	StatusRequested  AdoptionStatus = "requested"
	StatusAdopted    AdoptionStatus = "adopted"
)

func (s AdoptionStatus) Valid() bool {
	switch s {
	case StatusNotAdopted, StatusRequested, StatusAdopted:
		return true
	}
	return false
}

// ParseAdoptionStatus normaliza valores nuevos y legacy (bool o string).
// Un valor ausente (nil) cuenta como not_adopted.
func ParseAdoptionStatus(v any) (AdoptionStatus, bool) {
	switch t := v.(type) {
	case nil:
		return StatusNotAdopted, true
	case bool:
		if t {
			return StatusAdopted, true
		}
		return StatusNotAdopted, true
	case AdoptionStatus:
		return ParseAdoptionStatus(string(t))
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "false", string(StatusNotAdopted):
			return StatusNotAdopted, true
		case "request", string(StatusRequested):
			return StatusRequested, true
		case "true", string(StatusAdopted):
			return StatusAdopted, true
		}
	}
	return "", false
}

// Pet es una mascota publicada para adopción.
type Pet struct {
	ID         string
	OwnerEmail string

	Name     string
	Age      int
	Category string // dog, cat, rabbit...
	Location string
	ImageURL string

	ShortDescription string
	LongDescription  string

	Status AdoptionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
