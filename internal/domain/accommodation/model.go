package accommodation

import (
	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/domain/tag"
	"github.com/stayloop/stayloop/internal/types"
)

// Relation keys accepted by GetWithRelations.
const (
	RelationDestination = "destination"
	RelationTags        = "tags"
)

// Accommodation is a bookable property owned by a host.
type Accommodation struct {
	ID            string           `db:"id" json:"id"`
	DestinationID string           `db:"destination_id" json:"destination_id"`
	HostID        string           `db:"host_id" json:"host_id"`
	Name          string           `db:"name" json:"name"`
	Summary       string           `db:"summary" json:"summary"`
	MaxGuests     int              `db:"max_guests" json:"max_guests"`
	Bedrooms      int              `db:"bedrooms" json:"bedrooms"`
	NightlyRate   decimal.Decimal  `db:"nightly_rate" json:"nightly_rate"`
	CurrencyCode  string           `db:"currency_code" json:"currency_code"`
	Visibility    types.Visibility `db:"visibility" json:"visibility"`

	types.BaseModel

	// Hydrated by GetWithRelations only; never persisted from here.
	Destination *destination.Destination `db:"-" json:"destination,omitempty"`
	Tags        []*tag.Tag               `db:"-" json:"tags,omitempty"`
}
