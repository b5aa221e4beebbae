package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/types"
)

// Event is a scheduled, ticketed happening at a destination.
type Event struct {
	ID            string           `db:"id" json:"id"`
	DestinationID string           `db:"destination_id" json:"destination_id"`
	Name          string           `db:"name" json:"name"`
	Description   string           `db:"description" json:"description"`
	StartsAt      time.Time        `db:"starts_at" json:"starts_at"`
	EndsAt        time.Time        `db:"ends_at" json:"ends_at"`
	Capacity      int              `db:"capacity" json:"capacity"`
	TicketPrice   decimal.Decimal  `db:"ticket_price" json:"ticket_price"`
	CurrencyCode  string           `db:"currency_code" json:"currency_code"`
	Visibility    types.Visibility `db:"visibility" json:"visibility"`

	types.BaseModel
}
