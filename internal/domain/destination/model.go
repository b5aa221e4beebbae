package destination

import "github.com/stayloop/stayloop/internal/types"

// Destination is a bookable location grouping accommodations and events.
type Destination struct {
	ID          string           `db:"id" json:"id"`
	Name        string           `db:"name" json:"name"`
	Slug        string           `db:"slug" json:"slug"`
	Country     string           `db:"country" json:"country"`
	Region      string           `db:"region" json:"region"`
	Description string           `db:"description" json:"description"`
	Visibility  types.Visibility `db:"visibility" json:"visibility"`

	types.BaseModel
}
