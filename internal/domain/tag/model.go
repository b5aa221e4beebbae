package tag

import "github.com/stayloop/stayloop/internal/types"

// Tag labels accommodations for discovery (e.g. "beachfront", "pet-friendly").
type Tag struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Slug string `db:"slug" json:"slug"`

	types.BaseModel
}
