package tenant

import (
	"time"

	"github.com/stayloop/stayloop/internal/types"
)

// Tenant is a platform customer (an agency or property-management company).
// It is the scoping root for every other entity and is itself unscoped.
type Tenant struct {
	ID        string       `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Slug      string       `db:"slug" json:"slug"`
	Status    types.Status `db:"status" json:"status"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}
