package testutil

import (
	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryDestinationStore is an in-memory implementation of
// destination.Repository.
type InMemoryDestinationStore struct {
	*memoryStore[destination.Destination]
}

func NewInMemoryDestinationStore() *InMemoryDestinationStore {
	return &InMemoryDestinationStore{
		memoryStore: newMemoryStore(
			func(d *destination.Destination) string { return d.ID },
			func(d *destination.Destination) *types.BaseModel { return &d.BaseModel },
			func(d *destination.Destination) map[string]any {
				return map[string]any{
					"id":         d.ID,
					"name":       d.Name,
					"slug":       d.Slug,
					"country":    d.Country,
					"region":     d.Region,
					"visibility": d.Visibility,
				}
			},
			func(d *destination.Destination, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "name":
						d.Name = v.(string)
					case "region":
						d.Region = v.(string)
					case "description":
						d.Description = v.(string)
					case "visibility":
						d.Visibility = toVisibility(v)
					}
				}
			},
		),
	}
}
