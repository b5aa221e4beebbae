package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/stayloop/stayloop/internal/domain/event"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryEventStore is an in-memory implementation of event.Repository.
type InMemoryEventStore struct {
	*memoryStore[event.Event]
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		memoryStore: newMemoryStore(
			func(e *event.Event) string { return e.ID },
			func(e *event.Event) *types.BaseModel { return &e.BaseModel },
			func(e *event.Event) map[string]any {
				return map[string]any{
					"id":             e.ID,
					"destination_id": e.DestinationID,
					"name":           e.Name,
					"visibility":     e.Visibility,
				}
			},
			func(e *event.Event, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "name":
						e.Name = v.(string)
					case "description":
						e.Description = v.(string)
					case "capacity":
						e.Capacity = v.(int)
					case "visibility":
						e.Visibility = toVisibility(v)
					}
				}
			},
		),
	}
}

func (s *InMemoryEventStore) ListUpcoming(ctx context.Context, destinationID string, after time.Time) ([]*event.Event, error) {
	all, err := s.List(ctx, types.NewFilter(map[string]any{"destination_id": destinationID}))
	if err != nil {
		return nil, err
	}
	var result []*event.Event
	for _, e := range all {
		if e.StartsAt.After(after) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartsAt.Before(result[j].StartsAt) })
	return result, nil
}
