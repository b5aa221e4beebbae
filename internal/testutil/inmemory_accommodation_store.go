package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/accommodation"
	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/domain/tag"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryAccommodationStore is an in-memory implementation of
// accommodation.Repository. Relation hydration reads from the destination
// and tag stores so the wired graph behaves like the sql repositories.
type InMemoryAccommodationStore struct {
	*memoryStore[accommodation.Accommodation]

	destinations destination.Repository
	tags         tag.Repository

	linkMu   sync.RWMutex
	tagLinks map[string][]string
}

func NewInMemoryAccommodationStore(
	destinations destination.Repository,
	tags tag.Repository,
) *InMemoryAccommodationStore {
	return &InMemoryAccommodationStore{
		memoryStore: newMemoryStore(
			func(a *accommodation.Accommodation) string { return a.ID },
			func(a *accommodation.Accommodation) *types.BaseModel { return &a.BaseModel },
			func(a *accommodation.Accommodation) map[string]any {
				return map[string]any{
					"id":             a.ID,
					"destination_id": a.DestinationID,
					"host_id":        a.HostID,
					"name":           a.Name,
					"max_guests":     a.MaxGuests,
					"currency_code":  a.CurrencyCode,
					"visibility":     a.Visibility,
				}
			},
			func(a *accommodation.Accommodation, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "name":
						a.Name = v.(string)
					case "summary":
						a.Summary = v.(string)
					case "max_guests":
						a.MaxGuests = v.(int)
					case "bedrooms":
						a.Bedrooms = v.(int)
					case "nightly_rate":
						a.NightlyRate = v.(decimal.Decimal)
					case "visibility":
						a.Visibility = toVisibility(v)
					}
				}
			},
		),
		destinations: destinations,
		tags:         tags,
		tagLinks:     make(map[string][]string),
	}
}

func (s *InMemoryAccommodationStore) GetWithRelations(ctx context.Context, id string, relations []string) (*accommodation.Accommodation, error) {
	for _, rel := range relations {
		if rel != accommodation.RelationDestination && rel != accommodation.RelationTags {
			return nil, ierr.NewError("unknown relation").
				WithHintf("Relation %q is not defined for accommodation", rel).
				WithReportableDetails(map[string]any{"relation": rel}).
				Mark(ierr.ErrValidation)
		}
	}

	a, err := s.GetByID(ctx, id)
	if err != nil || a == nil {
		return a, err
	}

	for _, rel := range relations {
		switch rel {
		case accommodation.RelationDestination:
			d, err := s.destinations.GetByID(ctx, a.DestinationID)
			if err != nil {
				return nil, err
			}
			a.Destination = d
		case accommodation.RelationTags:
			tags, err := s.loadTags(ctx, a.ID)
			if err != nil {
				return nil, err
			}
			a.Tags = tags
		}
	}
	return a, nil
}

func (s *InMemoryAccommodationStore) loadTags(ctx context.Context, accommodationID string) ([]*tag.Tag, error) {
	s.linkMu.RLock()
	ids := append([]string(nil), s.tagLinks[accommodationID]...)
	s.linkMu.RUnlock()

	var result []*tag.Tag
	for _, id := range ids {
		t, err := s.tags.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if t != nil && !t.IsDeleted() {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *InMemoryAccommodationStore) Search(ctx context.Context, sq accommodation.SearchQuery) (*types.ListResult[*accommodation.Accommodation], error) {
	eq := map[string]any{}
	if sq.DestinationID != "" {
		eq["destination_id"] = sq.DestinationID
	}
	if sq.HostID != "" {
		eq["host_id"] = sq.HostID
	}
	if sq.Visibility != "" {
		eq["visibility"] = sq.Visibility
	}
	if sq.MaxGuests > 0 {
		eq["max_guests"] = sq.MaxGuests
	}
	return s.ListPage(ctx, types.NewFilter(eq), sq.Pagination)
}

func (s *InMemoryAccommodationStore) ReplaceTags(ctx context.Context, accommodationID string, tagIDs []string) error {
	s.linkMu.Lock()
	defer s.linkMu.Unlock()
	s.tagLinks[accommodationID] = append([]string(nil), tagIDs...)
	return nil
}

// TagIDs returns the linked tag ids for assertions.
func (s *InMemoryAccommodationStore) TagIDs(accommodationID string) []string {
	s.linkMu.RLock()
	defer s.linkMu.RUnlock()
	return append([]string(nil), s.tagLinks[accommodationID]...)
}
