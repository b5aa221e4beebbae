package testutil

import (
	"context"

	"github.com/stayloop/stayloop/internal/domain/promotion"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryPromotionStore is an in-memory implementation of
// promotion.Repository.
type InMemoryPromotionStore struct {
	*memoryStore[promotion.Promotion]
}

func NewInMemoryPromotionStore() *InMemoryPromotionStore {
	return &InMemoryPromotionStore{
		memoryStore: newMemoryStore(
			func(p *promotion.Promotion) string { return p.ID },
			func(p *promotion.Promotion) *types.BaseModel { return &p.BaseModel },
			func(p *promotion.Promotion) map[string]any {
				return map[string]any{
					"id":   p.ID,
					"code": p.Code,
					"name": p.Name,
					"type": p.Type,
				}
			},
			func(p *promotion.Promotion, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "name":
						p.Name = v.(string)
					case "total_redemptions":
						p.TotalRedemptions = v.(int)
					}
				}
			},
		),
	}
}

func (s *InMemoryPromotionStore) GetByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	return s.FindOne(ctx, types.NewFilter(map[string]any{"code": code}))
}

func (s *InMemoryPromotionStore) IncrementRedemptions(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	if !ok || !s.inTenant(ctx, p) || s.deleted(p) {
		return ierr.NewError("promotion not found").
			WithHint("Promotion not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	if p.MaxRedemptions != nil && p.TotalRedemptions >= *p.MaxRedemptions {
		return ierr.NewError("promotion not redeemable").
			WithHintf("Promotion %s is missing or fully redeemed", id).
			Mark(ierr.ErrInvalidOperation)
	}
	p.TotalRedemptions++
	return nil
}
