package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stayloop/stayloop/internal/types"
)

// memoryStore is a generic in-memory table with the same envelope semantics
// as the sql-backed repositories: tenant scoping, soft-delete exclusion on
// list/find/count, soft-deleted rows visible to get-by-id. Entity stores
// embed it and provide the accessors.
type memoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]*T

	// id returns the primary key.
	id func(*T) string
	// base returns the audit envelope; nil for unscoped entities.
	base func(*T) *types.BaseModel
	// fields maps the entity onto its filterable columns.
	fields func(*T) map[string]any
	// apply writes a column change set onto the entity.
	apply func(*T, map[string]any)
}

func newMemoryStore[T any](
	id func(*T) string,
	base func(*T) *types.BaseModel,
	fields func(*T) map[string]any,
	apply func(*T, map[string]any),
) *memoryStore[T] {
	return &memoryStore[T]{
		items:  make(map[string]*T),
		id:     id,
		base:   base,
		fields: fields,
		apply:  apply,
	}
}

func (s *memoryStore[T]) inTenant(ctx context.Context, item *T) bool {
	if s.base == nil {
		return true
	}
	b := s.base(item)
	tenantID := types.GetTenantID(ctx)
	return tenantID == "" || b.TenantID == tenantID
}

func (s *memoryStore[T]) deleted(item *T) bool {
	if s.base == nil {
		return false
	}
	return s.base(item).DeletedAt != nil
}

func (s *memoryStore[T]) matches(ctx context.Context, item *T, f types.Filter) bool {
	if !s.inTenant(ctx, item) {
		return false
	}
	if !f.IncludeDeleted && s.deleted(item) {
		return false
	}
	values := s.fields(item)
	if s.base != nil {
		b := s.base(item)
		values["tenant_id"] = b.TenantID
		values["status"] = b.Status
		values["created_by"] = b.CreatedBy
		values["updated_by"] = b.UpdatedBy
	}
	for _, k := range f.Keys() {
		if values[k] != f.Eq[k] {
			return false
		}
	}
	return true
}

func (s *memoryStore[T]) Create(ctx context.Context, item *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *item
	s.items[s.id(item)] = &copied
	out := copied
	return &out, nil
}

func (s *memoryStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok || !s.inTenant(ctx, item) {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (s *memoryStore[T]) FindOne(ctx context.Context, f types.Filter) (*T, error) {
	matched, err := s.List(ctx, f)
	if err != nil || len(matched) == 0 {
		return nil, err
	}
	return matched[0], nil
}

func (s *memoryStore[T]) List(ctx context.Context, f types.Filter) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*T
	for _, item := range s.items {
		if s.matches(ctx, item, f) {
			copied := *item
			result = append(result, &copied)
		}
	}
	s.sortByCreated(result, "desc")
	return result, nil
}

func (s *memoryStore[T]) ListPage(ctx context.Context, f types.Filter, p types.Pagination) (*types.ListResult[*T], error) {
	all, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	s.sortByCreated(all, p.GetOrder())

	total := len(all)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Limit()
	if p.Limit() <= 0 || end > total {
		end = total
	}
	return &types.ListResult[*T]{Items: all[start:end], Total: total}, nil
}

// sortByCreated orders by the envelope created_at with the id as tiebreaker,
// matching the default ordering of the sql repositories.
func (s *memoryStore[T]) sortByCreated(items []*T, order string) {
	sort.SliceStable(items, func(i, j int) bool {
		var ti, tj time.Time
		if s.base != nil {
			ti = s.base(items[i]).CreatedAt
			tj = s.base(items[j]).CreatedAt
		}
		if ti.Equal(tj) {
			return s.id(items[i]) < s.id(items[j])
		}
		if order == "asc" {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})
}

func (s *memoryStore[T]) Count(ctx context.Context, f types.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		if s.matches(ctx, item, f) {
			count++
		}
	}
	return count, nil
}

func (s *memoryStore[T]) Update(ctx context.Context, f types.Filter, changes map[string]any) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *T
	for _, item := range s.items {
		if !s.matches(ctx, item, f) {
			continue
		}
		s.apply(item, changes)
		if s.base != nil {
			b := s.base(item)
			b.UpdatedAt = time.Now().UTC()
			if userID := types.GetUserID(ctx); userID != "" {
				b.UpdatedBy = userID
			}
		}
		if updated == nil {
			copied := *item
			updated = &copied
		}
	}
	return updated, nil
}

func (s *memoryStore[T]) SoftDelete(ctx context.Context, f types.Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	userID := types.GetUserID(ctx)
	count := 0
	for _, item := range s.items {
		if !s.matches(ctx, item, f) || s.deleted(item) {
			continue
		}
		b := s.base(item)
		b.DeletedAt = &now
		if userID != "" {
			b.DeletedBy = &userID
		}
		count++
	}
	return count, nil
}

func (s *memoryStore[T]) Restore(ctx context.Context, f types.Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		if !s.inTenant(ctx, item) || !s.deleted(item) {
			continue
		}
		withDeleted := f.WithDeleted()
		if !s.matches(ctx, item, withDeleted) {
			continue
		}
		b := s.base(item)
		b.DeletedAt = nil
		b.DeletedBy = nil
		count++
	}
	return count, nil
}

func (s *memoryStore[T]) HardDelete(ctx context.Context, f types.Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, item := range s.items {
		if s.matches(ctx, item, f.WithDeleted()) {
			delete(s.items, id)
			count++
		}
	}
	return count, nil
}

func (s *memoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*T)
}

// Change-set values arrive either as the typed column value or as a plain
// string, depending on which layer built the map. The converters accept both.

func toStatus(v any) types.Status {
	if s, ok := v.(types.Status); ok {
		return s
	}
	return types.Status(v.(string))
}

func toVisibility(v any) types.Visibility {
	if s, ok := v.(types.Visibility); ok {
		return s
	}
	return types.Visibility(v.(string))
}

