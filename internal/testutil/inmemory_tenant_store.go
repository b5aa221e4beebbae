package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stayloop/stayloop/internal/domain/tenant"
)

// InMemoryTenantStore is an in-memory implementation of tenant.Repository.
// Tenants are unscoped, so there is no tenant or soft-delete filtering.
type InMemoryTenantStore struct {
	mu      sync.RWMutex
	tenants map[string]*tenant.Tenant
}

func NewInMemoryTenantStore() *InMemoryTenantStore {
	return &InMemoryTenantStore{
		tenants: make(map[string]*tenant.Tenant),
	}
}

func (s *InMemoryTenantStore) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *t
	s.tenants[t.ID] = &copied
	out := copied
	return &out, nil
}

func (s *InMemoryTenantStore) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (s *InMemoryTenantStore) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tenants {
		if t.Slug == slug {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *InMemoryTenantStore) List(ctx context.Context) ([]*tenant.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*tenant.Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		copied := *t
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *InMemoryTenantStore) Update(ctx context.Context, id string, changes map[string]any) (*tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, nil
	}
	for k, v := range changes {
		switch k {
		case "name":
			t.Name = v.(string)
		case "slug":
			t.Slug = v.(string)
		case "status":
			t.Status = toStatus(v)
		}
	}
	t.UpdatedAt = time.Now().UTC()
	copied := *t
	return &copied, nil
}

func (s *InMemoryTenantStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = make(map[string]*tenant.Tenant)
}
