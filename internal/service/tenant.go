package service

import (
	"context"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/tenant"
	ierr "github.com/stayloop/stayloop/internal/errors"
)

const entityTenant = "tenant"

type TenantService interface {
	Create(ctx context.Context, req *dto.CreateTenantRequest) (*tenant.Tenant, error)
	Get(ctx context.Context, id string) (*tenant.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error)
	List(ctx context.Context) ([]*tenant.Tenant, error)
}

type tenantService struct {
	ServiceParams
}

func NewTenantService(params ServiceParams) TenantService {
	return &tenantService{ServiceParams: params}
}

func (s *tenantService) Create(ctx context.Context, req *dto.CreateTenantRequest) (*tenant.Tenant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityTenant, ActionCreate, ""); err != nil {
		return nil, err
	}

	existing, err := s.TenantRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("tenant slug taken").
			WithHintf("A tenant with slug %q already exists", req.Slug).
			Mark(ierr.ErrAlreadyExists)
	}
	return s.TenantRepo.Create(ctx, req.ToTenant())
}

func (s *tenantService) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	t, err := s.TenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound(entityTenant, id)
	}
	return t, nil
}

func (s *tenantService) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	t, err := s.TenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound(entityTenant, slug)
	}
	return t, nil
}

func (s *tenantService) List(ctx context.Context) ([]*tenant.Tenant, error) {
	if err := s.authorize(ctx, entityTenant, ActionRead, ""); err != nil {
		return nil, err
	}
	return s.TenantRepo.List(ctx)
}
