package dto

import (
	"time"

	"github.com/stayloop/stayloop/internal/domain/tenant"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"required,max=255"`
}

func (r *CreateTenantRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateTenantRequest) ToTenant() *tenant.Tenant {
	now := time.Now().UTC()
	return &tenant.Tenant{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT),
		Name:      r.Name,
		Slug:      r.Slug,
		Status:    types.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type TenantResponse struct {
	*tenant.Tenant
}
