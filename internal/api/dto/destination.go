package dto

import (
	"context"

	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateDestinationRequest struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Slug        string           `json:"slug" validate:"required,max=255"`
	Country     string           `json:"country" validate:"required,len=2"`
	Region      string           `json:"region" validate:"max=255"`
	Description string           `json:"description" validate:"max=5000"`
	Visibility  types.Visibility `json:"visibility"`
}

func (r *CreateDestinationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Visibility != "" {
		return r.Visibility.Validate()
	}
	return nil
}

func (r *CreateDestinationRequest) ToDestination(ctx context.Context) *destination.Destination {
	visibility := r.Visibility
	if visibility == "" {
		visibility = types.VisibilityDraft
	}
	return &destination.Destination{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DESTINATION),
		Name:        r.Name,
		Slug:        r.Slug,
		Country:     r.Country,
		Region:      r.Region,
		Description: r.Description,
		Visibility:  visibility,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateDestinationRequest struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,max=255"`
	Region      *string           `json:"region,omitempty" validate:"omitempty,max=255"`
	Description *string           `json:"description,omitempty" validate:"omitempty,max=5000"`
	Visibility  *types.Visibility `json:"visibility,omitempty"`
}

func (r *UpdateDestinationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Visibility != nil {
		return r.Visibility.Validate()
	}
	return nil
}

func (r *UpdateDestinationRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Region != nil {
		changes["region"] = *r.Region
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Visibility != nil {
		changes["visibility"] = *r.Visibility
	}
	return changes
}

type DestinationResponse struct {
	*destination.Destination
}

type ListDestinationsResponse = types.ListResponse[*DestinationResponse]
