package dto

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/accommodation"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateAccommodationRequest struct {
	DestinationID string           `json:"destination_id" validate:"required"`
	Name          string           `json:"name" validate:"required,max=255"`
	Summary       string           `json:"summary" validate:"max=2000"`
	MaxGuests     int              `json:"max_guests" validate:"required,min=1"`
	Bedrooms      int              `json:"bedrooms" validate:"min=0"`
	NightlyRate   decimal.Decimal  `json:"nightly_rate" validate:"required"`
	CurrencyCode  string           `json:"currency_code" validate:"required,len=3"`
	Visibility    types.Visibility `json:"visibility"`
	TagIDs        []string         `json:"tag_ids"`
}

func (r *CreateAccommodationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Visibility != "" {
		return r.Visibility.Validate()
	}
	return nil
}

func (r *CreateAccommodationRequest) ToAccommodation(ctx context.Context) *accommodation.Accommodation {
	visibility := r.Visibility
	if visibility == "" {
		visibility = types.VisibilityDraft
	}
	return &accommodation.Accommodation{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACCOMMODATION),
		DestinationID: r.DestinationID,
		HostID:        types.GetUserID(ctx),
		Name:          r.Name,
		Summary:       r.Summary,
		MaxGuests:     r.MaxGuests,
		Bedrooms:      r.Bedrooms,
		NightlyRate:   r.NightlyRate,
		CurrencyCode:  r.CurrencyCode,
		Visibility:    visibility,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateAccommodationRequest struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,max=255"`
	Summary     *string           `json:"summary,omitempty" validate:"omitempty,max=2000"`
	MaxGuests   *int              `json:"max_guests,omitempty" validate:"omitempty,min=1"`
	Bedrooms    *int              `json:"bedrooms,omitempty" validate:"omitempty,min=0"`
	NightlyRate *decimal.Decimal  `json:"nightly_rate,omitempty"`
	Visibility  *types.Visibility `json:"visibility,omitempty"`
}

func (r *UpdateAccommodationRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Visibility != nil {
		return r.Visibility.Validate()
	}
	return nil
}

// Changes renders the sparse update as a column change set.
func (r *UpdateAccommodationRequest) Changes() map[string]any {
	changes := map[string]any{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Summary != nil {
		changes["summary"] = *r.Summary
	}
	if r.MaxGuests != nil {
		changes["max_guests"] = *r.MaxGuests
	}
	if r.Bedrooms != nil {
		changes["bedrooms"] = *r.Bedrooms
	}
	if r.NightlyRate != nil {
		changes["nightly_rate"] = *r.NightlyRate
	}
	if r.Visibility != nil {
		changes["visibility"] = *r.Visibility
	}
	return changes
}

type SearchAccommodationsRequest struct {
	DestinationID string            `json:"destination_id" form:"destination_id"`
	HostID        string            `json:"host_id" form:"host_id"`
	Visibility    types.Visibility  `json:"visibility" form:"visibility"`
	MaxGuests     int               `json:"max_guests" form:"max_guests" validate:"min=0"`
	QueryFilter   types.QueryFilter `json:",inline"`
}

type AccommodationResponse struct {
	*accommodation.Accommodation
}

type ListAccommodationsResponse = types.ListResponse[*AccommodationResponse]
