package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/event"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateEventRequest struct {
	DestinationID string           `json:"destination_id" validate:"required"`
	Name          string           `json:"name" validate:"required,max=255"`
	Description   string           `json:"description" validate:"max=5000"`
	StartsAt      time.Time        `json:"starts_at" validate:"required"`
	EndsAt        time.Time        `json:"ends_at" validate:"required"`
	Capacity      int              `json:"capacity" validate:"required,min=1"`
	TicketPrice   decimal.Decimal  `json:"ticket_price"`
	CurrencyCode  string           `json:"currency_code" validate:"required,len=3"`
	Visibility    types.Visibility `json:"visibility"`
}

func (r *CreateEventRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.EndsAt.After(r.StartsAt) {
		return ierr.NewError("ends_at must be after starts_at").
			WithHint("Event end time must be after its start time").
			Mark(ierr.ErrValidation)
	}
	if r.Visibility != "" {
		return r.Visibility.Validate()
	}
	return nil
}

func (r *CreateEventRequest) ToEvent(ctx context.Context) *event.Event {
	visibility := r.Visibility
	if visibility == "" {
		visibility = types.VisibilityDraft
	}
	return &event.Event{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		DestinationID: r.DestinationID,
		Name:          r.Name,
		Description:   r.Description,
		StartsAt:      r.StartsAt,
		EndsAt:        r.EndsAt,
		Capacity:      r.Capacity,
		TicketPrice:   r.TicketPrice,
		CurrencyCode:  r.CurrencyCode,
		Visibility:    visibility,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type EventResponse struct {
	*event.Event
}

type ListEventsResponse = types.ListResponse[*EventResponse]
