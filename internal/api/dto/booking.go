package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/domain/booking"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateBookingRequest struct {
	AccommodationID string    `json:"accommodation_id" validate:"required"`
	CheckIn         time.Time `json:"check_in" validate:"required"`
	CheckOut        time.Time `json:"check_out" validate:"required"`
	Guests          int       `json:"guests" validate:"required,min=1"`
	PromotionCode   string    `json:"promotion_code,omitempty"`
}

func (r *CreateBookingRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.CheckOut.After(r.CheckIn) {
		return ierr.NewError("check_out must be after check_in").
			WithHint("Check-out date must be after check-in date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateBookingRequest) ToBooking(ctx context.Context, total decimal.Decimal, currency string) *booking.Booking {
	return &booking.Booking{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BOOKING),
		AccommodationID: r.AccommodationID,
		GuestID:         types.GetUserID(ctx),
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Guests:          r.Guests,
		TotalAmount:     total,
		CurrencyCode:    currency,
		BookingStatus:   types.BookingStatusPending,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type BookingResponse struct {
	*booking.Booking
}

type ListBookingsResponse = types.ListResponse[*BookingResponse]

type BookingRevenueResponse struct {
	AccommodationID string          `json:"accommodation_id"`
	From            time.Time       `json:"from"`
	To              time.Time       `json:"to"`
	Total           decimal.Decimal `json:"total"`
}
