package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/booking"
	"github.com/stayloop/stayloop/internal/domain/promotion"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

const entityBooking = "booking"

type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*booking.Booking, error)
	Get(ctx context.Context, id string) (*booking.Booking, error)
	List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*booking.Booking], error)
	Confirm(ctx context.Context, id string) (*booking.Booking, error)
	Complete(ctx context.Context, id string) (*booking.Booking, error)
	Cancel(ctx context.Context, id string) (*booking.Booking, error)
	Delete(ctx context.Context, id string) (int, error)
	Revenue(ctx context.Context, accommodationID string, from, to time.Time) (decimal.Decimal, error)
}

type bookingService struct {
	ServiceParams
	hooks Hooks[booking.Booking]
}

func NewBookingService(params ServiceParams) BookingService {
	return &bookingService{ServiceParams: params}
}

func NewBookingServiceWithHooks(params ServiceParams, hooks Hooks[booking.Booking]) BookingService {
	return &bookingService{ServiceParams: params, hooks: hooks}
}

// Create prices the stay from the accommodation's nightly rate, applies an
// optional promotion code, and rejects stays overlapping an existing
// non-cancelled booking.
func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*booking.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityBooking, ActionCreate, ""); err != nil {
		return nil, err
	}

	accom, err := s.AccommodationRepo.GetByID(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}
	if accom == nil || accom.IsDeleted() {
		return nil, notFound("accommodation", req.AccommodationID)
	}
	if req.Guests > accom.MaxGuests {
		return nil, ierr.NewError("too many guests").
			WithHintf("This accommodation sleeps at most %d guests", accom.MaxGuests).
			Mark(ierr.ErrValidation)
	}

	existing, err := s.BookingRepo.ListInRange(ctx, req.AccommodationID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ierr.NewError("dates unavailable").
			WithHint("The accommodation is already booked for part of this stay").
			Mark(ierr.ErrInvalidOperation)
	}

	b := req.ToBooking(ctx, decimal.Zero, accom.CurrencyCode)
	total := accom.NightlyRate.Mul(decimal.NewFromInt(int64(b.Nights())))

	if req.PromotionCode != "" {
		total, err = s.applyPromotion(ctx, req.PromotionCode, total, accom.CurrencyCode)
		if err != nil {
			return nil, err
		}
	}
	b.TotalAmount = total

	if err := runBefore(ctx, s.hooks.BeforeCreate, b); err != nil {
		return nil, err
	}
	created, err := s.BookingRepo.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	if err := runAfter(ctx, s.hooks.AfterCreate, created); err != nil {
		return created, err
	}
	return created, nil
}

func (s *bookingService) applyPromotion(ctx context.Context, code string, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	promo, err := s.PromotionRepo.GetByCode(ctx, code)
	if err != nil {
		return amount, err
	}
	if promo == nil || !promo.IsRedeemable(time.Now().UTC()) {
		return amount, ierr.NewError("promotion not redeemable").
			WithHintf("Promotion code %q cannot be redeemed", code).
			Mark(ierr.ErrInvalidOperation)
	}
	if ok, reason := promo.Rules.Eval(promotion.Purchase{
		Amount:       amount,
		CurrencyCode: currency,
		ActorID:      types.GetUserID(ctx),
	}); !ok {
		return amount, ierr.NewError("promotion not eligible").
			WithHint(reason).
			Mark(ierr.ErrInvalidOperation)
	}
	if err := s.PromotionRepo.IncrementRedemptions(ctx, promo.ID); err != nil {
		return amount, err
	}
	return promo.ApplyDiscount(amount), nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*booking.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound(entityBooking, id)
	}
	if err := s.authorize(ctx, entityBooking, ActionRead, b.GuestID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*booking.Booking], error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	eq := map[string]any{}
	if filter.Status != nil {
		eq["status"] = *filter.Status
	}
	return s.BookingRepo.ListPage(ctx, types.NewFilter(eq), filter.Pagination())
}

func (s *bookingService) Confirm(ctx context.Context, id string) (*booking.Booking, error) {
	return s.transition(ctx, id, types.BookingStatusConfirmed)
}

func (s *bookingService) Complete(ctx context.Context, id string) (*booking.Booking, error) {
	return s.transition(ctx, id, types.BookingStatusCompleted)
}

func (s *bookingService) Cancel(ctx context.Context, id string) (*booking.Booking, error) {
	return s.transition(ctx, id, types.BookingStatusCancelled)
}

// transition validates the status change against the allow-list before any
// write; an invalid transition never touches storage.
func (s *bookingService) transition(ctx context.Context, id string, to types.BookingStatus) (*booking.Booking, error) {
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound(entityBooking, id)
	}
	if err := s.authorize(ctx, entityBooking, ActionUpdate, b.GuestID); err != nil {
		return nil, err
	}
	if !b.BookingStatus.CanTransition(to) {
		return nil, ierr.NewError("invalid booking transition").
			WithHintf("A %s booking cannot move to %s", b.BookingStatus, to).
			WithReportableDetails(map[string]any{
				"from": b.BookingStatus,
				"to":   to,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	if err := runBefore(ctx, s.hooks.BeforeUpdate, b); err != nil {
		return nil, err
	}
	updated, err := s.BookingRepo.Update(ctx, types.ByID(id), map[string]any{"booking_status": to})
	if err != nil {
		return nil, err
	}
	if err := runAfter(ctx, s.hooks.AfterUpdate, updated); err != nil {
		return updated, err
	}
	return updated, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (int, error) {
	b, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if b == nil {
		return 0, notFound(entityBooking, id)
	}
	if err := s.authorize(ctx, entityBooking, ActionDelete, b.GuestID); err != nil {
		return 0, err
	}
	if b.IsDeleted() {
		return 0, nil
	}
	return s.BookingRepo.SoftDelete(ctx, types.ByID(id))
}

func (s *bookingService) Revenue(ctx context.Context, accommodationID string, from, to time.Time) (decimal.Decimal, error) {
	accom, err := s.AccommodationRepo.GetByID(ctx, accommodationID)
	if err != nil {
		return decimal.Zero, err
	}
	if accom == nil {
		return decimal.Zero, notFound("accommodation", accommodationID)
	}
	if err := s.authorize(ctx, entityBooking, ActionRead, accom.HostID); err != nil {
		return decimal.Zero, err
	}
	return s.BookingRepo.TotalRevenue(ctx, accommodationID, from, to)
}
