package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/accommodation"
	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/domain/invoice"
	"github.com/stayloop/stayloop/internal/domain/promotion"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/internal/types"
)

type BookingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BookingService
	accom   *accommodation.Accommodation
}

func TestBookingService(t *testing.T) {
	suite.Run(t, new(BookingServiceSuite))
}

func (s *BookingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewBookingService(newTestParams(&s.BaseServiceTestSuite))

	d := &destination.Destination{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DESTINATION),
		Name:      "Lisbon",
		Slug:      "lisbon",
		Country:   "PT",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	_, err := s.GetStores().DestinationRepo.Create(s.GetContext(), d)
	s.Require().NoError(err)

	a := &accommodation.Accommodation{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACCOMMODATION),
		DestinationID: d.ID,
		HostID:        "user_host",
		Name:          "Seafront Loft",
		MaxGuests:     4,
		NightlyRate:   decimal.NewFromInt(100),
		CurrencyCode:  "eur",
		Visibility:    types.VisibilityPublic,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.accom, err = s.GetStores().AccommodationRepo.Create(s.GetContext(), a)
	s.Require().NoError(err)
}

func (s *BookingServiceSuite) stay(daysFromNow, nights int) (time.Time, time.Time) {
	checkIn := time.Now().UTC().AddDate(0, 0, daysFromNow).Truncate(24 * time.Hour)
	return checkIn, checkIn.AddDate(0, 0, nights)
}

func (s *BookingServiceSuite) createRequest(daysFromNow, nights int) *dto.CreateBookingRequest {
	checkIn, checkOut := s.stay(daysFromNow, nights)
	return &dto.CreateBookingRequest{
		AccommodationID: s.accom.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          2,
	}
}

func (s *BookingServiceSuite) TestCreate() {
	b, err := s.service.Create(s.GetContext(), s.createRequest(7, 3))
	s.NoError(err)
	s.Equal(types.BookingStatusPending, b.BookingStatus)
	s.Equal("eur", b.CurrencyCode)
	s.Equal(3, b.Nights())
	s.True(b.TotalAmount.Equal(decimal.NewFromInt(300)), "got %s", b.TotalAmount)
}

func (s *BookingServiceSuite) TestCreateRequiresBookingPermission() {
	ctx := testutil.ContextWithActor(s.GetContext(), "user_viewer", "viewer")

	_, err := s.service.Create(ctx, s.createRequest(7, 2))
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))

	result, err := s.GetStores().BookingRepo.ListPage(s.GetContext(), types.Filter{}, types.Pagination{})
	s.NoError(err)
	s.Equal(0, result.Total)

	// A role holding booking:create passes the same gate.
	ctx = testutil.ContextWithActor(s.GetContext(), "user_traveller", "host")
	_, err = s.service.Create(ctx, s.createRequest(7, 2))
	s.NoError(err)
}

func (s *BookingServiceSuite) TestCreateTooManyGuests() {
	req := s.createRequest(7, 2)
	req.Guests = 5

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *BookingServiceSuite) TestCreateCheckOutBeforeCheckIn() {
	req := s.createRequest(7, 2)
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *BookingServiceSuite) TestCreateOverlapRejected() {
	_, err := s.service.Create(s.GetContext(), s.createRequest(7, 4))
	s.Require().NoError(err)

	// Second stay starts inside the first one.
	_, err = s.service.Create(s.GetContext(), s.createRequest(9, 3))
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *BookingServiceSuite) TestCreateBackToBackAllowed() {
	_, err := s.service.Create(s.GetContext(), s.createRequest(7, 2))
	s.Require().NoError(err)

	// Check-in on the previous check-out day does not overlap.
	_, err = s.service.Create(s.GetContext(), s.createRequest(9, 2))
	s.NoError(err)
}

func (s *BookingServiceSuite) TestCreateAfterCancellationAllowed() {
	b, err := s.service.Create(s.GetContext(), s.createRequest(7, 3))
	s.Require().NoError(err)

	_, err = s.service.Cancel(s.GetContext(), b.ID)
	s.Require().NoError(err)

	_, err = s.service.Create(s.GetContext(), s.createRequest(7, 3))
	s.NoError(err)
}

func (s *BookingServiceSuite) TestCreateWithPromotion() {
	p := &promotion.Promotion{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROMOTION),
		Code:      "SUMMER20",
		Name:      "Summer deal",
		Type:      promotion.PromotionTypePercentage,
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	p.PercentageOff = lo.ToPtr(decimal.NewFromInt(20))
	_, err := s.GetStores().PromotionRepo.Create(s.GetContext(), p)
	s.Require().NoError(err)

	req := s.createRequest(7, 3)
	req.PromotionCode = "SUMMER20"

	b, err := s.service.Create(s.GetContext(), req)
	s.NoError(err)
	s.True(b.TotalAmount.Equal(decimal.NewFromInt(240)), "got %s", b.TotalAmount)

	stored, err := s.GetStores().PromotionRepo.GetByID(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(1, stored.TotalRedemptions)
}

func (s *BookingServiceSuite) TestCreateWithUnknownPromotion() {
	req := s.createRequest(7, 3)
	req.PromotionCode = "NOPE"

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *BookingServiceSuite) TestLifecycleTransitions() {
	b, err := s.service.Create(s.GetContext(), s.createRequest(7, 2))
	s.Require().NoError(err)

	confirmed, err := s.service.Confirm(s.GetContext(), b.ID)
	s.NoError(err)
	s.Equal(types.BookingStatusConfirmed, confirmed.BookingStatus)

	completed, err := s.service.Complete(s.GetContext(), b.ID)
	s.NoError(err)
	s.Equal(types.BookingStatusCompleted, completed.BookingStatus)

	// Completed is terminal; cancellation must fail and leave the row alone.
	_, err = s.service.Cancel(s.GetContext(), b.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	stored, err := s.GetStores().BookingRepo.GetByID(s.GetContext(), b.ID)
	s.NoError(err)
	s.Equal(types.BookingStatusCompleted, stored.BookingStatus)
}

func (s *BookingServiceSuite) TestCompleteWithoutConfirmRejected() {
	b, err := s.service.Create(s.GetContext(), s.createRequest(7, 2))
	s.Require().NoError(err)

	_, err = s.service.Complete(s.GetContext(), b.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *BookingServiceSuite) TestRevenueSumsPaidInvoices() {
	b, err := s.service.Create(s.GetContext(), s.createRequest(7, 3))
	s.Require().NoError(err)

	inv := &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE),
		CustomerID:    types.DefaultUserID,
		BookingID:     &b.ID,
		InvoiceStatus: types.InvoiceStatusFinalized,
		PaymentStatus: types.PaymentStatusSucceeded,
		CurrencyCode:  "eur",
		AmountDue:     decimal.NewFromInt(300),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	items := []*invoice.LineItem{{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE),
		Description: "3 nights",
		Quantity:    3,
		UnitPrice:   decimal.NewFromInt(100),
		Amount:      decimal.NewFromInt(300),
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}}
	_, err = s.GetStores().InvoiceRepo.CreateWithLineItems(s.GetContext(), inv, items)
	s.Require().NoError(err)

	now := time.Now().UTC()
	total, err := s.service.Revenue(s.GetContext(), s.accom.ID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromInt(300)), "got %s", total)

	// Outside the period the revenue is zero.
	total, err = s.service.Revenue(s.GetContext(), s.accom.ID, now.AddDate(0, 0, 1), now.AddDate(0, 0, 2))
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *BookingServiceSuite) TestTransitionNotFound() {
	_, err := s.service.Confirm(s.GetContext(), "book_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
