package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/booking"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/internal/types"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceService
	booking *booking.Booking
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceService(newTestParams(&s.BaseServiceTestSuite))

	checkIn := time.Now().UTC().AddDate(0, 0, 7)
	b := &booking.Booking{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BOOKING),
		AccommodationID: "accom_test",
		GuestID:         types.DefaultUserID,
		CheckIn:         checkIn,
		CheckOut:        checkIn.AddDate(0, 0, 3),
		Guests:          2,
		TotalAmount:     decimal.NewFromInt(300),
		CurrencyCode:    "eur",
		BookingStatus:   types.BookingStatusConfirmed,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	var err error
	s.booking, err = s.GetStores().BookingRepo.Create(s.GetContext(), b)
	s.Require().NoError(err)
}

func (s *InvoiceServiceSuite) createRequest() *dto.CreateInvoiceRequest {
	return &dto.CreateInvoiceRequest{
		CustomerID:   types.DefaultUserID,
		BookingID:    &s.booking.ID,
		CurrencyCode: "eur",
		LineItems: []*dto.CreateInvoiceLineItemRequest{
			{Description: "3 nights", Quantity: 3, UnitPrice: decimal.NewFromInt(100)},
			{Description: "cleaning fee", Quantity: 1, UnitPrice: decimal.NewFromInt(40)},
		},
	}
}

func (s *InvoiceServiceSuite) TestCreate() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.True(strings.HasPrefix(inv.InvoiceNumber, "INV-"), "got %s", inv.InvoiceNumber)
	s.Equal(types.InvoiceStatusDraft, inv.InvoiceStatus)
	s.Equal(types.PaymentStatusPending, inv.PaymentStatus)
	s.True(inv.AmountDue.Equal(decimal.NewFromInt(340)), "got %s", inv.AmountDue)
	s.Len(inv.LineItems, 2)
}

func (s *InvoiceServiceSuite) TestCreateWithoutTargetRejected() {
	req := s.createRequest()
	req.BookingID = nil

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestCreateUnknownBooking() {
	req := s.createRequest()
	missing := "book_missing"
	req.BookingID = &missing

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestGetHydratesLineItems() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	got, err := s.service.Get(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Len(got.LineItems, 2)
}

func (s *InvoiceServiceSuite) TestFinalize() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	finalized, err := s.service.Finalize(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusFinalized, finalized.InvoiceStatus)

	// Only drafts can finalize.
	_, err = s.service.Finalize(s.GetContext(), inv.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestRecordPaymentRequiresFinalized() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Status: types.PaymentStatusSucceeded,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestRecordPaymentSettlesAmountDue() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)
	_, err = s.service.Finalize(s.GetContext(), inv.ID)
	s.Require().NoError(err)

	paid, err := s.service.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Status: types.PaymentStatusSucceeded,
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusSucceeded, paid.PaymentStatus)
	s.True(paid.AmountPaid.Equal(inv.AmountDue), "got %s", paid.AmountPaid)
}

func (s *InvoiceServiceSuite) TestRecordPaymentFailedThenRetried() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)
	_, err = s.service.Finalize(s.GetContext(), inv.ID)
	s.Require().NoError(err)

	failed, err := s.service.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Status: types.PaymentStatusFailed,
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusFailed, failed.PaymentStatus)
	s.True(failed.AmountPaid.IsZero())

	// A failed payment cannot jump straight to succeeded.
	_, err = s.service.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Status: types.PaymentStatusSucceeded,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestVoid() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	voided, err := s.service.Void(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusVoided, voided.InvoiceStatus)

	// Voiding twice is a no-op.
	again, err := s.service.Void(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusVoided, again.InvoiceStatus)
}

func (s *InvoiceServiceSuite) TestVoidPaidInvoiceRejected() {
	inv, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)
	_, err = s.service.Finalize(s.GetContext(), inv.ID)
	s.Require().NoError(err)
	_, err = s.service.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Status: types.PaymentStatusSucceeded,
	})
	s.Require().NoError(err)

	_, err = s.service.Void(s.GetContext(), inv.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
