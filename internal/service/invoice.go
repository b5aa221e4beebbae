package service

import (
	"context"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/invoice"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

const entityInvoice = "invoice"

type InvoiceService interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*invoice.Invoice, error)
	Get(ctx context.Context, id string) (*invoice.Invoice, error)
	List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*invoice.Invoice], error)
	Finalize(ctx context.Context, id string) (*invoice.Invoice, error)
	Void(ctx context.Context, id string) (*invoice.Invoice, error)
	RecordPayment(ctx context.Context, id string, req *dto.RecordPaymentRequest) (*invoice.Invoice, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{ServiceParams: params}
}

// Create builds a draft invoice numbered INV-<shortid> with amount_due
// summed from line items, written atomically with them.
func (s *invoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*invoice.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityInvoice, ActionCreate, ""); err != nil {
		return nil, err
	}

	if req.BookingID != nil {
		b, err := s.BookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, notFound("booking", *req.BookingID)
		}
	}
	if req.SubscriptionID != nil {
		sub, err := s.SubscriptionRepo.GetByID(ctx, *req.SubscriptionID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, notFound("subscription", *req.SubscriptionID)
		}
	}

	items := make([]*invoice.LineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		items[i] = li.ToLineItem(ctx)
	}

	inv := &invoice.Invoice{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber:  types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE),
		CustomerID:     req.CustomerID,
		BookingID:      req.BookingID,
		SubscriptionID: req.SubscriptionID,
		InvoiceStatus:  types.InvoiceStatusDraft,
		PaymentStatus:  types.PaymentStatusPending,
		CurrencyCode:   req.CurrencyCode,
		AmountDue:      invoice.Total(items),
		DueDate:        req.DueDate,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	return s.InvoiceRepo.CreateWithLineItems(ctx, inv, items)
}

func (s *invoiceService) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.InvoiceRepo.GetWithLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, notFound(entityInvoice, id)
	}
	if err := s.authorize(ctx, entityInvoice, ActionRead, inv.CustomerID); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*invoice.Invoice], error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	eq := map[string]any{}
	if filter.Status != nil {
		eq["status"] = *filter.Status
	}
	return s.InvoiceRepo.ListPage(ctx, types.NewFilter(eq), filter.Pagination())
}

// Finalize moves a draft invoice to finalized. Only drafts can finalize.
func (s *invoiceService) Finalize(ctx context.Context, id string) (*invoice.Invoice, error) {
	return s.setInvoiceStatus(ctx, id, types.InvoiceStatusDraft, types.InvoiceStatusFinalized)
}

// Void cancels a draft or finalized invoice that has not been paid.
func (s *invoiceService) Void(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.resolve(ctx, id, ActionUpdate)
	if err != nil {
		return nil, err
	}
	if inv.InvoiceStatus == types.InvoiceStatusVoided {
		return inv, nil
	}
	if inv.PaymentStatus == types.PaymentStatusSucceeded {
		return nil, ierr.NewError("cannot void paid invoice").
			WithHint("A paid invoice cannot be voided").
			Mark(ierr.ErrInvalidOperation)
	}
	return s.InvoiceRepo.Update(ctx, types.ByID(id), map[string]any{
		"invoice_status": types.InvoiceStatusVoided,
	})
}

func (s *invoiceService) setInvoiceStatus(ctx context.Context, id string, from, to types.InvoiceStatus) (*invoice.Invoice, error) {
	inv, err := s.resolve(ctx, id, ActionUpdate)
	if err != nil {
		return nil, err
	}
	if inv.InvoiceStatus != from {
		return nil, ierr.NewError("invalid invoice transition").
			WithHintf("A %s invoice cannot move to %s", inv.InvoiceStatus, to).
			Mark(ierr.ErrInvalidOperation)
	}
	return s.InvoiceRepo.Update(ctx, types.ByID(id), map[string]any{"invoice_status": to})
}

// RecordPayment applies a payment-status transition; a succeeded payment
// also settles amount_paid.
func (s *invoiceService) RecordPayment(ctx context.Context, id string, req *dto.RecordPaymentRequest) (*invoice.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.resolve(ctx, id, ActionUpdate)
	if err != nil {
		return nil, err
	}
	if inv.InvoiceStatus != types.InvoiceStatusFinalized {
		return nil, ierr.NewError("invoice not finalized").
			WithHint("Payments can only be recorded against finalized invoices").
			Mark(ierr.ErrInvalidOperation)
	}
	if !inv.PaymentStatus.CanTransition(req.Status) {
		return nil, ierr.NewError("invalid payment transition").
			WithHintf("Payment status %s cannot move to %s", inv.PaymentStatus, req.Status).
			WithReportableDetails(map[string]any{
				"from": inv.PaymentStatus,
				"to":   req.Status,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	changes := map[string]any{"payment_status": req.Status}
	if req.Status == types.PaymentStatusSucceeded {
		amount := req.Amount
		if amount.IsZero() {
			amount = inv.AmountDue
		}
		changes["amount_paid"] = amount
	}
	return s.InvoiceRepo.Update(ctx, types.ByID(id), changes)
}

func (s *invoiceService) resolve(ctx context.Context, id, action string) (*invoice.Invoice, error) {
	inv, err := s.InvoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, notFound(entityInvoice, id)
	}
	if err := s.authorize(ctx, entityInvoice, action, inv.CustomerID); err != nil {
		return nil, err
	}
	return inv, nil
}
