package postgres

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	ierr "github.com/stayloop/stayloop/internal/errors"

	"github.com/stayloop/stayloop/internal/domain/invoice"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type invoiceRepository struct {
	*Repository[invoice.Invoice]
	lineItems *Repository[invoice.LineItem]
	db        *postgres.DB
}

func NewInvoiceRepository(db *postgres.DB, log *logger.Logger) invoice.Repository {
	return &invoiceRepository{
		Repository: NewRepository[invoice.Invoice](db, log, invoiceTable),
		lineItems:  NewRepository[invoice.LineItem](db, log, invoiceLineItemTable),
		db:         db,
	}
}

// CreateWithLineItems inserts the invoice and its line items in one
// transaction, joining an outer one carried in the context.
func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice, items []*invoice.LineItem) (*invoice.Invoice, error) {
	var created *invoice.Invoice
	err := r.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = r.Repository.Create(ctx, inv)
		if err != nil {
			return err
		}
		for _, item := range items {
			item.InvoiceID = created.ID
			stored, err := r.lineItems.Create(ctx, item)
			if err != nil {
				return err
			}
			created.LineItems = append(created.LineItems, stored)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetWithLineItems returns the invoice with its line items hydrated, or nil
// when the invoice does not exist.
func (r *invoiceRepository) GetWithLineItems(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := r.GetByID(ctx, id)
	if err != nil || inv == nil {
		return inv, err
	}

	preds := []*entsql.Predicate{
		entsql.EQ("invoice_id", id),
		entsql.IsNull("deleted_at"),
	}
	if tenantID := types.GetTenantID(ctx); tenantID != "" {
		preds = append(preds, entsql.EQ("tenant_id", tenantID))
	}

	query, args := entsql.Dialect(dialect.Postgres).
		Select(invoiceLineItemTable.Columns...).
		From(entsql.Table(invoiceLineItemTable.Name)).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Asc("created_at"), entsql.Asc("id")).
		Query()

	var items []*invoice.LineItem
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load invoice line items").
			WithReportableDetails(map[string]any{"invoice_id": id}).
			Mark(ierr.ErrDatabase)
	}
	inv.LineItems = items
	return inv, nil
}
