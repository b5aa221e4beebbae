package postgres

import (
	"context"
	"database/sql"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"

	ierr "github.com/stayloop/stayloop/internal/errors"

	"github.com/stayloop/stayloop/internal/domain/booking"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type bookingRepository struct {
	*Repository[booking.Booking]
	db  *postgres.DB
	log *logger.Logger
}

func NewBookingRepository(db *postgres.DB, log *logger.Logger) booking.Repository {
	return &bookingRepository{
		Repository: NewRepository[booking.Booking](db, log, bookingTable),
		db:         db,
		log:        log,
	}
}

// ListInRange returns non-cancelled bookings for an accommodation whose stay
// intersects [from, to). A booking intersects when it starts before the
// range ends and ends after the range starts.
func (r *bookingRepository) ListInRange(ctx context.Context, accommodationID string, from, to time.Time) ([]*booking.Booking, error) {
	preds := []*entsql.Predicate{
		entsql.EQ("accommodation_id", accommodationID),
		entsql.NEQ("booking_status", types.BookingStatusCancelled),
		entsql.LT("check_in", to),
		entsql.GT("check_out", from),
		entsql.IsNull("deleted_at"),
	}
	if tenantID := types.GetTenantID(ctx); tenantID != "" {
		preds = append(preds, entsql.EQ("tenant_id", tenantID))
	}

	query, args := entsql.Dialect(dialect.Postgres).
		Select(bookingTable.Columns...).
		From(entsql.Table(bookingTable.Name)).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Asc("check_in")).
		Query()

	var bookings []*booking.Booking
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list bookings in range").
			WithReportableDetails(map[string]any{"accommodation_id": accommodationID}).
			Mark(ierr.ErrDatabase)
	}
	return bookings, nil
}

// TotalRevenue sums line items of paid invoices attributed to the
// accommodation's bookings created in [from, to).
func (r *bookingRepository) TotalRevenue(ctx context.Context, accommodationID string, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(li.amount), 0) AS total
		FROM invoice_line_items li
		JOIN invoices i ON i.id = li.invoice_id
		JOIN bookings b ON b.id = i.booking_id
		WHERE b.accommodation_id = $1
		  AND b.tenant_id = $2
		  AND i.payment_status = $3
		  AND i.created_at >= $4 AND i.created_at < $5
		  AND li.deleted_at IS NULL
		  AND i.deleted_at IS NULL`

	var total decimal.Decimal
	err := r.db.GetQuerier(ctx).GetContext(ctx, &total, query,
		accommodationID, types.GetTenantID(ctx), types.PaymentStatusSucceeded, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, ierr.WithError(err).
			WithHint("Failed to compute accommodation revenue").
			WithReportableDetails(map[string]any{"accommodation_id": accommodationID}).
			Mark(ierr.ErrDatabase)
	}
	return total, nil
}
