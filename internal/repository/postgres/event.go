package postgres

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	ierr "github.com/stayloop/stayloop/internal/errors"

	"github.com/stayloop/stayloop/internal/domain/event"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type eventRepository struct {
	*Repository[event.Event]
	db *postgres.DB
}

func NewEventRepository(db *postgres.DB, log *logger.Logger) event.Repository {
	return &eventRepository{
		Repository: NewRepository[event.Event](db, log, eventTable),
		db:         db,
	}
}

// ListUpcoming returns non-deleted events at a destination starting after
// the given time, soonest first.
func (r *eventRepository) ListUpcoming(ctx context.Context, destinationID string, after time.Time) ([]*event.Event, error) {
	preds := []*entsql.Predicate{
		entsql.EQ("destination_id", destinationID),
		entsql.GT("starts_at", after),
		entsql.IsNull("deleted_at"),
	}
	if tenantID := types.GetTenantID(ctx); tenantID != "" {
		preds = append(preds, entsql.EQ("tenant_id", tenantID))
	}

	query, args := entsql.Dialect(dialect.Postgres).
		Select(eventTable.Columns...).
		From(entsql.Table(eventTable.Name)).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Asc("starts_at")).
		Query()

	var events []*event.Event
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &events, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list upcoming events").
			WithReportableDetails(map[string]any{"destination_id": destinationID}).
			Mark(ierr.ErrDatabase)
	}
	return events, nil
}
