package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	ierr "github.com/stayloop/stayloop/internal/errors"

	"github.com/stayloop/stayloop/internal/cache"
	"github.com/stayloop/stayloop/internal/domain/accommodation"
	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/domain/tag"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type accommodationRepository struct {
	*Repository[accommodation.Accommodation]
	db           *postgres.DB
	destinations destination.Repository
	tags         tag.Repository
	cache        cache.Cache
}

func NewAccommodationRepository(
	db *postgres.DB,
	log *logger.Logger,
	destinations destination.Repository,
	tags tag.Repository,
	c cache.Cache,
) accommodation.Repository {
	return &accommodationRepository{
		Repository:   NewRepository[accommodation.Accommodation](db, log, accommodationTable),
		db:           db,
		destinations: destinations,
		tags:         tags,
		cache:        c,
	}
}

func (r *accommodationRepository) GetByID(ctx context.Context, id string) (*accommodation.Accommodation, error) {
	key := cache.GenerateKey(cache.PrefixAccommodation, ctx, id)
	if v, found := r.cache.Get(ctx, key); found {
		if a, ok := v.(*accommodation.Accommodation); ok {
			return a, nil
		}
	}
	a, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a != nil {
		r.cache.Set(ctx, key, a, 5*time.Minute)
	}
	return a, nil
}

// GetWithRelations loads the accommodation and hydrates the requested
// relations. Unknown relation keys are rejected before any query runs.
func (r *accommodationRepository) GetWithRelations(ctx context.Context, id string, relations []string) (*accommodation.Accommodation, error) {
	for _, rel := range relations {
		if rel != accommodation.RelationDestination && rel != accommodation.RelationTags {
			return nil, ierr.NewError("unknown relation").
				WithHintf("Relation %q is not defined for accommodation", rel).
				WithReportableDetails(map[string]any{"relation": rel}).
				Mark(ierr.ErrValidation)
		}
	}

	a, err := r.Repository.GetByID(ctx, id)
	if err != nil || a == nil {
		return a, err
	}

	for _, rel := range relations {
		switch rel {
		case accommodation.RelationDestination:
			d, err := r.destinations.GetByID(ctx, a.DestinationID)
			if err != nil {
				return nil, err
			}
			a.Destination = d
		case accommodation.RelationTags:
			tags, err := r.loadTags(ctx, a.ID)
			if err != nil {
				return nil, err
			}
			a.Tags = tags
		}
	}
	return a, nil
}

func (r *accommodationRepository) loadTags(ctx context.Context, accommodationID string) ([]*tag.Tag, error) {
	cols := make([]string, len(tagTable.Columns))
	for i, c := range tagTable.Columns {
		cols[i] = "t." + c
	}
	query := fmt.Sprintf(`SELECT %s FROM tags t
		JOIN accommodation_tags at ON at.tag_id = t.id
		WHERE at.accommodation_id = $1 AND t.tenant_id = $2 AND t.deleted_at IS NULL
		ORDER BY t.name`, strings.Join(cols, ", "))

	var tags []*tag.Tag
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &tags, query, accommodationID, types.GetTenantID(ctx)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load accommodation tags").
			Mark(ierr.ErrDatabase)
	}
	return tags, nil
}

// Search translates the sparse query into an equality filter; absent terms
// stay out of the filter, and a zero max_guests means any capacity.
func (r *accommodationRepository) Search(ctx context.Context, sq accommodation.SearchQuery) (*types.ListResult[*accommodation.Accommodation], error) {
	eq := map[string]any{}
	if sq.DestinationID != "" {
		eq["destination_id"] = sq.DestinationID
	}
	if sq.HostID != "" {
		eq["host_id"] = sq.HostID
	}
	if sq.Visibility != "" {
		eq["visibility"] = sq.Visibility
	}
	if sq.MaxGuests > 0 {
		eq["max_guests"] = sq.MaxGuests
	}
	return r.ListPage(ctx, types.NewFilter(eq), sq.Pagination)
}

// ReplaceTags rewrites the accommodation's tag set atomically.
func (r *accommodationRepository) ReplaceTags(ctx context.Context, accommodationID string, tagIDs []string) error {
	err := r.db.WithTx(ctx, func(ctx context.Context) error {
		q := r.db.GetQuerier(ctx)
		if _, err := q.ExecContext(ctx,
			"DELETE FROM accommodation_tags WHERE accommodation_id = $1", accommodationID); err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if _, err := q.ExecContext(ctx,
				"INSERT INTO accommodation_tags (accommodation_id, tag_id) VALUES ($1, $2)",
				accommodationID, tagID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to replace accommodation tags").
			WithReportableDetails(map[string]any{"accommodation_id": accommodationID}).
			Mark(ierr.ErrDatabase)
	}
	r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixAccommodation, ctx, accommodationID))
	return nil
}

func (r *accommodationRepository) Update(ctx context.Context, f types.Filter, changes map[string]any) (*accommodation.Accommodation, error) {
	a, err := r.Repository.Update(ctx, f, changes)
	if err != nil {
		return nil, err
	}
	if a != nil {
		r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixAccommodation, ctx, a.ID))
	}
	return a, nil
}

func (r *accommodationRepository) SoftDelete(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.SoftDelete(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixAccommodation, ctx))
	}
	return n, err
}

func (r *accommodationRepository) Restore(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.Restore(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixAccommodation, ctx))
	}
	return n, err
}

func (r *accommodationRepository) HardDelete(ctx context.Context, f types.Filter) (int, error) {
	n, err := r.Repository.HardDelete(ctx, f)
	if err == nil && n > 0 {
		r.cache.DeleteByPrefix(ctx, cache.GenerateKey(cache.PrefixAccommodation, ctx))
	}
	return n, err
}
