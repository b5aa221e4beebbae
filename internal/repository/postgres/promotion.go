package postgres

import (
	"context"
	"fmt"

	ierr "github.com/stayloop/stayloop/internal/errors"

	"github.com/stayloop/stayloop/internal/domain/promotion"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
	"github.com/stayloop/stayloop/internal/types"
)

type promotionRepository struct {
	*Repository[promotion.Promotion]
	db *postgres.DB
}

func NewPromotionRepository(db *postgres.DB, log *logger.Logger) promotion.Repository {
	return &promotionRepository{
		Repository: NewRepository[promotion.Promotion](db, log, promotionTable),
		db:         db,
	}
}

func (r *promotionRepository) GetByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	return r.FindOne(ctx, types.Filter{Eq: map[string]any{"code": code}})
}

// IncrementRedemptions bumps the counter in a single statement so two
// concurrent redemptions cannot read the same count. The cap rides in the
// WHERE clause, so a redemption that would exceed max_redemptions matches
// zero rows even when the prior redeemability read raced another redeemer.
func (r *promotionRepository) IncrementRedemptions(ctx context.Context, id string) error {
	args := []any{id}
	query := "UPDATE promotions SET total_redemptions = total_redemptions + 1 WHERE id = $1"
	if tenantID := types.GetTenantID(ctx); tenantID != "" {
		args = append(args, tenantID)
		query += fmt.Sprintf(" AND tenant_id = $%d", len(args))
	}
	query += " AND deleted_at IS NULL AND (max_redemptions IS NULL OR total_redemptions < max_redemptions)"

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record promotion redemption").
			WithReportableDetails(map[string]any{"promotion_id": id}).
			Mark(ierr.ErrDatabase)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("promotion not redeemable").
			WithHintf("Promotion %s is missing or fully redeemed", id).
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}
