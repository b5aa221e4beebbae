package service

import (
	"context"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

// Hooks are explicit lifecycle callbacks around service mutations. A Before
// failure aborts the mutation; an After failure is reported as an internal
// error but the mutation itself stands, there is no rollback.
type Hooks[T any] struct {
	BeforeCreate func(ctx context.Context, entity *T) error
	AfterCreate  func(ctx context.Context, entity *T) error
	BeforeUpdate func(ctx context.Context, entity *T) error
	AfterUpdate  func(ctx context.Context, entity *T) error
	BeforeDelete func(ctx context.Context, entity *T) error
	AfterDelete  func(ctx context.Context, entity *T) error
}

func runBefore[T any](ctx context.Context, hook func(context.Context, *T) error, entity *T) error {
	if hook == nil {
		return nil
	}
	return hook(ctx, entity)
}

func runAfter[T any](ctx context.Context, hook func(context.Context, *T) error, entity *T) error {
	if hook == nil {
		return nil
	}
	if err := hook(ctx, entity); err != nil {
		return ierr.WithError(err).
			WithHint("Post-mutation hook failed").
			Mark(ierr.ErrInternal)
	}
	return nil
}
