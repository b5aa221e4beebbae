package testutil

import (
	"context"

	"github.com/stayloop/stayloop/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxTenantID, types.DefaultTenantID)
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}

// ContextWithActor returns the test context with an authenticated actor
// attached, for exercising authorization paths.
func ContextWithActor(ctx context.Context, id, role string) context.Context {
	ctx = context.WithValue(ctx, types.CtxUserID, id)
	ctx = context.WithValue(ctx, types.CtxActor, &types.Actor{ID: id, Role: role})
	return ctx
}
