package types

import "context"

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxTenantID  ContextKey = "ctx_tenant_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxActor     ContextKey = "ctx_actor"

	// Default values used for unauthenticated internal calls
	DefaultTenantID = "00000000-0000-0000-0000-000000000000"
	DefaultUserID   = "00000000-0000-0000-0000-000000000000"
)

// Actor is the authenticated principal performing an operation. It is
// attached to the request context by the auth middleware and only ever
// consumed here, never authenticated.
type Actor struct {
	ID          string   `json:"id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

func GetTenantID(ctx context.Context) string {
	if tenantID, ok := ctx.Value(CtxTenantID).(string); ok {
		return tenantID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetActor returns the actor from the context or nil when the call did not
// go through the auth middleware (internal jobs, tests).
func GetActor(ctx context.Context) *Actor {
	if actor, ok := ctx.Value(CtxActor).(*Actor); ok {
		return actor
	}
	return nil
}
