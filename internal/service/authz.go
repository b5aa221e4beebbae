package service

import (
	"context"

	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

// Actions checked against the rbac permission sets.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// authorize grants access when the actor owns the resource or carries a role
// permitting entity.action. Calls without an actor in the context are
// internal and always allowed. Callers resolve existence first so an absent
// resource surfaces as not_found, never as permission_denied.
func (p ServiceParams) authorize(ctx context.Context, entity, action, ownerID string) error {
	actor := types.GetActor(ctx)
	if actor == nil {
		return nil
	}
	if ownerID != "" && actor.ID == ownerID {
		return nil
	}

	var roles []string
	if actor.Role != "" {
		roles = append(roles, actor.Role)
	}
	if p.RBAC.HasPermission(roles, entity, action) {
		return nil
	}

	return ierr.NewError("permission denied").
		WithHintf("You are not allowed to %s this %s", action, entity).
		WithReportableDetails(map[string]any{
			"entity": entity,
			"action": action,
		}).
		Mark(ierr.ErrPermissionDenied)
}

// notFound is the uniform absent-resource error surfaced by services when a
// repository read returns nil.
func notFound(entity, id string) error {
	return ierr.NewError(entity + " not found").
		WithHintf("The %s was not found", entity).
		WithReportableDetails(map[string]any{"id": id}).
		Mark(ierr.ErrNotFound)
}
