package types

import (
	"context"
	"time"
)

// BaseModel is the audit envelope shared by all persisted domain models.
// Any changes to this model should be reflected in the database schema by
// running migrations.
type BaseModel struct {
	TenantID  string     `db:"tenant_id" json:"tenant_id"`
	Status    Status     `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	CreatedBy string     `db:"created_by" json:"created_by"`
	UpdatedBy string     `db:"updated_by" json:"updated_by"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	DeletedBy *string    `db:"deleted_by" json:"deleted_by,omitempty"`
}

// IsDeleted reports whether the row is soft-deleted. Soft-deleted rows stay
// in storage until a hard delete but are excluded from default list queries.
func (m BaseModel) IsDeleted() bool {
	return m.DeletedAt != nil
}

func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		TenantID:  GetTenantID(ctx),
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: GetUserID(ctx),
		UpdatedBy: GetUserID(ctx),
	}
}

// BaseModelColumns is the column set contributed by BaseModel to every
// table descriptor.
var BaseModelColumns = []string{
	"tenant_id", "status", "created_at", "updated_at",
	"created_by", "updated_by", "deleted_at", "deleted_by",
}
