package postgres

import (
	"github.com/stayloop/stayloop/internal/domain/tag"
	"github.com/stayloop/stayloop/internal/logger"
	"github.com/stayloop/stayloop/internal/postgres"
)

func NewTagRepository(db *postgres.DB, log *logger.Logger) tag.Repository {
	return NewRepository[tag.Tag](db, log, tagTable)
}
