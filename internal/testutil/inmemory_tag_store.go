package testutil

import (
	"github.com/stayloop/stayloop/internal/domain/tag"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryTagStore is an in-memory implementation of tag.Repository.
type InMemoryTagStore struct {
	*memoryStore[tag.Tag]
}

func NewInMemoryTagStore() *InMemoryTagStore {
	return &InMemoryTagStore{
		memoryStore: newMemoryStore(
			func(t *tag.Tag) string { return t.ID },
			func(t *tag.Tag) *types.BaseModel { return &t.BaseModel },
			func(t *tag.Tag) map[string]any {
				return map[string]any{
					"id":   t.ID,
					"name": t.Name,
					"slug": t.Slug,
				}
			},
			func(t *tag.Tag, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "name":
						t.Name = v.(string)
					case "slug":
						t.Slug = v.(string)
					}
				}
			},
		),
	}
}
