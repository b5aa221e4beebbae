package testutil

import (
	"context"

	"github.com/stayloop/stayloop/internal/domain/user"
	"github.com/stayloop/stayloop/internal/types"
)

// InMemoryUserStore is an in-memory implementation of user.Repository.
type InMemoryUserStore struct {
	*memoryStore[user.User]
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		memoryStore: newMemoryStore(
			func(u *user.User) string { return u.ID },
			func(u *user.User) *types.BaseModel { return &u.BaseModel },
			func(u *user.User) map[string]any {
				return map[string]any{
					"id":    u.ID,
					"email": u.Email,
					"name":  u.Name,
					"role":  u.Role,
				}
			},
			func(u *user.User, changes map[string]any) {
				for k, v := range changes {
					switch k {
					case "email":
						u.Email = v.(string)
					case "name":
						u.Name = v.(string)
					case "password_hash":
						u.PasswordHash = v.(string)
					case "role":
						u.Role = v.(string)
					}
				}
			},
		),
	}
}

func (s *InMemoryUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.FindOne(ctx, types.NewFilter(map[string]any{"email": email}))
}
