package rbac

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stayloop/stayloop/internal/config"
)

// Service handles permission checks with set-based lookups
type Service struct {
	// Fast lookup for permission checks: role -> entity -> action
	permissions map[string]map[string]map[string]bool

	// Full role definitions with metadata (for API responses)
	roles map[string]*Role
}

// Role represents a role with metadata
type Role struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Permissions map[string][]string `json:"permissions"`
}

// NewService loads roles.json from config and optimizes for fast lookups
func NewService(cfg *config.Configuration) (*Service, error) {
	configPath := cfg.RBAC.RolesConfigPath
	if configPath == "" {
		configPath = "./config/rbac/roles.json"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rbac config: %w", err)
	}

	var rawConfig map[string]*Role
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse rbac config: %w", err)
	}

	permissions := make(map[string]map[string]map[string]bool)
	for roleID, role := range rawConfig {
		role.ID = roleID
		permissions[roleID] = make(map[string]map[string]bool)

		for entity, actions := range role.Permissions {
			permissions[roleID][entity] = make(map[string]bool)
			for _, action := range actions {
				permissions[roleID][entity][action] = true
			}
		}
	}

	return &Service{
		permissions: permissions,
		roles:       rawConfig,
	}, nil
}

// NewServiceFromRoles builds a Service from in-memory role definitions.
// Used by tests and local bootstrap.
func NewServiceFromRoles(roles map[string]*Role) *Service {
	permissions := make(map[string]map[string]map[string]bool)
	for roleID, role := range roles {
		role.ID = roleID
		permissions[roleID] = make(map[string]map[string]bool)
		for entity, actions := range role.Permissions {
			permissions[roleID][entity] = make(map[string]bool)
			for _, action := range actions {
				permissions[roleID][entity][action] = true
			}
		}
	}
	return &Service{permissions: permissions, roles: roles}
}

// HasPermission checks if any of the given roles grant entity.action.
// An empty role list grants full access; internal calls carry no actor.
func (s *Service) HasPermission(roles []string, entity string, action string) bool {
	if len(roles) == 0 {
		return true
	}

	for _, role := range roles {
		if s.permissions[role] != nil &&
			s.permissions[role][entity] != nil &&
			s.permissions[role][entity][action] {
			return true
		}
	}

	return false
}

// ValidateRole checks if role exists in definitions
func (s *Service) ValidateRole(roleName string) bool {
	_, exists := s.permissions[roleName]
	return exists
}

// ListRoles returns all roles with metadata
func (s *Service) ListRoles() []*Role {
	result := make([]*Role, 0, len(s.roles))
	for _, role := range s.roles {
		result = append(result, role)
	}
	return result
}

// GetRole returns a specific role with metadata
func (s *Service) GetRole(roleID string) (*Role, bool) {
	role, exists := s.roles[roleID]
	return role, exists
}
