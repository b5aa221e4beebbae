package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/stayloop/stayloop/internal/config"
	ierr "github.com/stayloop/stayloop/internal/errors"
)

// Claims is the JWT payload carried by bearer tokens.
type Claims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Provider issues and validates bearer tokens and resolves API keys.
type Provider struct {
	secret       []byte
	apiKeyHeader string
	apiKeys      map[string]config.APIKeyBinding
}

func NewProvider(cfg *config.Configuration) *Provider {
	return &Provider{
		secret:       []byte(cfg.Auth.Secret),
		apiKeyHeader: cfg.Auth.APIKeyHeader,
		apiKeys:      cfg.Auth.APIKeys,
	}
}

// APIKeyHeader returns the request header carrying machine API keys.
func (p *Provider) APIKeyHeader() string {
	return p.apiKeyHeader
}

// IssueToken signs a token for the given subject, valid for the duration.
func (p *Provider) IssueToken(userID, tenantID, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		TenantID: tenantID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to sign token").
			Mark(ierr.ErrInternal)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token.
func (p *Provider) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHintf("Signing method %v is not accepted", t.Header["alg"]).
				Mark(ierr.ErrPermissionDenied)
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ierr.WithError(err).
			WithHint("Invalid or expired token").
			Mark(ierr.ErrPermissionDenied)
	}
	return claims, nil
}

// ResolveAPIKey looks up a machine API key by its hash and returns the
// tenant/user binding.
func (p *Provider) ResolveAPIKey(key string) (config.APIKeyBinding, bool) {
	binding, ok := p.apiKeys[HashAPIKey(key)]
	return binding, ok
}
