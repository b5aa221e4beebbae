package service

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/user"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context) (*user.User, error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

// SignUp registers a user under the requested tenant and returns a signed
// token. The role must exist in the rbac definitions when given.
func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "host"
	}
	if !s.RBAC.ValidateRole(role) {
		return nil, ierr.NewError("unknown role").
			WithHintf("Role %q is not defined", role).
			Mark(ierr.ErrValidation)
	}

	t, err := s.TenantRepo.GetByID(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("tenant", req.TenantID)
	}

	ctx = context.WithValue(ctx, types.CtxTenantID, req.TenantID)

	existing, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("email taken").
			WithHint("An account with this email already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	u := &user.User{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Email:     req.Email,
		Name:      req.Name,
		Role:      role,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	u.TenantID = req.TenantID
	u.CreatedBy = u.ID
	u.UpdatedBy = u.ID
	if err := u.SetPassword(req.Password); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to process password").
			Mark(ierr.ErrInternal)
	}

	created, err := s.UserRepo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	token, err := s.Auth.IssueToken(created.ID, created.TenantID, created.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: created}, nil
}

// Login verifies credentials and returns a fresh token. Invalid email and
// invalid password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, types.CtxTenantID, req.TenantID)

	u, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.IsDeleted() || !u.CheckPassword(req.Password) {
		return nil, ierr.NewError("invalid credentials").
			WithHint("Email or password is incorrect").
			Mark(ierr.ErrPermissionDenied)
	}

	token, err := s.Auth.IssueToken(u.ID, u.TenantID, u.Role, tokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: u}, nil
}

func (s *authService) Me(ctx context.Context) (*user.User, error) {
	userID := types.GetUserID(ctx)
	if userID == "" {
		return nil, ierr.NewError("not authenticated").
			WithHint("Authentication required").
			Mark(ierr.ErrPermissionDenied)
	}
	u, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound("user", userID)
	}
	return u, nil
}
