package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/tenant"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/internal/types"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AuthService
	tenant  *tenant.Tenant
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewAuthService(newTestParams(&s.BaseServiceTestSuite))

	now := time.Now().UTC()
	t := &tenant.Tenant{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT),
		Name:      "Coastal Stays",
		Slug:      "coastal-stays",
		Status:    types.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	var err error
	s.tenant, err = s.GetStores().TenantRepo.Create(s.GetContext(), t)
	s.Require().NoError(err)
}

func (s *AuthServiceSuite) signUpRequest() *dto.SignUpRequest {
	return &dto.SignUpRequest{
		Email:    "ines@coastalstays.test",
		Name:     "Ines",
		Password: "correct-horse",
		TenantID: s.tenant.ID,
	}
}

func (s *AuthServiceSuite) TestSignUp() {
	resp, err := s.service.SignUp(s.GetContext(), s.signUpRequest())
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("host", resp.User.Role)
	s.Equal(s.tenant.ID, resp.User.TenantID)

	claims, err := s.GetAuth().ValidateToken(resp.Token)
	s.NoError(err)
	s.Equal(resp.User.ID, claims.Subject)
	s.Equal(s.tenant.ID, claims.TenantID)
	s.Equal("host", claims.Role)
}

func (s *AuthServiceSuite) TestSignUpUnknownRole() {
	req := s.signUpRequest()
	req.Role = "janitor"

	_, err := s.service.SignUp(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AuthServiceSuite) TestSignUpUnknownTenant() {
	req := s.signUpRequest()
	req.TenantID = "tenant_missing"

	_, err := s.service.SignUp(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *AuthServiceSuite) TestSignUpEmailTaken() {
	_, err := s.service.SignUp(s.GetContext(), s.signUpRequest())
	s.Require().NoError(err)

	_, err = s.service.SignUp(s.GetContext(), s.signUpRequest())
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *AuthServiceSuite) TestSignUpShortPassword() {
	req := s.signUpRequest()
	req.Password = "short"

	_, err := s.service.SignUp(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AuthServiceSuite) TestLogin() {
	_, err := s.service.SignUp(s.GetContext(), s.signUpRequest())
	s.Require().NoError(err)

	resp, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "ines@coastalstays.test",
		Password: "correct-horse",
		TenantID: s.tenant.ID,
	})
	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal("ines@coastalstays.test", resp.User.Email)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.SignUp(s.GetContext(), s.signUpRequest())
	s.Require().NoError(err)

	_, err = s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "ines@coastalstays.test",
		Password: "wrong-horse",
		TenantID: s.tenant.ID,
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestLoginUnknownEmail() {
	_, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "nobody@coastalstays.test",
		Password: "whatever1",
		TenantID: s.tenant.ID,
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestMe() {
	signedUp, err := s.service.SignUp(s.GetContext(), s.signUpRequest())
	s.Require().NoError(err)

	ctx := context.WithValue(s.GetContext(), types.CtxTenantID, s.tenant.ID)
	ctx = context.WithValue(ctx, types.CtxUserID, signedUp.User.ID)

	me, err := s.service.Me(ctx)
	s.NoError(err)
	s.Equal(signedUp.User.ID, me.ID)
	s.Equal("ines@coastalstays.test", me.Email)
}

func (s *AuthServiceSuite) TestMeUnauthenticated() {
	ctx := context.WithValue(context.Background(), types.CtxRequestID, types.GenerateUUID())

	_, err := s.service.Me(ctx)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}
