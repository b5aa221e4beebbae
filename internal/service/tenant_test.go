package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
)

type TenantServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TenantService
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceSuite))
}

func (s *TenantServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTenantService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *TenantServiceSuite) TestCreate() {
	t, err := s.service.Create(s.GetContext(), &dto.CreateTenantRequest{
		Name: "Coastal Stays",
		Slug: "coastal-stays",
	})
	s.NoError(err)
	s.Equal("coastal-stays", t.Slug)
	s.False(t.CreatedAt.IsZero())
}

func (s *TenantServiceSuite) TestCreateSlugTaken() {
	req := &dto.CreateTenantRequest{Name: "Coastal Stays", Slug: "coastal-stays"}
	_, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	_, err = s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *TenantServiceSuite) TestGetBySlug() {
	created, err := s.service.Create(s.GetContext(), &dto.CreateTenantRequest{
		Name: "Coastal Stays",
		Slug: "coastal-stays",
	})
	s.Require().NoError(err)

	t, err := s.service.GetBySlug(s.GetContext(), "coastal-stays")
	s.NoError(err)
	s.Equal(created.ID, t.ID)

	_, err = s.service.GetBySlug(s.GetContext(), "nowhere")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *TenantServiceSuite) TestList() {
	_, err := s.service.Create(s.GetContext(), &dto.CreateTenantRequest{Name: "A", Slug: "a"})
	s.Require().NoError(err)
	_, err = s.service.Create(s.GetContext(), &dto.CreateTenantRequest{Name: "B", Slug: "b"})
	s.Require().NoError(err)

	tenants, err := s.service.List(s.GetContext())
	s.NoError(err)
	s.Len(tenants, 2)
}

func (s *TenantServiceSuite) TestListForbiddenForHost() {
	ctx := testutil.ContextWithActor(s.GetContext(), "user_host", "host")

	_, err := s.service.List(ctx)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}
