package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/internal/types"
)

type DestinationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DestinationService
}

func TestDestinationService(t *testing.T) {
	suite.Run(t, new(DestinationServiceSuite))
}

func (s *DestinationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewDestinationService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *DestinationServiceSuite) createRequest() *dto.CreateDestinationRequest {
	return &dto.CreateDestinationRequest{
		Name:       "Algarve",
		Slug:       "algarve",
		Country:    "PT",
		Region:     "Faro",
		Visibility: types.VisibilityPublic,
	}
}

func (s *DestinationServiceSuite) TestCreate() {
	d, err := s.service.Create(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal("algarve", d.Slug)
	s.Equal(types.VisibilityPublic, d.Visibility)
	s.Equal(types.DefaultTenantID, d.TenantID)
}

func (s *DestinationServiceSuite) TestCreateDefaultsToDraft() {
	req := s.createRequest()
	req.Visibility = ""

	d, err := s.service.Create(s.GetContext(), req)
	s.NoError(err)
	s.Equal(types.VisibilityDraft, d.Visibility)
}

func (s *DestinationServiceSuite) TestCreateInvalidCountry() {
	req := s.createRequest()
	req.Country = "PRT"

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DestinationServiceSuite) TestUpdate() {
	d, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	updated, err := s.service.Update(s.GetContext(), d.ID, &dto.UpdateDestinationRequest{
		Region:     lo.ToPtr("Western Algarve"),
		Visibility: lo.ToPtr(types.VisibilityPrivate),
	})
	s.NoError(err)
	s.Equal("Western Algarve", updated.Region)
	s.Equal(types.VisibilityPrivate, updated.Visibility)
	s.Equal("Algarve", updated.Name)
}

func (s *DestinationServiceSuite) TestUpdateNotFound() {
	_, err := s.service.Update(s.GetContext(), "dest_missing", &dto.UpdateDestinationRequest{
		Region: lo.ToPtr("Nowhere"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DestinationServiceSuite) TestDeleteAndRestore() {
	d, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	n, err := s.service.Delete(s.GetContext(), d.ID)
	s.NoError(err)
	s.Equal(1, n)

	n, err = s.service.Delete(s.GetContext(), d.ID)
	s.NoError(err)
	s.Equal(0, n)

	result, err := s.service.List(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(0, result.Total)

	n, err = s.service.Restore(s.GetContext(), d.ID)
	s.NoError(err)
	s.Equal(1, n)

	result, err = s.service.List(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(1, result.Total)
}
