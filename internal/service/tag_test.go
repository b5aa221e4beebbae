package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
)

type TagServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TagService
}

func TestTagService(t *testing.T) {
	suite.Run(t, new(TagServiceSuite))
}

func (s *TagServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTagService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *TagServiceSuite) TestCreate() {
	t, err := s.service.Create(s.GetContext(), &dto.CreateTagRequest{
		Name: "Pet friendly",
		Slug: "pet-friendly",
	})
	s.NoError(err)
	s.Equal("pet-friendly", t.Slug)
}

func (s *TagServiceSuite) TestCreateSlugTaken() {
	req := &dto.CreateTagRequest{Name: "Pet friendly", Slug: "pet-friendly"}
	_, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	_, err = s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *TagServiceSuite) TestDeleteFreesSlug() {
	req := &dto.CreateTagRequest{Name: "Pet friendly", Slug: "pet-friendly"}
	t, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	n, err := s.service.Delete(s.GetContext(), t.ID)
	s.NoError(err)
	s.Equal(1, n)

	// Soft-deleted tags no longer block the slug.
	_, err = s.service.Create(s.GetContext(), req)
	s.NoError(err)
}

func (s *TagServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.GetContext(), "tag_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
