package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/destination"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/internal/types"
)

type EventServiceSuite struct {
	testutil.BaseServiceTestSuite
	service EventService
	dest    *destination.Destination
}

func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceSuite))
}

func (s *EventServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewEventService(newTestParams(&s.BaseServiceTestSuite))

	d := &destination.Destination{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DESTINATION),
		Name:      "Porto",
		Slug:      "porto",
		Country:   "PT",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	var err error
	s.dest, err = s.GetStores().DestinationRepo.Create(s.GetContext(), d)
	s.Require().NoError(err)
}

func (s *EventServiceSuite) createRequest(name string, daysFromNow int) *dto.CreateEventRequest {
	starts := time.Now().UTC().AddDate(0, 0, daysFromNow)
	return &dto.CreateEventRequest{
		DestinationID: s.dest.ID,
		Name:          name,
		StartsAt:      starts,
		EndsAt:        starts.Add(4 * time.Hour),
		Capacity:      200,
		TicketPrice:   decimal.NewFromInt(15),
		CurrencyCode:  "eur",
		Visibility:    types.VisibilityPublic,
	}
}

func (s *EventServiceSuite) TestCreate() {
	e, err := s.service.Create(s.GetContext(), s.createRequest("Wine festival", 10))
	s.NoError(err)
	s.Equal(s.dest.ID, e.DestinationID)
	s.Equal(200, e.Capacity)
}

func (s *EventServiceSuite) TestCreateUnknownDestination() {
	req := s.createRequest("Wine festival", 10)
	req.DestinationID = "dest_missing"

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *EventServiceSuite) TestCreateEndsBeforeStarts() {
	req := s.createRequest("Wine festival", 10)
	req.EndsAt = req.StartsAt.Add(-time.Hour)

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *EventServiceSuite) TestListUpcoming() {
	_, err := s.service.Create(s.GetContext(), s.createRequest("Next week", 7))
	s.Require().NoError(err)
	_, err = s.service.Create(s.GetContext(), s.createRequest("Next month", 30))
	s.Require().NoError(err)

	// A past event must not show up.
	past := s.createRequest("Last month", 0)
	past.StartsAt = time.Now().UTC().AddDate(0, 0, -30)
	past.EndsAt = past.StartsAt.Add(4 * time.Hour)
	_, err = s.GetStores().EventRepo.Create(s.GetContext(), past.ToEvent(s.GetContext()))
	s.Require().NoError(err)

	upcoming, err := s.service.ListUpcoming(s.GetContext(), s.dest.ID)
	s.NoError(err)
	s.Require().Len(upcoming, 2)
	s.Equal("Next week", upcoming[0].Name)
	s.Equal("Next month", upcoming[1].Name)
}

func (s *EventServiceSuite) TestListUpcomingUnknownDestination() {
	_, err := s.service.ListUpcoming(s.GetContext(), "dest_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *EventServiceSuite) TestDeleteIdempotent() {
	e, err := s.service.Create(s.GetContext(), s.createRequest("Wine festival", 10))
	s.Require().NoError(err)

	n, err := s.service.Delete(s.GetContext(), e.ID)
	s.NoError(err)
	s.Equal(1, n)

	n, err = s.service.Delete(s.GetContext(), e.ID)
	s.NoError(err)
	s.Equal(0, n)
}
