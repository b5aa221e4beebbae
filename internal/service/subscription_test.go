package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/user"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stayloop/stayloop/internal/types"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubscriptionService
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSubscriptionService(newTestParams(&s.BaseServiceTestSuite))

	u := &user.User{
		ID:        types.DefaultUserID,
		Email:     "host@stayloop.test",
		Name:      "Host",
		Role:      "host",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	_, err := s.GetStores().UserRepo.Create(s.GetContext(), u)
	s.Require().NoError(err)
}

func (s *SubscriptionServiceSuite) createRequest() *dto.CreateSubscriptionRequest {
	return &dto.CreateSubscriptionRequest{
		UserID:       types.DefaultUserID,
		PlanKey:      "host-pro",
		Amount:       decimal.NewFromInt(29),
		CurrencyCode: "eur",
		PeriodDays:   30,
	}
}

func (s *SubscriptionServiceSuite) TestCreate() {
	sub, err := s.service.Create(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal(types.SubscriptionStatusPending, sub.SubscriptionStatus)
	s.Equal("host-pro", sub.PlanKey)
	s.WithinDuration(sub.CurrentPeriodStart.AddDate(0, 0, 30), sub.CurrentPeriodEnd, time.Second)
}

func (s *SubscriptionServiceSuite) TestActivate() {
	sub, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	active, err := s.service.Activate(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, active.SubscriptionStatus)
}

func (s *SubscriptionServiceSuite) TestInvalidTransitionLeavesStorageUntouched() {
	sub, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	// A pending subscription cannot pause.
	_, err = s.service.Pause(s.GetContext(), sub.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	stored, err := s.GetStores().SubscriptionRepo.GetByID(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusPending, stored.SubscriptionStatus)
}

func (s *SubscriptionServiceSuite) TestCancelStampsCancelledAt() {
	sub, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	cancelled, err := s.service.Cancel(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusCancelled, cancelled.SubscriptionStatus)
	s.NotNil(cancelled.CancelledAt)

	// Cancelled is terminal.
	_, err = s.service.Activate(s.GetContext(), sub.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SubscriptionServiceSuite) TestUpdateStatusRejectsUnknownStatus() {
	sub, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.UpdateStatus(s.GetContext(), sub.ID, types.SubscriptionStatus("suspended"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SubscriptionServiceSuite) TestUpdateStatusNotFound() {
	_, err := s.service.UpdateStatus(s.GetContext(), "subs_missing", types.SubscriptionStatusActive)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestExpireOverdue() {
	repo := s.GetStores().SubscriptionRepo

	lapsed, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)
	_, err = s.service.Activate(s.GetContext(), lapsed.ID)
	s.Require().NoError(err)
	_, err = repo.Update(s.GetContext(), types.ByID(lapsed.ID), map[string]any{
		"current_period_end": time.Now().UTC().AddDate(0, 0, -1),
	})
	s.Require().NoError(err)

	current, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)
	_, err = s.service.Activate(s.GetContext(), current.ID)
	s.Require().NoError(err)

	expired, err := s.service.ExpireOverdue(s.GetContext())
	s.NoError(err)
	s.Equal(1, expired)

	stored, err := repo.GetByID(s.GetContext(), lapsed.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusExpired, stored.SubscriptionStatus)

	stored, err = repo.GetByID(s.GetContext(), current.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, stored.SubscriptionStatus)
}
