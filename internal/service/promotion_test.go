package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/promotion"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/testutil"
)

type PromotionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PromotionService
}

func TestPromotionService(t *testing.T) {
	suite.Run(t, new(PromotionServiceSuite))
}

func (s *PromotionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPromotionService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *PromotionServiceSuite) createRequest() *dto.CreatePromotionRequest {
	return &dto.CreatePromotionRequest{
		Code:      "WELCOME10",
		Name:      "Welcome discount",
		Type:      promotion.PromotionTypeFixed,
		AmountOff: lo.ToPtr(decimal.NewFromInt(10)),
	}
}

func (s *PromotionServiceSuite) TestCreate() {
	p, err := s.service.Create(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal("WELCOME10", p.Code)
	s.Equal(0, p.TotalRedemptions)
}

func (s *PromotionServiceSuite) TestCreateDuplicateCode() {
	_, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	_, err = s.service.Create(s.GetContext(), s.createRequest())
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *PromotionServiceSuite) TestCreateFixedWithoutAmount() {
	req := s.createRequest()
	req.AmountOff = nil

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PromotionServiceSuite) TestCreatePercentageOutOfRange() {
	req := s.createRequest()
	req.Type = promotion.PromotionTypePercentage
	req.PercentageOff = lo.ToPtr(decimal.NewFromInt(120))

	_, err := s.service.Create(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PromotionServiceSuite) TestRedeem() {
	_, err := s.service.Create(s.GetContext(), s.createRequest())
	s.Require().NoError(err)

	resp, err := s.service.Redeem(s.GetContext(), &dto.RedeemPromotionRequest{
		Code:         "WELCOME10",
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "eur",
	})
	s.NoError(err)
	s.True(resp.Discount.Equal(decimal.NewFromInt(10)), "got %s", resp.Discount)
	s.True(resp.FinalAmount.Equal(decimal.NewFromInt(90)), "got %s", resp.FinalAmount)

	p, err := s.GetStores().PromotionRepo.GetByCode(s.GetContext(), "WELCOME10")
	s.NoError(err)
	s.Equal(1, p.TotalRedemptions)
}

func (s *PromotionServiceSuite) TestRedeemUnknownCode() {
	_, err := s.service.Redeem(s.GetContext(), &dto.RedeemPromotionRequest{
		Code:         "NOPE",
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "eur",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PromotionServiceSuite) TestRedeemExhaustedCap() {
	req := s.createRequest()
	req.MaxRedemptions = lo.ToPtr(1)
	_, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	redeem := &dto.RedeemPromotionRequest{
		Code:         "WELCOME10",
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "eur",
	}
	_, err = s.service.Redeem(s.GetContext(), redeem)
	s.Require().NoError(err)

	_, err = s.service.Redeem(s.GetContext(), redeem)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PromotionServiceSuite) TestIncrementRedemptionsEnforcesCap() {
	req := s.createRequest()
	req.MaxRedemptions = lo.ToPtr(1)
	p, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	repo := s.GetStores().PromotionRepo
	s.NoError(repo.IncrementRedemptions(s.GetContext(), p.ID))

	// The store enforces the cap itself, so two racing redeemers cannot
	// both pass a stale redeemability read.
	err = repo.IncrementRedemptions(s.GetContext(), p.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	stored, err := repo.GetByID(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(1, stored.TotalRedemptions)
}

func (s *PromotionServiceSuite) TestRedeemOutsideWindow() {
	req := s.createRequest()
	req.RedeemBefore = lo.ToPtr(time.Now().UTC().Add(-time.Hour))
	_, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	_, err = s.service.Redeem(s.GetContext(), &dto.RedeemPromotionRequest{
		Code:         "WELCOME10",
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "eur",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PromotionServiceSuite) TestRedeemCurrencyMismatch() {
	req := s.createRequest()
	req.CurrencyCode = lo.ToPtr("usd")
	_, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	_, err = s.service.Redeem(s.GetContext(), &dto.RedeemPromotionRequest{
		Code:         "WELCOME10",
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "eur",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PromotionServiceSuite) TestRedeemIneligibleByRules() {
	req := s.createRequest()
	req.Rules = promotion.Rules{
		{Type: promotion.RuleTypeMinAmount, MinAmount: lo.ToPtr(decimal.NewFromInt(500))},
	}
	_, err := s.service.Create(s.GetContext(), req)
	s.Require().NoError(err)

	_, err = s.service.Redeem(s.GetContext(), &dto.RedeemPromotionRequest{
		Code:         "WELCOME10",
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "eur",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// An ineligible attempt must not consume a redemption.
	p, err := s.GetStores().PromotionRepo.GetByCode(s.GetContext(), "WELCOME10")
	s.NoError(err)
	s.Equal(0, p.TotalRedemptions)
}
