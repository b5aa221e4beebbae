package promotion

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRuleEvalMinAmount(t *testing.T) {
	rule := Rule{Type: RuleTypeMinAmount, MinAmount: lo.ToPtr(decimal.NewFromInt(100))}

	ok, _ := rule.Eval(Purchase{Amount: decimal.NewFromInt(150)})
	assert.True(t, ok)

	ok, _ = rule.Eval(Purchase{Amount: decimal.NewFromInt(100)})
	assert.True(t, ok)

	ok, reason := rule.Eval(Purchase{Amount: decimal.NewFromInt(99)})
	assert.False(t, ok)
	assert.Contains(t, reason, "below minimum")
}

func TestRuleEvalMaxAmount(t *testing.T) {
	rule := Rule{Type: RuleTypeMaxAmount, MaxAmount: lo.ToPtr(decimal.NewFromInt(500))}

	ok, _ := rule.Eval(Purchase{Amount: decimal.NewFromInt(500)})
	assert.True(t, ok)

	ok, reason := rule.Eval(Purchase{Amount: decimal.NewFromInt(501)})
	assert.False(t, ok)
	assert.Contains(t, reason, "above maximum")
}

func TestRuleEvalAllowedCurrencies(t *testing.T) {
	rule := Rule{Type: RuleTypeAllowedCurrencies, Currencies: []string{"usd", "eur"}}

	ok, _ := rule.Eval(Purchase{CurrencyCode: "usd"})
	assert.True(t, ok)

	ok, reason := rule.Eval(Purchase{CurrencyCode: "gbp"})
	assert.False(t, ok)
	assert.Contains(t, reason, "not eligible")

	// An empty currency list places no restriction.
	open := Rule{Type: RuleTypeAllowedCurrencies}
	ok, _ = open.Eval(Purchase{CurrencyCode: "gbp"})
	assert.True(t, ok)
}

func TestRuleEvalExcludedActor(t *testing.T) {
	rule := Rule{Type: RuleTypeExcludedActor, ActorIDs: []string{"user_1", "user_2"}}

	ok, reason := rule.Eval(Purchase{ActorID: "user_1"})
	assert.False(t, ok)
	assert.Equal(t, "actor excluded from promotion", reason)

	ok, _ = rule.Eval(Purchase{ActorID: "user_3"})
	assert.True(t, ok)
}

func TestRuleEvalAnd(t *testing.T) {
	rule := Rule{Type: RuleTypeAnd, Rules: []Rule{
		{Type: RuleTypeMinAmount, MinAmount: lo.ToPtr(decimal.NewFromInt(50))},
		{Type: RuleTypeAllowedCurrencies, Currencies: []string{"usd"}},
	}}

	ok, _ := rule.Eval(Purchase{Amount: decimal.NewFromInt(60), CurrencyCode: "usd"})
	assert.True(t, ok)

	ok, reason := rule.Eval(Purchase{Amount: decimal.NewFromInt(60), CurrencyCode: "eur"})
	assert.False(t, ok)
	assert.Contains(t, reason, "not eligible")

	ok, reason = rule.Eval(Purchase{Amount: decimal.NewFromInt(40), CurrencyCode: "usd"})
	assert.False(t, ok)
	assert.Contains(t, reason, "below minimum")
}

func TestRuleEvalUnknownTypeNeverMatches(t *testing.T) {
	rule := Rule{Type: RuleType("geo_fence")}
	ok, reason := rule.Eval(Purchase{Amount: decimal.NewFromInt(100)})
	assert.False(t, ok)
	assert.Contains(t, reason, "unknown rule type")
}

func TestRulesEvalConjunction(t *testing.T) {
	rules := Rules{
		{Type: RuleTypeMinAmount, MinAmount: lo.ToPtr(decimal.NewFromInt(10))},
		{Type: RuleTypeExcludedActor, ActorIDs: []string{"user_banned"}},
	}

	ok, _ := rules.Eval(Purchase{Amount: decimal.NewFromInt(20), ActorID: "user_ok"})
	assert.True(t, ok)

	ok, _ = rules.Eval(Purchase{Amount: decimal.NewFromInt(20), ActorID: "user_banned"})
	assert.False(t, ok)

	// An empty ruleset accepts every purchase.
	ok, _ = Rules{}.Eval(Purchase{})
	assert.True(t, ok)
}

func TestPromotionIsRedeemable(t *testing.T) {
	now := time.Now().UTC()

	p := &Promotion{}
	assert.True(t, p.IsRedeemable(now))

	p = &Promotion{RedeemAfter: lo.ToPtr(now.Add(time.Hour))}
	assert.False(t, p.IsRedeemable(now))

	p = &Promotion{RedeemBefore: lo.ToPtr(now.Add(-time.Hour))}
	assert.False(t, p.IsRedeemable(now))

	p = &Promotion{MaxRedemptions: lo.ToPtr(5), TotalRedemptions: 5}
	assert.False(t, p.IsRedeemable(now))

	p = &Promotion{
		RedeemAfter:    lo.ToPtr(now.Add(-time.Hour)),
		RedeemBefore:   lo.ToPtr(now.Add(time.Hour)),
		MaxRedemptions: lo.ToPtr(5),
	}
	assert.True(t, p.IsRedeemable(now))
}

func TestApplyDiscountFloorsAtZero(t *testing.T) {
	p := &Promotion{
		Type:      PromotionTypeFixed,
		AmountOff: lo.ToPtr(decimal.NewFromInt(200)),
	}
	final := p.ApplyDiscount(decimal.NewFromInt(150))
	assert.True(t, final.IsZero())
}

func TestApplyDiscountPercentage(t *testing.T) {
	p := &Promotion{
		Type:          PromotionTypePercentage,
		PercentageOff: lo.ToPtr(decimal.NewFromInt(25)),
	}
	final := p.ApplyDiscount(decimal.NewFromInt(200))
	assert.True(t, final.Equal(decimal.NewFromInt(150)), "got %s", final)
}
