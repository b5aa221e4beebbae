package promotion

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RuleType tags an eligibility rule variant.
type RuleType string

const (
	RuleTypeMinAmount         RuleType = "min_amount"
	RuleTypeMaxAmount         RuleType = "max_amount"
	RuleTypeAllowedCurrencies RuleType = "allowed_currencies"
	RuleTypeExcludedActor     RuleType = "excluded_actor"
	RuleTypeAnd               RuleType = "and"
)

// Rule is a tagged-variant eligibility rule. Only the fields belonging to
// the tagged variant are consulted during evaluation.
type Rule struct {
	Type       RuleType         `json:"type"`
	MinAmount  *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount  *decimal.Decimal `json:"max_amount,omitempty"`
	Currencies []string         `json:"currencies,omitempty"`
	ActorIDs   []string         `json:"actor_ids,omitempty"`
	Rules      []Rule           `json:"rules,omitempty"`
}

// Purchase is the payload a ruleset is evaluated against.
type Purchase struct {
	Amount       decimal.Decimal
	CurrencyCode string
	ActorID      string
}

// Eval reports whether the purchase satisfies the rule and, when it does
// not, the reason.
func (r Rule) Eval(p Purchase) (bool, string) {
	switch r.Type {
	case RuleTypeMinAmount:
		if r.MinAmount != nil && p.Amount.LessThan(*r.MinAmount) {
			return false, fmt.Sprintf("amount %s below minimum %s", p.Amount, r.MinAmount)
		}
		return true, ""
	case RuleTypeMaxAmount:
		if r.MaxAmount != nil && p.Amount.GreaterThan(*r.MaxAmount) {
			return false, fmt.Sprintf("amount %s above maximum %s", p.Amount, r.MaxAmount)
		}
		return true, ""
	case RuleTypeAllowedCurrencies:
		if len(r.Currencies) > 0 && !lo.Contains(r.Currencies, p.CurrencyCode) {
			return false, fmt.Sprintf("currency %s not eligible", p.CurrencyCode)
		}
		return true, ""
	case RuleTypeExcludedActor:
		if lo.Contains(r.ActorIDs, p.ActorID) {
			return false, "actor excluded from promotion"
		}
		return true, ""
	case RuleTypeAnd:
		for _, sub := range r.Rules {
			if ok, reason := sub.Eval(p); !ok {
				return false, reason
			}
		}
		return true, ""
	default:
		// Unknown rule variants never match; a stale code path must not
		// widen eligibility.
		return false, fmt.Sprintf("unknown rule type %q", r.Type)
	}
}

// Rules is a conjunction of rules stored as a JSONB column.
type Rules []Rule

// Eval evaluates all rules as a conjunction.
func (rs Rules) Eval(p Purchase) (bool, string) {
	return Rule{Type: RuleTypeAnd, Rules: rs}.Eval(p)
}

func (rs Rules) Value() (driver.Value, error) {
	if rs == nil {
		return nil, nil
	}
	return json.Marshal(rs)
}

func (rs *Rules) Scan(src any) error {
	if src == nil {
		*rs = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, rs)
	case string:
		return json.Unmarshal([]byte(v), rs)
	default:
		return fmt.Errorf("unsupported rules column type %T", src)
	}
}
