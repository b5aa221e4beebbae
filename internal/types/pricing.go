package types

import (
	"github.com/samber/lo"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

// PricingModel determines how a promoted-listing catalog entry is billed.
type PricingModel string

const (
	// PricingModelFlat charges the base price once per placement
	PricingModelFlat PricingModel = "flat"
	// PricingModelCPM charges the base price per thousand impressions
	PricingModelCPM PricingModel = "cpm"
	// PricingModelCPC charges the base price per click
	PricingModelCPC PricingModel = "cpc"
)

func (m PricingModel) String() string {
	return string(m)
}

func (m PricingModel) Validate() error {
	allowed := []PricingModel{PricingModelFlat, PricingModelCPM, PricingModelCPC}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid pricing model").
			WithHint("Invalid pricing model").
			WithReportableDetails(map[string]any{
				"pricing_model":  m,
				"allowed_values": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
