// Package pricing derives what a customer pays for a package: the chosen tier,
// the group total and the advance collected at booking time.
package pricing

import "kerala-tours/model"

const (
	FallbackTierName = "Standard Package"

	// AdvancePercent of the total is collected when booking, the rest before travel.
	AdvancePercent = 30
)

// ResolveTier returns the tier used for billing. Packages without tiers, or an index
// outside the tier list, fall back to tier 0 or to the package base price.
func ResolveTier(pkg model.TourPackage, tierIndex int) (int, model.PricingTier) {
	if len(pkg.PricingTiers) == 0 {
		return 0, model.PricingTier{
			Name:          FallbackTierName,
			Price:         pkg.Price,
			OriginalPrice: pkg.OriginalPrice,
			Features:      []string{},
		}
	}

	if tierIndex < 0 || tierIndex >= len(pkg.PricingTiers) {
		tierIndex = 0
	}

	return tierIndex, pkg.PricingTiers[tierIndex]
}

func Calculate(pkg model.TourPackage, tierIndex, groupSize int) model.Quote {
	tierIndex, tier := ResolveTier(pkg, tierIndex)
	groupSize = max(groupSize, 1)

	total := tier.Price * groupSize
	advance := AdvanceAmount(total)

	return model.Quote{
		TierIndex:       tierIndex,
		TierName:        tier.Name,
		UnitPrice:       tier.Price,
		OriginalPrice:   tier.OriginalPrice,
		GroupSize:       groupSize,
		TotalAmount:     total,
		AdvanceAmount:   advance,
		RemainingAmount: total - advance,
		DiscountPercent: DiscountPercent(tier.OriginalPrice, tier.Price),
	}
}

// AdvanceAmount is AdvancePercent of total rounded half up to a whole rupee.
// Integer arithmetic keeps it exact for any total.
func AdvanceAmount(total int) int {
	if total <= 0 {
		return 0
	}

	return (total*AdvancePercent + 50) / 100
}

// DiscountPercent is the rounded saving of price against original, clamped to [0, 100].
func DiscountPercent(original, price int) int {
	if original <= 0 || price >= original {
		return 0
	}
	if price < 0 {
		return 100
	}

	return ((original-price)*200 + original) / (2 * original)
}
