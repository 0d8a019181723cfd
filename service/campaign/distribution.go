package campaign

import (
	"github.com/QuangTung97/poolparty/model"
	"github.com/shopspring/decimal"
)

const (
	// AmountPlaces is the smallest unit of the base asset
	AmountPlaces = 18

	// TokenPlaces is the smallest unit of the purchased token
	TokenPlaces = 18

	// PercentPlaces is the precision of locked contribution fractions
	PercentPlaces = 18
)

var hundred = decimal.NewFromInt(100)

// IsExactAmount reports whether d has no digits below the smallest unit of the base asset
func IsExactAmount(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountPlaces))
}

// floorDiv divides rounding toward zero, a zero divisor yields zero
func floorDiv(a, b decimal.Decimal, places int32) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	q, _ := a.QuoRem(b, places)
	return q
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ActualDiscountPercent = 100 - groupPrice * 100 / publicPrice
func ActualDiscountPercent(publicPrice, groupPrice decimal.Decimal) decimal.Decimal {
	return hundred.Sub(floorDiv(groupPrice.Mul(hundred), publicPrice, PercentPlaces))
}

// ComputeSubsidy returns the top up needed so the sale receives the public price equivalent
func ComputeSubsidy(c model.Campaign) decimal.Decimal {
	if c.TotalContributions.IsZero() {
		return decimal.Zero
	}
	groupContribPercent := hundred.Sub(c.ActualDiscountPercent)
	if !groupContribPercent.IsPositive() {
		return decimal.Zero
	}
	amountToRelease := floorDiv(c.TotalContributions.Mul(hundred), groupContribPercent, AmountPlaces)
	return nonNegative(amountToRelease.Sub(c.TotalContributions))
}

// ComputeFee = totalContributions * feePercent / 100
func ComputeFee(c model.Campaign) decimal.Decimal {
	return floorDiv(c.TotalContributions.Mul(c.FeePercent), hundred, AmountPlaces)
}

// RequiredReleaseValue is the exact value that must accompany the release of funds
func RequiredReleaseValue(c model.Campaign) decimal.Decimal {
	required := ComputeFee(c)
	if c.SubsidyRequired {
		required = required.Add(ComputeSubsidy(c))
	}
	return required
}

// ContributionPercent is the fraction of total owned by balance
func ContributionPercent(balance, total decimal.Decimal) decimal.Decimal {
	return floorDiv(balance, total, PercentPlaces)
}

// ComputeTokensDue returns the token entitlement of the participant, capped by the undistributed tokens
// once tokens were received
func ComputeTokensDue(c model.Campaign, p model.Participant) decimal.Decimal {
	base := p.Balance
	if c.FundsReleased {
		base = p.LockedBalance
	}
	due := floorDiv(base, c.GroupPrice, TokenPlaces)
	if c.Status != model.CampaignStatusClaim {
		return due
	}
	remaining := nonNegative(c.TotalTokensReceived.Sub(c.TokensDistributed))
	return minDecimal(due, remaining)
}

// ComputeResidueShare = residueSnapshot * contributionPercent, capped by the undistributed residue
func ComputeResidueShare(c model.Campaign, p model.Participant) decimal.Decimal {
	share := c.ResidueSnapshot.Mul(p.ContributionPercent).Truncate(AmountPlaces)
	remaining := nonNegative(c.ResidueSnapshot.Sub(c.ResidueDistributed))
	return nonNegative(minDecimal(share, remaining))
}

// ContributionsDue is what a participant can still obtain from the campaign
type ContributionsDue struct {
	RefundDue decimal.Decimal
	TokensDue decimal.Decimal
}

// ComputeContributionsDue ...
func ComputeContributionsDue(c model.Campaign, p model.Participant) ContributionsDue {
	if !c.FundsReleased {
		due := ContributionsDue{
			RefundDue: p.Balance,
			TokensDue: decimal.Zero,
		}
		if c.Configured {
			due.TokensDue = ComputeTokensDue(c, p)
		}
		return due
	}

	due := ContributionsDue{
		RefundDue: decimal.Zero,
		TokensDue: decimal.Zero,
	}
	switch c.Status {
	case model.CampaignStatusClaim:
		if !p.TokensClaimed {
			due.TokensDue = ComputeTokensDue(c, p)
		}
		if !p.RefundClaimed {
			due.RefundDue = ComputeResidueShare(c, p)
		}
	case model.CampaignStatusRefunding:
		if !p.RefundClaimed {
			due.RefundDue = ComputeResidueShare(c, p)
		}
	default:
		due.TokensDue = ComputeTokensDue(c, p)
	}
	return due
}
