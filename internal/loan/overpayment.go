package loan

import (
	"fmt"

	"github.com/iwvelando/mortgage-planner/pkg/money"
	"github.com/iwvelando/mortgage-planner/pkg/period"
)

// OverpaymentEffect records what the borrower wants extra payments to achieve.
// The schedule algorithm itself always computes a fixed installment; the tag
// is carried through for presentation.
type OverpaymentEffect string

const (
	// EffectShortenTerm applies extra payments toward an earlier payoff date.
	EffectShortenTerm OverpaymentEffect = "shorten_term"

	// EffectReducePayment marks the intent to lower future installments.
	EffectReducePayment OverpaymentEffect = "reduce_payment"
)

// OverpaymentPlan holds a recurring base overpayment plus sparse per-period
// overrides. Immutable; mutators return a new plan.
type OverpaymentPlan struct {
	base   money.Money
	effect OverpaymentEffect
	custom map[int]money.Money
}

// NewOverpaymentPlan constructs a plan from raw per-period overrides.
// Overrides with non-positive period numbers or negative amounts are silently
// dropped rather than rejected.
func NewOverpaymentPlan(base money.Money, effect OverpaymentEffect, custom map[int]float64) OverpaymentPlan {
	overrides := make(map[int]money.Money, len(custom))
	for month, amount := range custom {
		if month <= 0 {
			continue
		}
		value, err := money.New(amount)
		if err != nil {
			continue
		}
		overrides[month] = value
	}
	return OverpaymentPlan{base: base, effect: effect, custom: overrides}
}

// NoOverpayment returns the canonical zero plan used for baseline schedules.
func NoOverpayment() OverpaymentPlan {
	return OverpaymentPlan{base: money.Zero(), effect: EffectShortenTerm, custom: map[int]money.Money{}}
}

// Base returns the recurring overpayment amount.
func (p OverpaymentPlan) Base() money.Money { return p.base }

// Effect returns the declared overpayment intent.
func (p OverpaymentPlan) Effect() OverpaymentEffect { return p.effect }

// AmountFor resolves the effective overpayment for a period: the override if
// one is present, otherwise the base amount.
func (p OverpaymentPlan) AmountFor(month int) money.Money {
	if amount, ok := p.custom[month]; ok {
		return amount
	}
	return p.base
}

// HasCustom reports whether a period has an explicit override.
func (p OverpaymentPlan) HasCustom(month int) bool {
	_, ok := p.custom[month]
	return ok
}

// WithCustom returns a plan with an override for the given period. An amount
// equal to the base is a reset: the override is removed instead of stored, so
// redundant overrides never accumulate.
func (p OverpaymentPlan) WithCustom(month int, amount money.Money) (OverpaymentPlan, error) {
	if month < 1 {
		return OverpaymentPlan{}, fmt.Errorf("%w: period number must be positive", period.ErrInvalidPeriod)
	}

	overrides := p.copyCustom()
	if amount.Equal(p.base) {
		delete(overrides, month)
	} else {
		overrides[month] = amount
	}
	return OverpaymentPlan{base: p.base, effect: p.effect, custom: overrides}, nil
}

// WithoutCustom returns a plan with the period's override removed.
func (p OverpaymentPlan) WithoutCustom(month int) OverpaymentPlan {
	overrides := p.copyCustom()
	delete(overrides, month)
	return OverpaymentPlan{base: p.base, effect: p.effect, custom: overrides}
}

// WithBase returns a plan with a different recurring amount.
func (p OverpaymentPlan) WithBase(base money.Money) OverpaymentPlan {
	return OverpaymentPlan{base: base, effect: p.effect, custom: p.copyCustom()}
}

// WithEffect returns a plan with a different effect tag.
func (p OverpaymentPlan) WithEffect(effect OverpaymentEffect) OverpaymentPlan {
	return OverpaymentPlan{base: p.base, effect: effect, custom: p.copyCustom()}
}

// HasAny reports whether the plan ever pays anything extra.
func (p OverpaymentPlan) HasAny() bool {
	return p.base.IsPositive() || len(p.custom) > 0
}

// Custom returns the overrides as a plain period-to-amount record.
func (p OverpaymentPlan) Custom() map[int]float64 {
	result := make(map[int]float64, len(p.custom))
	for month, amount := range p.custom {
		result[month] = amount.Float64()
	}
	return result
}

// TotalPlanned sums the effective overpayments across the given number of
// periods, ignoring affordability.
func (p OverpaymentPlan) TotalPlanned(months int) money.Money {
	total := money.Zero()
	for month := 1; month <= months; month++ {
		total = total.Add(p.AmountFor(month))
	}
	return total
}

// ClampToAffordable caps an overpayment at what the remaining balance can
// absorb after the period's principal portion.
func (p OverpaymentPlan) ClampToAffordable(amount, remainingBalance, principalPortion money.Money) (money.Money, error) {
	maxAffordable, err := remainingBalance.Subtract(principalPortion)
	if err != nil {
		return money.Money{}, err
	}
	if amount.GreaterThan(maxAffordable) {
		return maxAffordable, nil
	}
	return amount, nil
}

func (p OverpaymentPlan) copyCustom() map[int]money.Money {
	overrides := make(map[int]money.Money, len(p.custom))
	for month, amount := range p.custom {
		overrides[month] = amount
	}
	return overrides
}
