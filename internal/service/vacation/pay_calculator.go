package vacation

import (
	"github.com/shopspring/decimal"
)

var (
	daysPerMonth  = decimal.NewFromInt(30)
	bonusFraction = decimal.NewFromInt(3)
)

// PayBreakdown is the unrounded vacation pay for a number of days
type PayBreakdown struct {
	Days       int
	DailyRate  decimal.Decimal
	BaseAmount decimal.Decimal
	Bonus      decimal.Decimal
	Total      decimal.Decimal
}

type PayCalculator struct {
}

func NewPayCalculator() *PayCalculator {
	return &PayCalculator{}
}

// Calculate pays salary/30 per day plus a one third bonus on top
func (c *PayCalculator) Calculate(salary decimal.Decimal, days int) PayBreakdown {
	if days < 0 {
		days = 0
	}

	daily := salary.Div(daysPerMonth)
	base := daily.Mul(decimal.NewFromInt(int64(days)))
	bonus := base.Div(bonusFraction)

	return PayBreakdown{
		Days:       days,
		DailyRate:  daily,
		BaseAmount: base,
		Bonus:      bonus,
		Total:      base.Add(bonus),
	}
}
