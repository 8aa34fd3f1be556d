package vacation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayCalculator_Calculate(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		days   int
		daily  string
		base   string
		bonus  string
		total  string
	}{
		{name: "ten days", salary: "3000", days: 10, daily: "100.00", base: "1000.00", bonus: "333.33", total: "1333.33"},
		{name: "full month", salary: "4500.00", days: 30, daily: "150.00", base: "4500.00", bonus: "1500.00", total: "6000.00"},
		{name: "single day", salary: "1412.00", days: 1, daily: "47.07", base: "47.07", bonus: "15.69", total: "62.76"},
		{name: "no days", salary: "2000", days: 0, daily: "66.67", base: "0.00", bonus: "0.00", total: "0.00"},
		{name: "negative days clamp to zero", salary: "2000", days: -3, daily: "66.67", base: "0.00", bonus: "0.00", total: "0.00"},
	}

	calc := NewPayCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(decimal.RequireFromString(tt.salary), tt.days)
			assert.Equal(t, tt.daily, got.DailyRate.StringFixed(2))
			assert.Equal(t, tt.base, got.BaseAmount.StringFixed(2))
			assert.Equal(t, tt.bonus, got.Bonus.StringFixed(2))
			assert.Equal(t, tt.total, got.Total.StringFixed(2))
		})
	}
}

func TestPayCalculator_RoundsOnlyAtTheEnd(t *testing.T) {
	// 1000/30 = 33.333..; rounding the daily rate first would give 333.30 for ten days
	got := NewPayCalculator().Calculate(decimal.NewFromInt(1000), 10)
	assert.Equal(t, "333.33", got.BaseAmount.StringFixed(2))
	assert.Equal(t, "444.44", got.Total.StringFixed(2))
}
