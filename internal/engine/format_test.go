package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "12,000", FormatPrice(decimal.NewFromInt(12000), ""))
	assert.Equal(t, "Rp 12,000", FormatPrice(decimal.NewFromInt(12000), "Rp "))
	assert.Equal(t, "$12.50", FormatPrice(decimal.RequireFromString("12.5"), "$"))
	assert.Equal(t, "1,234,567", FormatPrice(decimal.NewFromInt(1234567), ""))
	assert.Equal(t, "0", FormatPrice(decimal.Zero, ""))
}

func TestDiscountedPrice(t *testing.T) {
	assert.True(t, decimal.NewFromInt(11400).Equal(DiscountedPrice(12000, 5)))
	assert.True(t, decimal.RequireFromString("9.5").Equal(DiscountedPrice(10, 5)))
	assert.True(t, decimal.NewFromInt(12000).Equal(DiscountedPrice(12000, 0)))
}
