package engine

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice renders an amount with grouped thousands, prefixed by symbol.
// Whole amounts drop the fraction: 12000 -> "12,000", 12.5 -> "12.50".
func FormatPrice(amount decimal.Decimal, symbol string) string {
	p := message.NewPrinter(language.English)
	if amount.Equal(amount.Truncate(0)) {
		return symbol + p.Sprintf("%d", amount.IntPart())
	}
	return symbol + p.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// DiscountedPrice applies a percentage discount, rounded to two places.
func DiscountedPrice(price float64, percent int) decimal.Decimal {
	p := decimal.NewFromFloat(price)
	if percent == 0 {
		return p
	}
	factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return p.Mul(factor).Round(2)
}
