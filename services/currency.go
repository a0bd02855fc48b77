package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrencyVND định dạng số tiền theo kiểu vi-VN: 1.500.000 ₫ (khoảng trắng không ngắt dòng)
func FormatCurrencyVND(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0)

	digits := rounded.Abs().StringFixed(0)
	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString("\u00a0₫")
	return b.String()
}
