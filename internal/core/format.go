package core

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Currency is the display currency for all amounts.
const Currency = "GHS"

// FormatAmount renders an amount as "GHS 1,234.56". Negative amounts keep a
// leading minus: "-GHS 1,234.56".
func FormatAmount(d decimal.Decimal) string {
	prefix := Currency + " "
	if d.IsNegative() {
		prefix = "-" + prefix
		d = d.Neg()
	}
	return prefix + groupThousands(d.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a fixed
// two-decimal string.
func groupThousands(s string) string {
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + "." + parts[1]
}

// FormatDate renders a date as "02 Jan 2006". The zero time renders as a dash.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}

// FormatPeriod renders a statement period as "02 Jan 2006 - 02 Jan 2006".
func FormatPeriod(p StatementPeriod) string {
	return FormatDate(p.Start) + " - " + FormatDate(p.End)
}

// FormatPercent renders part as a share of total, one decimal place.
// A zero total yields "N/A" — never a division error or rendered Inf/NaN.
func FormatPercent(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "N/A"
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatSignedPercent renders a growth delta with an explicit sign, e.g.
// "+4.2%" or "-1.5%".
func FormatSignedPercent(d decimal.Decimal) string {
	s := d.StringFixed(1) + "%"
	if !d.IsNegative() {
		s = "+" + s
	}
	return s
}

// TitleStatus renders a transaction status for display: "Completed".
func TitleStatus(status string) string {
	if status == "" {
		return "-"
	}
	r, size := utf8.DecodeRuneInString(status)
	return strings.ToUpper(string(r)) + status[size:]
}
