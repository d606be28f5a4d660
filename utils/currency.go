package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatGHS formats an amount as Ghana Cedi, e.g. "GH₵1,234.56".
func FormatGHS(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "GH₵0.00"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	return fmt.Sprintf("%sGH₵%s.%02d", sign, groupThousands(whole), cents)
}

// FormatGHSString parses a numeric string (stripping currency symbols and
// separators) and formats it. Unparseable input formats as zero.
func FormatGHSString(value string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, value)

	num, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return FormatGHS(0)
	}
	return FormatGHS(num)
}

func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
