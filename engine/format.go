package engine

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Format renders a finite decimal for display.
//
// Trailing zeros are dropped. Values with an adjusted exponent at or
// below ExpNeg, or at or above ExpPos, use exponential notation with an
// always signed exponent ("1.5e+9", "2.5e-1"); others are plain ("1234.5").
// Zero of either sign is "0".
func (cfg Config) Format(d *apd.Decimal) string {
	if d.Form != apd.Finite {
		return d.String()
	}

	if d.IsZero() {
		return "0"
	}

	r := new(apd.Decimal)
	r.Reduce(d)

	digits := r.Coeff.String()
	e := int64(r.Exponent) + int64(len(digits)) - 1

	var sb strings.Builder
	if r.Negative {
		sb.WriteByte('-')
	}

	switch {
	case e <= int64(cfg.ExpNeg) || e >= int64(cfg.ExpPos):
		sb.WriteString(digits[:1])
		if len(digits) > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('e')
		if e >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.FormatInt(e, 10))
	case e < 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", int(-e-1)))
		sb.WriteString(digits)
	case int64(len(digits)) <= e+1:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", int(e+1)-len(digits)))
	default:
		sb.WriteString(digits[:e+1])
		sb.WriteByte('.')
		sb.WriteString(digits[e+1:])
	}

	return sb.String()
}
