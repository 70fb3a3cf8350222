package txrecord

import "strconv"

// upperBoundText is what a value just below MaxAmount rounds to.
const upperBoundText = "500.00"

// FormatTransaction renders v with two decimals, prefixed with + when v >= 0.
// Values that round up to MaxAmount are rendered as +499.99 so the text stays
// inside [MinAmount, MaxAmount).
func FormatTransaction(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if v < 0 {
		return s
	}
	if s == upperBoundText {
		s = "499.99"
	}
	return "+" + s
}
