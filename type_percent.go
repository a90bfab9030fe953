package pnl

import "fmt"

// Percent is a display ratio (ROI, share of bought shares that were sold).
// Unlike Money it is a plain float: ratios are for reading, not accounting.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// snapZero clamps ratios within 0.01 of zero to exactly zero. The threshold
// is numerically the same as the profit snap even though the units differ
// (percentage points vs USDC); that asymmetry is inherited from the original
// analysis and kept on purpose. The snap is idempotent.
func (p Percent) snapZero() Percent {
	if p > -0.01 && p < 0.01 {
		return 0
	}
	return p
}
