package pnl

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USDC is the collateral currency of every Polymarket trade. All monetary
// amounts in the ledger (prices and totals) are denominated in it.
const USDC = "USDC"

func init() {
	// go-money does not know about stablecoins; register USDC with the
	// usual 2 fraction digits so the formatter behaves like USD.
	money.AddCurrency(USDC, "USDC", "$1", ".", ",", 2)
}

// Money represents an amount of USDC.
//
// The amount is held as a decimal so that FIFO lot splits and running totals
// stay exact; float conversion only happens at the display-ratio boundary
// (see Percent).
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// String returns the amount formatted as a currency, e.g. "$1,234.56".
func (m Money) String() string {
	cur := money.GetCurrency(USDC)
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the formatted amount with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Plain returns the bare decimal amount without currency formatting,
// for machine-readable output such as the CSV results table.
func (m Money) Plain() string { return m.value.String() }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Mul scales the amount by a quantity of shares.
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }

// Div spreads the amount over a quantity of shares, yielding a per-share
// amount. The quantity must be non zero.
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value)} }

// Deprecated: AsFloat loses exactness, it exists for display ratios only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// profitEpsilon is the noise threshold under which a realized profit is
// reported as exactly zero (0.01 USDC).
var profitEpsilon = decimal.NewFromFloat(0.01)

// snapZero clamps amounts within profitEpsilon of zero to exactly zero.
// The snap is idempotent.
func (m Money) snapZero() Money {
	if m.value.Abs().LessThan(profitEpsilon) {
		return Money{}
	}
	return m
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
