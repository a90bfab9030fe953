package pnl

import (
	"fmt"
	"strings"
	"time"
)

// Side is the direction of a ledger entry.
type Side int

const (
	// SideBuy acquires outcome shares against USDC.
	SideBuy Side = iota
	// SideSell liquidates outcome shares for USDC.
	SideSell
	// SideOther is any recognized-as-present but unknown transaction type.
	// Such rows are kept out of both partitions rather than rejected.
	SideOther
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "other"
	}
}

// ParseSide parses a raw transaction type. A missing or blank value is an
// error; an unknown non-blank value maps to SideOther so that the
// partitioner can silently exclude it.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	case "":
		return SideOther, fmt.Errorf("transaction type is blank")
	default:
		return SideOther, nil
	}
}

// Transaction is one immutable ledger entry: an account bought or sold a
// quantity of outcome shares at a unit price, for an observed USDC total.
//
// AmountUSDC is close to Shares×Price but is recorded independently by the
// upstream query; aggregates use it directly and never recompute it.
type Transaction struct {
	Address    string    // account identifier (wallet address)
	Side       Side      // buy or sell (or other, excluded from matching)
	Time       time.Time // normalized to UTC
	Shares     Quantity  // quantity traded, positive
	Price      Money     // unit price in USDC
	AmountUSDC Money     // observed total value of the trade

	// ordinal is the position of the row in the source result set. It breaks
	// FIFO ordering ties between transactions with equal timestamps, keeping
	// the matching deterministic.
	ordinal int
}

// NewTransaction builds a transaction, recording its position in the source
// result set.
func NewTransaction(ordinal int, address string, side Side, at time.Time, shares Quantity, price, amount Money) Transaction {
	return Transaction{
		Address:    address,
		Side:       side,
		Time:       at.UTC(),
		Shares:     shares,
		Price:      price,
		AmountUSDC: amount,
		ordinal:    ordinal,
	}
}

// timeLayouts are the accepted timestamp shapes. Every layout carries an
// explicit zone or offset: a timestamp that cannot be pinned to a definite
// instant is a hard error, never a guess.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.000 MST",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05.000 -07:00",
	"2006-01-02 15:04:05 -07:00",
}

// ParseTime resolves a raw timestamp to an instant and normalizes it to UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp is blank")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a zone-definite timestamp", s)
}

// ParseCutoff parses the cutoff instant supplied by the caller. On top of
// the transaction layouts it accepts a bare date, interpreted as midnight
// UTC of that day.
func ParseCutoff(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cutoff: %w", err)
	}
	return t, nil
}
