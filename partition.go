package pnl

import "time"

// Partition splits a transaction batch into its buy and sell subsets,
// restricted to transactions strictly before the cutoff. Rows at or after
// the cutoff, and rows of an unrecognized type, belong to neither subset:
// they are future or out-of-scope activity for this run and are silently
// excluded from the profit computation.
//
// Partition is a pure filter. Malformed rows never reach it: field and
// timestamp validation happens when rows are decoded at the source boundary.
func Partition(txs []Transaction, cutoff time.Time) (buys, sells []Transaction) {
	for _, tx := range txs {
		if !tx.Time.Before(cutoff) {
			continue
		}
		switch tx.Side {
		case SideBuy:
			buys = append(buys, tx)
		case SideSell:
			sells = append(sells, tx)
		}
	}
	return buys, sells
}
