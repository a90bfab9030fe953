package pnl

import (
	"fmt"
	"sort"
)

// AccountResult is one row of the profitability leaderboard.
type AccountResult struct {
	Address           string
	SharesBought      Quantity // sum of buy shares
	AvgBuyPrice       Money    // cost basis / shares bought
	SharesSold        Quantity // sum of sell shares
	AvgSellPrice      Money    // proceeds / shares sold, zero when nothing sold
	RealizedProfit    Money    // FIFO-matched realized gain
	ROI               Percent  // realized profit over proceeds
	CostBasis         Money    // sum of buy amounts
	SharesSoldPercent Percent  // shares sold over shares bought
}

// RankAccounts computes one AccountResult per distinct account appearing in
// the buy subset, sorted by descending realized profit.
//
// The account universe is derived from buys only: an account that appears
// exclusively in the sell subset is never reported. This mirrors the
// original analysis and is intentional, see the oversell topic.
func RankAccounts(buys, sells []Transaction) ([]AccountResult, error) {
	buysOf := make(map[string][]Transaction)
	var accounts []string // encounter order, for deterministic iteration
	for _, tx := range buys {
		if _, seen := buysOf[tx.Address]; !seen {
			accounts = append(accounts, tx.Address)
		}
		buysOf[tx.Address] = append(buysOf[tx.Address], tx)
	}

	sellsOf := make(map[string][]Transaction)
	for _, tx := range sells {
		sellsOf[tx.Address] = append(sellsOf[tx.Address], tx)
	}

	results := make([]AccountResult, 0, len(accounts))
	for _, address := range accounts {
		result, err := computeAccount(address, buysOf[address], sellsOf[address])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RealizedProfit.GreaterThan(results[j].RealizedProfit)
	})
	return results, nil
}

// computeAccount runs the FIFO matching pass for a single account and
// aggregates its result row.
func computeAccount(address string, buys, sells []Transaction) (AccountResult, error) {
	var sharesBought Quantity
	var costBasis Money
	for _, tx := range buys {
		sharesBought = sharesBought.Add(tx.Shares)
		costBasis = costBasis.Add(tx.AmountUSDC)
	}
	if sharesBought.IsZero() {
		// The account came from the buy subset, so it has buy rows; their
		// shares summing to zero makes the average buy price undefined.
		return AccountResult{}, fmt.Errorf("account %s: bought shares sum to zero, average buy price is undefined", address)
	}
	avgBuyPrice := costBasis.Div(sharesBought)

	var sharesSold Quantity
	var proceeds Money
	for _, tx := range sells {
		sharesSold = sharesSold.Add(tx.Shares)
		proceeds = proceeds.Add(tx.AmountUSDC)
	}
	var avgSellPrice Money // an account with no qualifying sells averages to zero
	if sharesSold.IsPositive() {
		avgSellPrice = proceeds.Div(sharesSold)
	}

	realized := matchFIFO(buys, sells)

	var roi Percent // proceeds of zero define a zero ROI, whatever the profit
	if proceeds.IsPositive() {
		roi = Percent(realized.value.Div(proceeds.value).InexactFloat64() * 100)
	}
	soldPercent := Percent(sharesSold.value.Div(sharesBought.value).InexactFloat64() * 100)

	return AccountResult{
		Address:           address,
		SharesBought:      sharesBought,
		AvgBuyPrice:       avgBuyPrice,
		SharesSold:        sharesSold,
		AvgSellPrice:      avgSellPrice,
		RealizedProfit:    realized.snapZero(),
		ROI:               roi.snapZero(),
		CostBasis:         costBasis,
		SharesSoldPercent: soldPercent,
	}, nil
}

// matchFIFO merges an account's buys and sells in chronological order and
// consumes buy lots oldest-first to satisfy each sell, returning the total
// realized profit.
func matchFIFO(buys, sells []Transaction) Money {
	merged := make([]Transaction, 0, len(buys)+len(sells))
	merged = append(merged, buys...)
	merged = append(merged, sells...)
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Time.Equal(merged[j].Time) {
			return merged[i].Time.Before(merged[j].Time)
		}
		// Equal timestamps fall back to source row order.
		return merged[i].ordinal < merged[j].ordinal
	})

	var queue lotQueue
	var realized Money
	for _, tx := range merged {
		switch tx.Side {
		case SideBuy:
			queue.enqueue(tx.Shares, tx.Price)
		case SideSell:
			realized = realized.Add(queue.sell(tx.Shares, tx.Price))
		}
	}
	return realized
}
