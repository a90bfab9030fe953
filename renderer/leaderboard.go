// Package renderer turns computed account results into their output
// representations: a markdown leaderboard for the terminal and a CSV table
// for persistence.
package renderer

import (
	"fmt"
	"strings"
	"time"

	pnl "github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis"
)

// LeaderboardMarkdown renders ranked account results as a markdown report.
// Results are expected in their leaderboard order (descending realized
// profit); the renderer does not reorder them.
func LeaderboardMarkdown(results []pnl.AccountResult, cutoff time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Profit Leaderboard\n\n")
	fmt.Fprintf(&b, "FIFO cost basis, %d accounts, trades strictly before %s.\n\n",
		len(results), cutoff.UTC().Format(time.RFC3339))

	fmt.Fprintln(&b, "| # | Account | Bought | Avg Buy | Sold | Avg Sell | Realized | ROI | Cost Basis | Sold |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|---:|---:|---:|---:|")
	for i, r := range results {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			i+1,
			r.Address,
			r.SharesBought,
			r.AvgBuyPrice,
			r.SharesSold,
			r.AvgSellPrice,
			r.RealizedProfit.SignedString(),
			r.ROI.SignedString(),
			r.CostBasis,
			r.SharesSoldPercent,
		)
	}

	return b.String()
}

// TransactionsMarkdown renders a raw transaction batch as a markdown table,
// used to sanity-check what a query returns before ranking it.
func TransactionsMarkdown(txs []pnl.Transaction) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Transactions\n\n%d rows.\n\n", len(txs))
	fmt.Fprintln(&b, "| Account | Type | Time | Shares | Price | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Address,
			tx.Side,
			tx.Time.Format(time.RFC3339),
			tx.Shares,
			tx.Price,
			tx.AmountUSDC,
		)
	}

	return b.String()
}
