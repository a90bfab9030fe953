package renderer

import (
	"encoding/csv"
	"io"
	"strconv"

	pnl "github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis"
)

// csvHeader lists the columns of the persisted results table, in order.
var csvHeader = []string{
	"address",
	"total_shares_bought",
	"avg_buy_price",
	"total_shares_sold",
	"avg_sell_price",
	"realized_profit",
	"roi_percent",
	"cost_basis_all_shares_bought",
	"percent_shares_sold",
}

// WriteCSV persists the results as a comma-delimited table: a header row
// then one row per account, in the order given (descending realized
// profit). Amounts are written as bare decimals, percentages as plain
// numbers without the % sign.
func WriteCSV(w io.Writer, results []pnl.AccountResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Address,
			r.SharesBought.String(),
			r.AvgBuyPrice.Plain(),
			r.SharesSold.String(),
			r.AvgSellPrice.Plain(),
			r.RealizedProfit.Plain(),
			formatPercent(r.ROI),
			r.CostBasis.Plain(),
			formatPercent(r.SharesSoldPercent),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatPercent(p pnl.Percent) string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}
