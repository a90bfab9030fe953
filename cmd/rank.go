package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	pnl "github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis"
	"github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis/renderer"
)

// rankCmd holds the flags for the 'rank' subcommand.
type rankCmd struct {
	queryFlags
	cutoff string
	output string
	limit  int
}

func (*rankCmd) Name() string     { return "rank" }
func (*rankCmd) Synopsis() string { return "rank accounts by FIFO realized profit" }
func (*rankCmd) Usage() string {
	return `pma rank -query <id> [-dune-api-key <key>] [-cutoff <instant>] [-o <file.csv>] [-limit <n>]

  Fetches the transaction ledger from Dune, keeps buys and sells strictly
  before the cutoff, matches each account's sells against its buys oldest
  first, and prints the accounts ranked by realized profit.

  With -o the full result table is also written as CSV.

Usage Examples:
# Rank all accounts of query 3847120 as of March 1st, midnight UTC.
$ pma rank -query 3847120 -cutoff 2025-03-01 -o results.csv

`
}

func (c *rankCmd) SetFlags(f *flag.FlagSet) {
	c.queryFlags.setFlags(f)
	f.StringVar(&c.cutoff, "cutoff", "", "Exclusive upper time bound, RFC3339 or YYYY-MM-DD (midnight UTC). Defaults to now.")
	f.StringVar(&c.output, "o", "", "Write the full result table to this CSV file.")
	f.IntVar(&c.limit, "limit", 0, "Only display the top n accounts (the CSV always has all of them).")
}

func (c *rankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cutoff := time.Now().UTC()
	if c.cutoff != "" {
		var err error
		cutoff, err = pnl.ParseCutoff(c.cutoff)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cutoff: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	txs, err := c.fetch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not retrieve transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	buys, sells := pnl.Partition(txs, cutoff)
	results, err := pnl.RankAccounts(buys, sells)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing results: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output != "" {
		if err := writeCSVFile(c.output, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote %d accounts to %s\n", len(results), c.output)
	}

	display := results
	if c.limit > 0 && c.limit < len(display) {
		display = display[:c.limit]
	}
	printMarkdown(renderer.LeaderboardMarkdown(display, cutoff))

	return subcommands.ExitSuccess
}

func writeCSVFile(filename string, results []pnl.AccountResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := renderer.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
