package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis/renderer"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	queryFlags
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch and display the raw transaction ledger" }
func (*fetchCmd) Usage() string {
	return `pma fetch -query <id> [-dune-api-key <key>]

  Fetches the transaction ledger from Dune and prints the decoded rows
  without ranking them. Useful to check what a query returns before
  running an analysis on it.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.queryFlags.setFlags(f)
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := c.fetch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not retrieve transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
