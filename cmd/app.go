// Package cmd implements the CLI application that ranks Polymarket accounts
// by realized profit.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	pnl "github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis"
	"github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis/dune"
)

// Commands lists every subcommand of the pma CLI. A main package registers
// them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&rankCmd{},
	&fetchCmd{},
	&assistCmd{},
	&topicCmd{},
}

const duneAPIKeyEnv = "DUNE_API_KEY"

// as a CLI application, it has a very short lived lifecycle, so commands
// carry their own flags and resolve credentials at execution time.

// queryFlags are the flags shared by every command that reads a transaction
// ledger from Dune.
type queryFlags struct {
	queryID int
	apiFlag string
}

func (q *queryFlags) setFlags(f *flag.FlagSet) {
	f.IntVar(&q.queryID, "query", 0, "Dune query id returning the transaction ledger.")
	f.StringVar(&q.apiFlag, "dune-api-key", "", "Dune API key. This flag takes precedence over the "+duneAPIKeyEnv+" environment variable.")
}

// apiKey retrieves the Dune API key from the command-line flag or the
// environment variable. It prioritizes the flag over the environment
// variable.
func (q *queryFlags) apiKey() string {
	if q.apiFlag == "" {
		q.apiFlag = os.Getenv(duneAPIKeyEnv)
	}
	return q.apiFlag
}

// fetch retrieves and decodes the transaction ledger of the configured
// query.
func (q *queryFlags) fetch() ([]pnl.Transaction, error) {
	if q.queryID <= 0 {
		return nil, fmt.Errorf("no query id. Use the -query flag")
	}
	key := q.apiKey()
	if key == "" {
		return nil, fmt.Errorf("no Dune API key. Use the -dune-api-key flag or the %s environment variable", duneAPIKeyEnv)
	}
	return dune.Results(key, q.queryID)
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
