package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	pnl "github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis"
	"github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis/agent"
	"github.com/unthinkableETH/Polymarket-Incorrect-Cutoff-Analysis/renderer"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	queryFlags
	cutoff string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session about the leaderboard" }
func (*assistCmd) Usage() string {
	return `pma assist -query <id> [-cutoff <instant>] [<prompt>]

  Runs the ranking, then starts an interactive Gemini session: an accountant
  expert carries the computed leaderboard and a researcher expert can search
  the web for context about the ranked accounts.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.queryFlags.setFlags(f)
	f.StringVar(&c.cutoff, "cutoff", "", "Exclusive upper time bound, RFC3339 or YYYY-MM-DD (midnight UTC). Defaults to now.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

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
	leaderboard := renderer.LeaderboardMarkdown(results, cutoff)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	accountant := agent.NewAccountant(leaderboard)
	researcher := agent.NewResearcher()
	a := agent.New(os.Stdout, os.Stdin, accountant, researcher)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
