package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// netWorthCmd prints net worth per account type, optionally with portfolio valuations.
type netWorthCmd struct {
	at       string
	currency string
	full     bool
	raw      bool
}

func (*netWorthCmd) Name() string     { return "networth" }
func (*netWorthCmd) Synopsis() string { return "display net worth per account type" }
func (*netWorthCmd) Usage() string {
	return `wealthctl networth [-at <YYYY-MM-DD>] [-currency <code>] [-full] [-raw]

  Displays account balances grouped by account type. With -full the latest
  portfolio snapshots on or before -at are added.
`
}

func (c *netWorthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.at, "at", "", "Cutoff date, today's balances when empty")
	f.StringVar(&c.currency, "currency", "", "Only accounts and portfolios in this currency")
	f.BoolVar(&c.full, "full", false, "Include portfolio valuations")
	f.BoolVar(&c.raw, "raw", false, "Print plain markdown instead of rendering it")
}

func (c *netWorthCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	container, closeFn, err := openServices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to the database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	params := dto.NetWorthParams{At: c.at, Currency: c.currency}
	grouped, err := container.Reporting.GetGroupedNetWorth(ctx, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing net worth: %v\n", err)
		return subcommands.ExitFailure
	}

	var full *dto.NetWorthResponse
	if c.full {
		full, err = container.Reporting.GetNetWorthFull(ctx, params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing full net worth: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	md := netWorthMarkdown(grouped, full)
	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	if err := printMarkdown(md); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// netWorthMarkdown renders the report as a markdown table. full may be nil.
func netWorthMarkdown(grouped *dto.GroupedNetWorthResponse, full *dto.NetWorthResponse) string {
	var b strings.Builder

	at := "today"
	if grouped.At != nil {
		at = *grouped.At
	}
	fmt.Fprintf(&b, "# Net worth on %s (%s)\n\n", at, grouped.Currency)

	b.WriteString("| Account type | Total |\n")
	b.WriteString("|:---|---:|\n")
	for _, g := range grouped.Groups {
		fmt.Fprintf(&b, "| %s | %s |\n", g.AccountType, g.Total.Display)
	}
	fmt.Fprintf(&b, "| **Accounts** | **%s** |\n", grouped.Total.Display)

	if full != nil && full.Portfolios != nil {
		fmt.Fprintf(&b, "| Portfolios | %s |\n", full.Portfolios.Display)
		fmt.Fprintf(&b, "| **Net worth** | **%s** |\n", full.Total.Display)
	}
	return b.String()
}

func printMarkdown(md string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
