package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// importCSVCmd posts the rows of a CSV file as entries of one account.
type importCSVCmd struct {
	account string
	file    string
}

func (*importCSVCmd) Name() string     { return "import-csv" }
func (*importCSVCmd) Synopsis() string { return "import ledger entries from a CSV file" }
func (*importCSVCmd) Usage() string {
	return `wealthctl import-csv -account <id> -file <entries.csv>

  The header must name date, kind, amount and category. subcategory and label
  are optional. Invalid rows are reported and skipped.
`
}

func (c *importCSVCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Id of the account receiving the entries")
	f.StringVar(&c.file, "file", "", "Path to the CSV file")
}

func (c *importCSVCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -account and -file flags are required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CSV file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	container, closeFn, err := openServices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to the database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	res, err := container.Entry.ImportCSV(ctx, c.account, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing entries: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("imported %d entries\n", res.Imported)
	for _, msg := range res.Errors {
		fmt.Fprintf(os.Stderr, "skipped: %s\n", msg)
	}
	if len(res.Errors) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
