package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/platform/config"
	"github.com/SscSPs/wealth_tracker/internal/utils"
	"github.com/google/subcommands"
)

// tokenCmd signs a bearer token for the API.
type tokenCmd struct {
	subject string
	ttl     time.Duration
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "sign a bearer token for the HTTP API" }
func (*tokenCmd) Usage() string {
	return `wealthctl token [-subject <name>] [-ttl <duration>]

  Signs an HS256 token with JWT_SECRET and JWT_ISSUER.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subject, "subject", "owner", "Token subject")
	f.DurationVar(&c.ttl, "ttl", 24*time.Hour, "Token lifetime")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.subject == "" || c.ttl <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -subject must be set and -ttl must be positive.")
		return subcommands.ExitUsageError
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	token, err := utils.GenerateJWT(c.subject, cfg.JWTSecret, c.ttl, cfg.JWTIssuer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(token)
	return subcommands.ExitSuccess
}
