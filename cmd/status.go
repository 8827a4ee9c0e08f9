package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/subcommands"

	"github.com/okent/spendreport/quickbooks"
	"github.com/okent/spendreport/renderer"
)

// tokenClient bypasses the daily response cache: token state changes
// within the day and must always be read fresh.
func tokenClient() *quickbooks.Client {
	return quickbooks.NewWithHTTPClient(baseURL(), http.DefaultClient)
}

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the QuickBooks token status" }
func (*statusCmd) Usage() string {
	return `qbs status

  Asks the query server whether its QuickBooks access token is still
  valid and when it expires.
`
}

func (*statusCmd) SetFlags(_ *flag.FlagSet) {}

func (*statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := tokenClient()
	status, err := client.TokenStatus()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Status(status))
	if status.IsExpired {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "force a QuickBooks token refresh" }
func (*refreshCmd) Usage() string {
	return `qbs refresh

  Asks the query server to refresh its QuickBooks access token now.
`
}

func (*refreshCmd) SetFlags(_ *flag.FlagSet) {}

func (*refreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := tokenClient()
	result, err := client.RefreshToken()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (new expiry: %s)\n", result.Message, result.NewExpiryTime)
	return subcommands.ExitSuccess
}
