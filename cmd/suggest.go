package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/okent/spendreport"
)

type suggestCmd struct {
	period rangeFlags
	model  string
}

func (*suggestCmd) Name() string { return "suggest" }
func (*suggestCmd) Synopsis() string {
	return "ask the AI assistant for rules covering unclassified spending"
}
func (*suggestCmd) Usage() string {
	return `qbs suggest [-s <start>] [-e <end>] [-model <name>]

  Collects the period's transactions that fall into the catch-all
  category and asks Gemini to propose keywords or patterns that would
  classify them. The suggestions are printed for review; nothing is
  written to the rules file.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	c.period.setFlags(f)
	f.StringVar(&c.model, "model", "gemini-2.5-pro", "Gemini model to use")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := c.period.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	kept, _ := a.fetch(period)

	var unclassified []string
	for _, tx := range kept {
		if a.rules.Classify(tx.Description) == spendreport.DefaultCategory {
			unclassified = append(unclassified, tx.Description)
		}
	}
	if len(unclassified) == 0 {
		fmt.Println("Every transaction of the period is already classified.")
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	chat, err := client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	prompt := fmt.Sprintf(`These purchase descriptions were not matched by any category rule.
The existing categories are: %s.
For each description, suggest either an uppercase keyword for an existing
category or a new category with keywords. Answer as a short markdown list.

%s`, strings.Join(a.rules.Names(), ", "), strings.Join(unclassified, "\n"))

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking for suggestions:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty response from the model")
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
