package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. When rendering fails
// (no TTY, unknown style) the raw markdown is printed instead.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// writeReport saves raw markdown to a flat report file.
func writeReport(path, md string) error {
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	return nil
}
