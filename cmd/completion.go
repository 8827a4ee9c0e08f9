package cmd

import (
	"github.com/posener/complete/v2"
)

// Completion installs shell completion. Complete() returns immediately
// unless the binary is being invoked by the shell completion hook, in
// which case it prints the candidates and exits.
func Completion(binary string) {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"monthly", "annual", "publish",
		"categories", "vendors", "recurring", "top", "large", "search", "suggest",
		"status", "refresh",
		"help", "flags", "commands",
	} {
		sub[name] = &complete.Command{}
	}
	cmp := complete.Command{Sub: sub}
	cmp.Complete(binary)
}
