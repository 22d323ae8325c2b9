package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "distil",
	Short: "Distill grammar fragments from documentation into tiered schema trees",
	Long: `distil turns the BNF-like grammar fragments extracted from query-language
documentation into structured schema trees at three detail tiers:
- full: complete context for large-context models.
- enhanced: complete sets plus an intent routing table.
- ultra: abbreviated identifiers and type codes for tight token budgets.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
