package main

import (
	"fmt"
	"os"

	"github.com/konverts/distil/schema"
	"github.com/spf13/cobra"
)

var estimateFlags = struct {
	dialect   *string
	heuristic *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "estimate",
		Short:   "Print per-tier size estimates for a raw extraction tree",
		Example: `  distil estimate raw_extraction.json --heuristic words`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runEstimate,
	}
	estimateFlags.dialect = cmd.Flags().String("dialect", "", "dialect name used as the root key (default surrealql)")
	estimateFlags.heuristic = cmd.Flags().String("heuristic", "chars", "size heuristic: chars or words")
	rootCmd.AddCommand(cmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if h := *estimateFlags.heuristic; h != "chars" && h != "words" {
		return fmt.Errorf("unknown heuristic: %v", h)
	}

	x, err := loadExtraction(args)
	if err != nil {
		return err
	}

	cfg := schema.DefaultConfig()
	if *estimateFlags.dialect != "" {
		cfg.Dialect = *estimateFlags.dialect
	}
	enc := schema.NewEncoder(cfg)

	for _, tier := range schema.Tiers() {
		s, err := enc.Encode(x, tier)
		if err != nil {
			return err
		}
		est, err := schema.EstimateSchema(s)
		if err != nil {
			return err
		}
		size := est.EstimatedSize
		if *estimateFlags.heuristic == "words" {
			size = est.Words
		}
		fmt.Fprintf(os.Stdout, "%-8v ~%v tokens (%v chars, %v bytes compressed)\n",
			tier, size, est.Chars, est.CompressedBytes)
	}

	return nil
}
