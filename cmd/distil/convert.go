package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	verr "github.com/konverts/distil/error"
	"github.com/konverts/distil/extraction"
	"github.com/konverts/distil/schema"
	"github.com/spf13/cobra"
)

var convertFlags = struct {
	outputDir *string
	tier      *string
	dialect   *string
	version   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a raw extraction tree into tiered schema files",
		Example: `  distil convert raw_extraction.json -o out --tier all`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runConvert,
	}
	convertFlags.outputDir = cmd.Flags().StringP("output-dir", "o", ".", "output directory")
	convertFlags.tier = cmd.Flags().String("tier", "all", "tier to emit: full, enhanced, ultra, or all")
	convertFlags.dialect = cmd.Flags().String("dialect", "", "dialect name used as the root key (default surrealql)")
	convertFlags.version = cmd.Flags().String("schema-version", "", "fallback version when the extraction metadata has none")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	x, err := loadExtraction(args)
	if err != nil {
		return err
	}

	tiers, err := selectTiers(*convertFlags.tier)
	if err != nil {
		return err
	}

	enc := schema.NewEncoder(convertConfig())

	err = os.MkdirAll(*convertFlags.outputDir, 0755)
	if err != nil {
		return err
	}

	var estimates []*schema.Estimate
	for _, tier := range tiers {
		s, err := enc.Encode(x, tier)
		if err != nil {
			return err
		}
		b, err := schema.Marshal(s)
		if err != nil {
			return err
		}
		path := filepath.Join(*convertFlags.outputDir, fmt.Sprintf("%v_%v.yml", s.Dialect(), tier))
		err = os.WriteFile(path, b, 0644)
		if err != nil {
			return fmt.Errorf("Cannot write an output file: %w", err)
		}
		est, err := schema.EstimateSchema(s)
		if err != nil {
			return err
		}
		estimates = append(estimates, est)
		fmt.Fprintf(os.Stdout, "%v: %v (~%v tokens)\n", tier, path, est.EstimatedSize)
	}

	return writeSizeReport(*convertFlags.outputDir, estimates)
}

func convertConfig() *schema.Config {
	cfg := schema.DefaultConfig()
	if *convertFlags.dialect != "" {
		cfg.Dialect = *convertFlags.dialect
	}
	if *convertFlags.version != "" {
		cfg.Version = *convertFlags.version
	}
	return cfg
}

func selectTiers(name string) ([]schema.Tier, error) {
	if name == "all" {
		return schema.Tiers(), nil
	}
	t, err := schema.ParseTier(name)
	if err != nil {
		return nil, err
	}
	return []schema.Tier{t}, nil
}

// loadExtraction reads the raw extraction tree from the file named by the
// arguments, or from stdin when no argument is given. A tree that cannot
// be read aborts the run before any output is produced.
func loadExtraction(args []string) (*extraction.Extraction, error) {
	var src io.Reader
	name := "stdin"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("Cannot open the extraction file %s: %w", args[0], err)
		}
		defer f.Close()
		src = f
		name = args[0]
	} else {
		src = os.Stdin
	}

	x, err := extraction.Load(src)
	if err != nil {
		return nil, &verr.SourceError{
			Cause:      err,
			SourceName: name,
		}
	}
	return x, nil
}

func writeSizeReport(dir string, estimates []*schema.Estimate) error {
	b, err := json.MarshalIndent(struct {
		Tiers []*schema.Estimate `json:"tiers"`
	}{Tiers: estimates}, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "size_report.json")
	return os.WriteFile(path, append(b, '\n'), 0644)
}
