package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	verr "github.com/konverts/distil/error"
	"github.com/konverts/distil/extraction"
	"github.com/spf13/cobra"
)

var extractFlags = struct {
	output  *string
	group   *string
	version *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract grammar fragments from explicitly named MDX files",
		Long: `extract reads the named MDX documentation pages and emits a raw
extraction tree as JSON. A page contributes whatever it holds: syntax
fences become a statement entry, API DEFINITION fences a function
namespace, and operator headers operator entries. Walking a
documentation tree is the crawler's job; this command only takes
explicit file arguments.`,
		Example: `  distil extract statements/define/table.mdx --group define`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runExtract,
	}
	extractFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	extractFlags.group = cmd.Flags().String("group", "", "path prefix for statement entries, e.g. define")
	extractFlags.version = cmd.Flags().String("schema-version", "", "version to record in the metadata")
	rootCmd.AddCommand(cmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	x := &extraction.Extraction{
		Metadata:   &extraction.Metadata{Version: *extractFlags.version},
		Statements: map[string]*extraction.Statement{},
		Functions:  map[string]*extraction.Namespace{},
		Operators:  map[string][]*extraction.Operator{},
	}

	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return &verr.SourceError{
				Cause:      err,
				SourceName: path,
			}
		}
		addDocument(x, path, extraction.ParseDocument(string(content)))
	}

	x.Metadata.Stats = x.CountStats()

	b, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	if *extractFlags.output == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	err = os.WriteFile(*extractFlags.output, b, 0644)
	if err != nil {
		return fmt.Errorf("Cannot write an output file: %w", err)
	}
	return nil
}

func addDocument(x *extraction.Extraction, path string, doc *extraction.Document) {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ".mdx"))

	if len(doc.Syntax) > 0 {
		key := name
		if *extractFlags.group != "" {
			key = *extractFlags.group + "/" + name
		}
		x.Statements[key] = &extraction.Statement{
			Syntax:      doc.Syntax,
			Title:       doc.Title,
			Description: doc.Description,
		}
	}

	if len(doc.Signatures) > 0 {
		ns, ok := x.Functions[name]
		if !ok {
			ns = &extraction.Namespace{}
			x.Functions[name] = ns
		}
		ns.Functions = append(ns.Functions, doc.Signatures...)
	}

	for cat, ops := range doc.Operators {
		x.Operators[cat] = append(x.Operators[cat], ops...)
	}
}
