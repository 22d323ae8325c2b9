// Package extraction defines the raw extraction tree produced by the
// documentation crawler and consumed by the schema encoder, along with
// helpers for pulling grammar facts out of MDX document content.
package extraction

import (
	"encoding/json"
	"fmt"
	"io"
)

// Extraction is the raw input snapshot: statement syntax blocks keyed by
// hierarchical path, raw function signature lines keyed by namespace, and
// operator entries keyed by category. It is built once and never mutated
// afterwards.
type Extraction struct {
	Metadata   *Metadata              `json:"metadata,omitempty"`
	Statements map[string]*Statement  `json:"statements"`
	Functions  map[string]*Namespace  `json:"functions"`
	Operators  map[string][]*Operator `json:"operators"`
}

type Metadata struct {
	Version string `json:"version,omitempty"`
	Stats   *Stats `json:"stats,omitempty"`
}

type Stats struct {
	Statements int           `json:"statements"`
	Functions  FunctionStats `json:"functions"`
	Operators  OperatorStats `json:"operators"`
}

type FunctionStats struct {
	Namespaces int `json:"namespaces"`
	Total      int `json:"total"`
}

type OperatorStats struct {
	Categories int `json:"categories"`
	Total      int `json:"total"`
}

// Statement holds the raw grammar text of one statement, one string per
// syntax block, plus the front-matter metadata of its source document.
type Statement struct {
	Syntax      []string `json:"syntax"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Namespace holds the raw signature lines of one function namespace.
type Namespace struct {
	Functions []string `json:"functions"`
}

// Operator is one operator entry of a category.
type Operator struct {
	Symbol      string `json:"symbol"`
	Alternative string `json:"alternative,omitempty"`
	Description string `json:"description"`
}

// Load reads a raw extraction tree from JSON. An unreadable or empty tree
// is a fatal failure: there is nothing valid to convert, so no output must
// be produced from it.
func Load(r io.Reader) (*Extraction, error) {
	var x Extraction
	d := json.NewDecoder(r)
	if err := d.Decode(&x); err != nil {
		return nil, fmt.Errorf("cannot decode the raw extraction tree: %w", err)
	}
	if len(x.Statements) == 0 && len(x.Functions) == 0 && len(x.Operators) == 0 {
		return nil, fmt.Errorf("the raw extraction tree has no statements, functions, or operators")
	}
	return &x, nil
}

// Version returns the version recorded in the metadata, if any.
func (x *Extraction) Version() string {
	if x.Metadata == nil {
		return ""
	}
	return x.Metadata.Version
}

// CountStats recomputes the summary statistics of the tree.
func (x *Extraction) CountStats() *Stats {
	s := &Stats{
		Statements: len(x.Statements),
	}
	for _, ns := range x.Functions {
		if ns == nil || len(ns.Functions) == 0 {
			continue
		}
		s.Functions.Namespaces++
		s.Functions.Total += len(ns.Functions)
	}
	for _, ops := range x.Operators {
		if len(ops) == 0 {
			continue
		}
		s.Operators.Categories++
		s.Operators.Total += len(ops)
	}
	return s
}
