package schema

import (
	"fmt"
	"sort"

	"github.com/konverts/distil/extraction"
	"github.com/konverts/distil/syntax"
)

// Encoder turns a raw extraction tree into tier trees. It is stateless
// between calls; the same encoder may serve concurrent conversions over
// different inputs.
type Encoder struct {
	cfg    *Config
	types  *TypeEncoder
	abbrev *Abbreviator
}

func NewEncoder(cfg *Config) *Encoder {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Encoder{
		cfg:    cfg,
		types:  NewTypeEncoder(cfg.TypeCodes),
		abbrev: NewAbbreviator(cfg.Abbreviations),
	}
}

// Encode builds the tree of one tier. Entries lacking their required
// sub-fields are skipped whole; they contribute to no tier rather than
// partially to some.
func (e *Encoder) Encode(x *extraction.Extraction, tier Tier) (Schema, error) {
	if x == nil {
		return nil, fmt.Errorf("no extraction tree to encode")
	}
	src := e.gather(x)
	switch tier {
	case TierFull:
		return e.encodeFull(src), nil
	case TierEnhanced:
		return e.encodeEnhanced(src), nil
	case TierUltra:
		return e.encodeUltra(src), nil
	}
	return nil, fmt.Errorf("unknown tier: %v", tier)
}

type statementEntry struct {
	path string
	rec  *syntax.StatementRecord
}

type namespaceEntry struct {
	name   string
	groups []*syntax.FunctionGroup
}

type categoryEntry struct {
	name string
	ops  []*extraction.Operator
}

// source is the aggregated, ordered view of an extraction tree that every
// tier encodes from. Map sections are flattened into slices sorted by key
// so that output never depends on map iteration order.
type source struct {
	version    string
	statements []statementEntry
	namespaces []namespaceEntry
	categories []categoryEntry
}

func (e *Encoder) gather(x *extraction.Extraction) *source {
	src := &source{
		version: x.Version(),
	}
	if src.version == "" {
		src.version = e.cfg.Version
	}

	for _, path := range sortedKeys(x.Statements) {
		stmt := x.Statements[path]
		if stmt == nil {
			continue
		}
		rec := syntax.Aggregate(path, stmt.Syntax)
		if rec == nil {
			continue
		}
		rec.Title = stmt.Title
		rec.Description = stmt.Description
		src.statements = append(src.statements, statementEntry{
			path: path,
			rec:  rec,
		})
	}

	for _, name := range sortedKeys(x.Functions) {
		ns := x.Functions[name]
		if ns == nil || len(ns.Functions) == 0 {
			continue
		}
		groups := syntax.GroupSignatures(ns.Functions)
		if len(groups) == 0 {
			continue
		}
		src.namespaces = append(src.namespaces, namespaceEntry{
			name:   name,
			groups: groups,
		})
	}

	for _, name := range sortedKeys(x.Operators) {
		ops := x.Operators[name]
		if len(ops) == 0 {
			continue
		}
		src.categories = append(src.categories, categoryEntry{
			name: name,
			ops:  ops,
		})
	}

	return src
}

func (s *source) counts() *Counts {
	c := &Counts{
		Statements: len(s.statements),
	}
	for _, ns := range s.namespaces {
		for _, g := range ns.groups {
			c.Functions += len(g.Overloads)
		}
	}
	for _, cat := range s.categories {
		c.Operators += len(cat.ops)
	}
	return c
}

// Counts summarizes how many entries a tier tree covers.
type Counts struct {
	Statements int `yaml:"statements" json:"statements"`
	Functions  int `yaml:"functions" json:"functions"`
	Operators  int `yaml:"operators" json:"operators"`
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func headOf(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
