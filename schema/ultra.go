package schema

import (
	"strings"

	"github.com/konverts/distil/syntax"
)

const ultraKeywordMax = 3

// Ultra is the densest tier: abbreviated identifiers, a handful of
// keywords per statement, and signatures reduced to type-code strings.
type Ultra struct {
	dialect string

	Version    string                     `yaml:"v"`
	Statements map[string]*UltraStatement `yaml:"stmts,flow"`
	Functions  map[string]UltraNamespace  `yaml:"funcs,flow"`
	Operators  map[string][]string        `yaml:"ops,flow"`
}

func (u *Ultra) Tier() Tier      { return TierUltra }
func (u *Ultra) Dialect() string { return u.dialect }

type UltraStatement struct {
	Keywords []string `yaml:"k"`
}

// UltraNamespace maps a function name to its compressed overloads.
type UltraNamespace map[string]Overloads

// Overloads is the compressed signature list of one function. A single
// signature serializes as a bare scalar, multiple as a list.
type Overloads []string

func (o Overloads) MarshalYAML() (interface{}, error) {
	if len(o) == 1 {
		return o[0], nil
	}
	return []string(o), nil
}

func (e *Encoder) encodeUltra(src *source) *Ultra {
	u := &Ultra{
		dialect:    e.cfg.Dialect,
		Version:    src.version,
		Statements: map[string]*UltraStatement{},
		Functions:  map[string]UltraNamespace{},
		Operators:  map[string][]string{},
	}

	for _, s := range src.statements {
		u.Statements[e.abbrev.AbbreviatePath(s.path)] = &UltraStatement{
			Keywords: headOf(s.rec.First().LeadKeywords, ultraKeywordMax),
		}
	}

	for _, ns := range src.namespaces {
		funcs := UltraNamespace{}
		for _, g := range ns.groups {
			var sigs Overloads
			for _, sig := range g.Overloads {
				sigs = append(sigs, e.compressSignature(sig))
			}
			funcs[g.Name] = sigs
		}
		u.Functions[e.abbrev.Abbreviate(ns.name)] = funcs
	}

	for _, cat := range src.categories {
		var symbols []string
		for _, op := range cat.ops {
			if op.Alternative != "" {
				symbols = append(symbols, op.Symbol+"|"+op.Alternative)
			} else {
				symbols = append(symbols, op.Symbol)
			}
		}
		u.Operators[e.abbrev.Abbreviate(cat.name)] = symbols
	}

	return u
}

// compressSignature reduces a signature to
// "<concatenated-param-type-codes>><return-type-code>".
func (e *Encoder) compressSignature(sig *syntax.FunctionSignature) string {
	var b strings.Builder
	for _, p := range sig.Parameters {
		b.WriteString(e.types.Encode(p.Type))
	}
	b.WriteString(">")
	if sig.ReturnType != "" {
		b.WriteString(e.types.Encode(sig.ReturnType))
	} else {
		b.WriteString(Wildcard)
	}
	return b.String()
}
