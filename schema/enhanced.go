package schema

import (
	"sort"
	"strings"

	"github.com/konverts/distil/syntax"
)

const (
	enhancedDescMax = 100
	routeKeywordMax = 5
)

// Enhanced is the mid tier: complete keyword, variable, and optional sets
// per statement, full signature detail, and an intent routing table.
type Enhanced struct {
	dialect string

	Version    string                                  `yaml:"version"`
	Format     string                                  `yaml:"format"`
	Metadata   *Counts                                 `yaml:"metadata"`
	Statements map[string]*EnhancedStatement           `yaml:"statements"`
	Functions  map[string]map[string]*EnhancedFunction `yaml:"functions"`
	Operators  map[string][]*EnhancedOperator          `yaml:"operators"`
	Router     *Router                                 `yaml:"router"`
}

func (e *Enhanced) Tier() Tier      { return TierEnhanced }
func (e *Enhanced) Dialect() string { return e.dialect }

// EnhancedStatement holds the complete sets of one statement. The
// keyword and variable sets are serialized sorted; optional groups keep
// their emission order.
type EnhancedStatement struct {
	Keywords  []string             `yaml:"keywords,omitempty"`
	Variables []string             `yaml:"variables,omitempty"`
	Optional  []*OptionalValue     `yaml:"optional,omitempty"`
	Variants  []*EnhancedStatement `yaml:"variants,omitempty"`
}

// OptionalValue serializes a single optional token as a scalar and a
// choice group as a list.
type OptionalValue syntax.OptionalGroup

func (o *OptionalValue) MarshalYAML() (interface{}, error) {
	if len(o.Choices) > 0 {
		return o.Choices, nil
	}
	return o.Single, nil
}

type EnhancedFunction struct {
	Signatures []*EnhancedSignature `yaml:"signatures"`
}

type EnhancedSignature struct {
	Pattern string           `yaml:"pattern"`
	Params  []*EnhancedParam `yaml:"params,omitempty"`
	Returns string           `yaml:"returns,omitempty"`
}

type EnhancedParam struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type"`
}

type EnhancedOperator struct {
	Symbol      string `yaml:"symbol"`
	Alternative string `yaml:"alternative,omitempty"`
	Description string `yaml:"description"`
}

// Router maps a normalized intent to the first few keywords of its
// target and the canonical path string that locates it in the schema.
type Router struct {
	Version    string            `yaml:"version"`
	Statements map[string]*Route `yaml:"statements"`
	Functions  map[string]*Route `yaml:"functions"`
	Operators  map[string]*Route `yaml:"operators"`
}

type Route struct {
	Keywords []string `yaml:"keywords"`
	Path     string   `yaml:"path"`
}

func (e *Encoder) encodeEnhanced(src *source) *Enhanced {
	enh := &Enhanced{
		dialect:    e.cfg.Dialect,
		Version:    src.version,
		Format:     "enhanced",
		Metadata:   src.counts(),
		Statements: map[string]*EnhancedStatement{},
		Functions:  map[string]map[string]*EnhancedFunction{},
		Operators:  map[string][]*EnhancedOperator{},
		Router: &Router{
			Version:    "2.0",
			Statements: map[string]*Route{},
			Functions:  map[string]*Route{},
			Operators:  map[string]*Route{},
		},
	}

	for _, s := range src.statements {
		enh.Statements[s.path] = enhancedStatement(s.rec)
		routeKey := strings.ReplaceAll(s.path, "/", "_")
		enh.Router.Statements[routeKey] = &Route{
			Keywords: headOf(s.rec.First().Keywords, routeKeywordMax),
			Path:     "statements." + s.path,
		}
	}

	for _, ns := range src.namespaces {
		funcs := map[string]*EnhancedFunction{}
		var names []string
		for _, g := range ns.groups {
			names = append(names, g.Name)
			fn := &EnhancedFunction{}
			for _, sig := range g.Overloads {
				fn.Signatures = append(fn.Signatures, enhancedSignature(sig))
			}
			funcs[g.Name] = fn
		}
		enh.Functions[ns.name] = funcs
		enh.Router.Functions[ns.name] = &Route{
			Keywords: append([]string{ns.name}, headOf(names, routeKeywordMax)...),
			Path:     "functions." + ns.name,
		}
	}

	for _, cat := range src.categories {
		var symbols []string
		for _, op := range cat.ops {
			symbols = append(symbols, op.Symbol)
			enh.Operators[cat.name] = append(enh.Operators[cat.name], &EnhancedOperator{
				Symbol:      op.Symbol,
				Alternative: op.Alternative,
				Description: truncate(op.Description, enhancedDescMax),
			})
		}
		enh.Router.Operators[cat.name] = &Route{
			Keywords: headOf(symbols, routeKeywordMax),
			Path:     "operators." + cat.name,
		}
	}

	return enh
}

func enhancedStatement(rec *syntax.StatementRecord) *EnhancedStatement {
	s := &EnhancedStatement{}
	if len(rec.Variants) > 0 {
		for _, v := range rec.Variants {
			s.Variants = append(s.Variants, enhancedStatement(v))
		}
		return s
	}
	s.Keywords = sortedSet(rec.Keywords)
	s.Variables = sortedSet(rec.Variables)
	for _, g := range rec.Optional {
		s.Optional = append(s.Optional, (*OptionalValue)(g))
	}
	return s
}

func enhancedSignature(sig *syntax.FunctionSignature) *EnhancedSignature {
	s := &EnhancedSignature{
		Pattern: sig.Raw,
		Returns: sig.ReturnType,
	}
	for _, p := range sig.Parameters {
		s.Params = append(s.Params, &EnhancedParam{
			Name: p.Name,
			Type: p.Type,
		})
	}
	return s
}

// sortedSet returns a sorted copy; complete sets serialize in sorted
// order while truncated prefixes keep first-encounter order.
func sortedSet(set []string) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, len(set))
	copy(out, set)
	sort.Strings(out)
	return out
}
