package schema

import (
	"regexp"
	"strings"

	"github.com/konverts/distil/syntax"
)

const (
	fullKeywordMax  = 10
	fullVariableMax = 10
	fullPatternMax  = 100
	fullDescMax     = 80
)

// Full is the complete-context tier: per-statement keyword and variable
// prefixes with a simplified syntax pattern, full signature detail per
// function, and operator descriptions.
type Full struct {
	dialect string

	Version    string                              `yaml:"version"`
	Format     string                              `yaml:"format"`
	Metadata   *Counts                             `yaml:"metadata"`
	Statements map[string]any                      `yaml:"statements"`
	Functions  map[string]map[string]*FullFunction `yaml:"functions"`
	Operators  map[string][]*FullOperator          `yaml:"operators"`
}

func (f *Full) Tier() Tier      { return TierFull }
func (f *Full) Dialect() string { return f.dialect }

// FullStatement is one statement entry. Statements with several syntax
// blocks carry their fields per variant instead of merged.
type FullStatement struct {
	Title       string           `yaml:"title,omitempty"`
	Description string           `yaml:"description,omitempty"`
	Keywords    []string         `yaml:"keywords,omitempty"`
	Variables   []string         `yaml:"variables,omitempty"`
	Pattern     string           `yaml:"syntax_pattern,omitempty"`
	Variants    []*FullStatement `yaml:"variants,omitempty"`
}

type FullFunction struct {
	Signatures []*FullSignature `yaml:"signatures"`
}

type FullSignature struct {
	Pattern string   `yaml:"pattern"`
	Params  []string `yaml:"params"`
	Returns string   `yaml:"returns"`
}

type FullOperator struct {
	Symbol      string `yaml:"symbol"`
	Alternative string `yaml:"alt,omitempty"`
	Description string `yaml:"desc"`
}

func (e *Encoder) encodeFull(src *source) *Full {
	f := &Full{
		dialect:    e.cfg.Dialect,
		Version:    src.version,
		Format:     "full",
		Metadata:   src.counts(),
		Statements: map[string]any{},
		Functions:  map[string]map[string]*FullFunction{},
		Operators:  map[string][]*FullOperator{},
	}

	for _, s := range src.statements {
		insertStatement(f.Statements, s.path, fullStatement(s.rec))
	}

	for _, ns := range src.namespaces {
		funcs := map[string]*FullFunction{}
		for _, g := range ns.groups {
			fn := &FullFunction{}
			for _, sig := range g.Overloads {
				fn.Signatures = append(fn.Signatures, fullSignature(sig))
			}
			funcs[g.Name] = fn
		}
		f.Functions[ns.name] = funcs
	}

	for _, cat := range src.categories {
		for _, op := range cat.ops {
			f.Operators[cat.name] = append(f.Operators[cat.name], &FullOperator{
				Symbol:      op.Symbol,
				Alternative: op.Alternative,
				Description: truncate(op.Description, fullDescMax),
			})
		}
	}

	return f
}

func fullStatement(rec *syntax.StatementRecord) *FullStatement {
	s := &FullStatement{
		Title:       rec.Title,
		Description: rec.Description,
	}
	if len(rec.Variants) > 0 {
		for _, v := range rec.Variants {
			s.Variants = append(s.Variants, fullStatement(v))
		}
		return s
	}
	s.Keywords = headOf(rec.Keywords, fullKeywordMax)
	s.Variables = headOf(rec.Variables, fullVariableMax)
	if len(rec.Syntax) > 0 {
		s.Pattern = simplifyPattern(rec.Syntax[0])
	}
	return s
}

func fullSignature(sig *syntax.FunctionSignature) *FullSignature {
	s := &FullSignature{
		Pattern: sig.Raw,
		Params:  []string{},
		Returns: sig.ReturnType,
	}
	for _, p := range sig.Parameters {
		typ := p.Type
		if typ == "" {
			typ = "any"
		}
		s.Params = append(s.Params, typ)
	}
	if s.Returns == "" {
		s.Returns = "any"
	}
	return s
}

var (
	optionalSpanRE = regexp.MustCompile(`\[.*?\]`)
	variableRefRE  = regexp.MustCompile(`@\w+`)
)

// simplifyPattern reduces a syntax block to a one-line pattern: bracketed
// optional text stripped, variables replaced by a generic placeholder,
// whitespace collapsed, and the result cut to a fixed length.
func simplifyPattern(block string) string {
	p := optionalSpanRE.ReplaceAllString(block, "")
	p = variableRefRE.ReplaceAllString(p, "<var>")
	p = strings.Join(strings.Fields(p), " ")
	return truncate(p, fullPatternMax)
}

// insertStatement places a statement entry under its hierarchical path,
// nesting one level per path segment. A path cannot name both a statement
// and a group of statements; whichever arrives first keeps the slot.
func insertStatement(tree map[string]any, path string, stmt *FullStatement) {
	segs := strings.Split(path, "/")
	cur := tree
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg]
		if !ok {
			m := map[string]any{}
			cur[seg] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return
		}
		cur = m
	}
	last := segs[len(segs)-1]
	if _, ok := cur[last]; ok {
		return
	}
	cur[last] = stmt
}
