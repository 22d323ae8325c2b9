package syntax

import (
	"regexp"
	"strings"
)

var signatureRE = regexp.MustCompile(`^([a-z_]+)::([a-z_]+)\((.*?)\)(?:\s*->\s*(.+))?$`)

// Parameter is one parameter of a function signature. Name is empty when
// the signature gives a bare type.
type Parameter struct {
	Name string
	Type string
}

// FunctionSignature is a parsed `namespace::name(params) -> type` line.
type FunctionSignature struct {
	Raw        string
	Namespace  string
	Name       string
	Parameters []*Parameter
	ReturnType string
}

// ParseSignature parses a single function signature line. It returns nil
// when the line does not match the signature shape; the caller skips such
// lines.
func ParseSignature(sig string) *FunctionSignature {
	sig = strings.TrimSpace(sig)
	m := signatureRE.FindStringSubmatch(sig)
	if m == nil {
		return nil
	}
	f := &FunctionSignature{
		Raw:        sig,
		Namespace:  m[1],
		Name:       m[2],
		ReturnType: strings.TrimSpace(m[4]),
	}
	for _, p := range splitParams(m[3]) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if i := strings.Index(p, ":"); i >= 0 {
			f.Parameters = append(f.Parameters, &Parameter{
				Name: strings.TrimSpace(p[:i]),
				Type: strings.TrimSpace(p[i+1:]),
			})
		} else {
			f.Parameters = append(f.Parameters, &Parameter{
				Type: p,
			})
		}
	}
	return f
}

// splitParams splits a parameter list at top-level commas only. A depth
// counter over every bracket pair keeps nested generic and array types in
// one piece.
func splitParams(params string) []string {
	var parts []string
	var b strings.Builder
	depth := 0
	for _, c := range params {
		if c == ',' && depth == 0 {
			parts = append(parts, b.String())
			b.Reset()
			continue
		}
		switch c {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		}
		b.WriteRune(c)
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

// FunctionGroup collects the overloads of one function name in input
// order.
type FunctionGroup struct {
	Name      string
	Overloads []*FunctionSignature
}

// GroupSignatures parses raw signature lines and groups them by function
// name, keeping the first-encounter order of names. Lines that do not
// parse are skipped.
func GroupSignatures(raws []string) []*FunctionGroup {
	var groups []*FunctionGroup
	byName := map[string]*FunctionGroup{}
	for _, raw := range raws {
		sig := ParseSignature(raw)
		if sig == nil {
			continue
		}
		g, ok := byName[sig.Name]
		if !ok {
			g = &FunctionGroup{Name: sig.Name}
			byName[sig.Name] = g
			groups = append(groups, g)
		}
		g.Overloads = append(g.Overloads, sig)
	}
	return groups
}
