// Package syntax classifies the BNF-like grammar fragments that appear in
// query-language documentation: statement syntax blocks and function
// signature lines. It is deliberately not a grammar engine; the classifier
// is a single-pass tokenizer over bracketed spans, @-prefixed variables,
// and uppercase keyword runs.
package syntax

import "strings"

// ParsedLine is the classification of one line of a syntax block. A line
// carries at most one single optional token and one optional choice list;
// when a line holds several spans of the same kind, the last one wins.
type ParsedLine struct {
	Keywords        []string
	Variables       []string
	Optional        string
	OptionalChoices []string
}

// Empty reports whether the line contributed nothing.
func (l *ParsedLine) Empty() bool {
	return len(l.Keywords) == 0 && len(l.Variables) == 0 &&
		l.Optional == "" && len(l.OptionalChoices) == 0
}

// ParseLine classifies a single line of a syntax block. Malformed input
// never fails; whatever does not match simply contributes nothing.
func ParseLine(line string) *ParsedLine {
	parsed := &ParsedLine{}
	line = strings.TrimSpace(line)
	if line == "" {
		return parsed
	}

	var spans []string
	var candidates []string
	seenVar := map[string]bool{}

	lex := newLineLexer(line)
	for {
		tok := lex.next()
		if tok.kind == tokenKindEOL {
			break
		}
		switch tok.kind {
		case tokenKindOptional:
			spans = append(spans, tok.text)
			if choices, ok := splitChoices(tok.text); ok {
				if len(choices) > 0 {
					parsed.OptionalChoices = choices
				}
			} else if !strings.HasPrefix(tok.text, "@") {
				parsed.Optional = tok.text
			}
		case tokenKindVariable:
			if !seenVar[tok.text] {
				seenVar[tok.text] = true
				parsed.Variables = append(parsed.Variables, tok.text)
			}
		case tokenKindKeyword:
			candidates = append(candidates, tok.text)
		}
	}

	// A candidate keyword whose text also occurs inside one of this line's
	// bracketed spans is dropped. The check is a plain substring match, so
	// a required keyword that textually coincides with bracketed text
	// elsewhere on the same line is suppressed too.
	seenKw := map[string]bool{}
	for _, kw := range candidates {
		if seenKw[kw] || occursInSpans(kw, spans) {
			continue
		}
		seenKw[kw] = true
		parsed.Keywords = append(parsed.Keywords, kw)
	}

	return parsed
}

// splitChoices splits a span on "|" into its choice entries. It reports
// false when the span holds no separator at all. Empty entries and entries
// starting with "@" are dropped; dropping every entry yields an empty,
// still-valid choice split.
func splitChoices(span string) ([]string, bool) {
	if !strings.Contains(span, "|") {
		return nil, false
	}
	var choices []string
	for _, c := range strings.Split(span, "|") {
		c = strings.TrimSpace(c)
		if c == "" || strings.HasPrefix(c, "@") {
			continue
		}
		choices = append(choices, c)
	}
	return choices, true
}

func occursInSpans(kw string, spans []string) bool {
	for _, s := range spans {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
