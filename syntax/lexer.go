package syntax

import "strings"

type tokenKind string

const (
	tokenKindOptional tokenKind = "optional"
	tokenKindVariable tokenKind = "variable"
	tokenKindKeyword  tokenKind = "keyword"
	tokenKindEOL      tokenKind = "eol"
)

type token struct {
	kind tokenKind
	text string
}

func newToken(kind tokenKind, text string) *token {
	return &token{
		kind: kind,
		text: text,
	}
}

// lineLexer tokenizes one line of a syntax block into bracketed optional
// spans, @-prefixed variables, and uppercase keyword runs. Bracketed spans
// are assumed to be non-nested; an opening bracket that is followed by
// another opening bracket before any closing one simply restarts the span
// scan at the inner bracket.
type lineLexer struct {
	src  []rune
	pos  int
	pend []*token
}

func newLineLexer(line string) *lineLexer {
	return &lineLexer{
		src: []rune(line),
	}
}

func (l *lineLexer) next() *token {
	if len(l.pend) > 0 {
		tok := l.pend[0]
		l.pend = l.pend[1:]
		return tok
	}
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '[':
			if tok, ok := l.lexOptional(); ok {
				return tok
			}
		case c == '@':
			if tok, ok := l.lexVariable(); ok {
				return tok
			}
		case isWordChar(c):
			if tok, ok := l.lexWord(); ok {
				return tok
			}
		default:
			l.pos++
		}
	}
	return newToken(tokenKindEOL, "")
}

// lexOptional scans a bracketed span. Variables occurring inside the span
// are queued behind the span token so that the parser still sees them.
func (l *lineLexer) lexOptional() (*token, bool) {
	start := l.pos + 1
	i := start
	for i < len(l.src) {
		c := l.src[i]
		if c == ']' {
			break
		}
		if c == '[' {
			// Not a well-formed span. Rescan the content as ordinary text;
			// the inner bracket gets its own chance to open a span.
			l.pos = start
			return nil, false
		}
		i++
	}
	if i >= len(l.src) {
		// Unterminated span. Rescan the content as ordinary text.
		l.pos = start
		return nil, false
	}
	content := string(l.src[start:i])
	l.pos = i + 1
	for _, v := range scanVariables(content) {
		l.pend = append(l.pend, newToken(tokenKindVariable, v))
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		if len(l.pend) > 0 {
			return l.next(), true
		}
		return nil, false
	}
	return newToken(tokenKindOptional, trimmed), true
}

func (l *lineLexer) lexVariable() (*token, bool) {
	start := l.pos + 1
	i := start
	for i < len(l.src) && isWordChar(l.src[i]) {
		i++
	}
	l.pos = i
	if i == start {
		return nil, false
	}
	return newToken(tokenKindVariable, string(l.src[start:i])), true
}

// lexWord consumes a maximal run of word characters and emits it as a
// keyword candidate when the whole run is uppercase letters of length >=2.
func (l *lineLexer) lexWord() (*token, bool) {
	start := l.pos
	i := start
	for i < len(l.src) && isWordChar(l.src[i]) {
		i++
	}
	l.pos = i
	word := l.src[start:i]
	if len(word) < 2 {
		return nil, false
	}
	for _, c := range word {
		if c < 'A' || c > 'Z' {
			return nil, false
		}
	}
	return newToken(tokenKindKeyword, string(word)), true
}

func scanVariables(s string) []string {
	var vars []string
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '@' {
			continue
		}
		j := i + 1
		for j < len(rs) && isWordChar(rs[j]) {
			j++
		}
		if j > i+1 {
			vars = append(vars, string(rs[i+1:j]))
		}
		i = j - 1
	}
	return vars
}

func isWordChar(c rune) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z')
}
