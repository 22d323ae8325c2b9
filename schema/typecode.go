package schema

import "strings"

// Wildcard is the code of any type outside the table.
const Wildcard = "*"

// TypeEncoder is a deterministic, one-way type-string compressor. The
// bare code of "array" and the prefix code of "array<T>" are the same
// character; the encoded form alone cannot tell them apart, and that
// ambiguity is kept.
type TypeEncoder struct {
	codes map[string]string
}

func NewTypeEncoder(codes map[string]string) *TypeEncoder {
	if codes == nil {
		codes = DefaultTypeCodes()
	}
	return &TypeEncoder{
		codes: codes,
	}
}

// Encode compresses a type string to its code. Parametrized container
// types recurse: array<T> becomes "a" followed by the code of T, and
// option<T> becomes "?" followed by the code of T.
func (e *TypeEncoder) Encode(typ string) string {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		return Wildcard
	}
	if inner, ok := innerType(typ, "array<"); ok {
		return "a" + e.Encode(inner)
	}
	if inner, ok := innerType(typ, "option<"); ok {
		return "?" + e.Encode(inner)
	}
	if code, ok := e.codes[typ]; ok {
		return code
	}
	return Wildcard
}

// innerType extracts the parameter of a container type, spanning to the
// last closing angle bracket so that nested parameters stay whole.
func innerType(typ, prefix string) (string, bool) {
	if !strings.HasPrefix(typ, prefix) {
		return "", false
	}
	end := strings.LastIndex(typ, ">")
	if end <= len(prefix) {
		return "", false
	}
	return typ[len(prefix):end], true
}
