package schema

import "strings"

// Abbreviator shortens identifiers for the ultra tier: a table hit wins,
// anything else keeps its first three characters. Two distinct names may
// collapse to the same code; collisions are neither detected nor
// resolved.
type Abbreviator struct {
	table map[string]string
}

func NewAbbreviator(table map[string]string) *Abbreviator {
	if table == nil {
		table = DefaultAbbreviations()
	}
	return &Abbreviator{
		table: table,
	}
}

func (a *Abbreviator) Abbreviate(name string) string {
	if abbr, ok := a.table[name]; ok {
		return abbr
	}
	if r := []rune(name); len(r) > 3 {
		return string(r[:3])
	}
	return name
}

// AbbreviatePath abbreviates each segment of a composite "a/b" path
// independently.
func (a *Abbreviator) AbbreviatePath(path string) string {
	if !strings.Contains(path, "/") {
		return a.Abbreviate(path)
	}
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = a.Abbreviate(s)
	}
	return strings.Join(segs, "/")
}
