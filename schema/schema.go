// Package schema builds the tiered schema trees: three progressively
// denser representations of the grammar facts held by a raw extraction
// tree. One encoder pipeline serves all tiers; a Tier value selects how
// much detail survives.
package schema

import "fmt"

type Tier int

const (
	TierFull Tier = iota
	TierEnhanced
	TierUltra
)

func (t Tier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierEnhanced:
		return "enhanced"
	case TierUltra:
		return "ultra"
	}
	return "unknown"
}

// ParseTier maps a tier name to its Tier value.
func ParseTier(name string) (Tier, error) {
	switch name {
	case "full":
		return TierFull, nil
	case "enhanced":
		return TierEnhanced, nil
	case "ultra":
		return TierUltra, nil
	}
	return 0, fmt.Errorf("unknown tier: %v", name)
}

// Tiers lists every tier in increasing density order.
func Tiers() []Tier {
	return []Tier{TierFull, TierEnhanced, TierUltra}
}

// Schema is one encoded tier tree.
type Schema interface {
	Tier() Tier
	Dialect() string
}

// Config carries the tables and identifiers the encoder depends on. The
// tables are data, not behavior, so tier output is testable against any
// table set.
type Config struct {
	// Dialect names the query language; it becomes the root key of every
	// serialized tier tree.
	Dialect string
	// Version is a fallback for extraction trees whose metadata carries
	// no version of their own.
	Version string
	// TypeCodes maps a lowercase type name to its single-character code.
	TypeCodes map[string]string
	// Abbreviations maps a long identifier to its short code for the
	// ultra tier.
	Abbreviations map[string]string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Dialect:       "surrealql",
		Version:       "2.3.7",
		TypeCodes:     DefaultTypeCodes(),
		Abbreviations: DefaultAbbreviations(),
	}
}

// DefaultTypeCodes returns the stock 16-entry type table.
func DefaultTypeCodes() map[string]string {
	return map[string]string{
		"array":    "a",
		"string":   "s",
		"number":   "n",
		"bool":     "b",
		"object":   "o",
		"any":      "*",
		"duration": "d",
		"datetime": "t",
		"record":   "r",
		"geometry": "g",
		"uuid":     "u",
		"int":      "i",
		"float":    "f",
		"value":    "v",
		"null":     "0",
		"bytes":    "y",
	}
}

// DefaultAbbreviations returns the stock identifier abbreviation table.
func DefaultAbbreviations() map[string]string {
	return map[string]string{
		"select":    "sel",
		"insert":    "ins",
		"update":    "upd",
		"delete":    "del",
		"create":    "cre",
		"alter":     "alt",
		"define":    "def",
		"remove":    "rem",
		"relate":    "rel",
		"return":    "ret",
		"continue":  "cont",
		"database":  "db",
		"namespace": "ns",
		"function":  "fn",
		"indexes":   "idx",
		"table":     "tbl",
	}
}
