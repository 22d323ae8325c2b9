package syntax

import "strings"

// OptionalGroup is one optional element of a statement: either a single
// token or a list of alternative choices.
type OptionalGroup struct {
	Single  string
	Choices []string
}

// StatementRecord is the aggregate of every line of a statement's syntax
// blocks. Keyword and variable sets keep first-encounter order and are
// deduplicated. A statement with more than one syntax block holds one
// independent record per block under Variants and no merged fields of its
// own; metadata sits on the parent only.
type StatementRecord struct {
	Path        string
	Title       string
	Description string
	Keywords    []string
	Variables   []string
	Optional    []*OptionalGroup
	// LeadKeywords are the keywords of the first three lines of the
	// syntax block, deduplicated in encounter order. The ultra tier
	// reads its keyword budget from this list.
	LeadKeywords []string
	Syntax       []string
	Variants     []*StatementRecord
}

// First returns the record holding the fields of the first syntax block:
// the record itself for single-block statements, the first variant
// otherwise.
func (r *StatementRecord) First() *StatementRecord {
	if len(r.Variants) > 0 {
		return r.Variants[0]
	}
	return r
}

// Aggregate merges the parsed lines of one or more syntax blocks into a
// StatementRecord. It returns nil when there is no block to aggregate.
func Aggregate(path string, blocks []string) *StatementRecord {
	if len(blocks) == 0 {
		return nil
	}
	if len(blocks) == 1 {
		return aggregateBlock(path, blocks[0])
	}
	rec := &StatementRecord{
		Path:   path,
		Syntax: blocks,
	}
	for _, b := range blocks {
		rec.Variants = append(rec.Variants, aggregateBlock(path, b))
	}
	return rec
}

func aggregateBlock(path string, block string) *StatementRecord {
	rec := &StatementRecord{
		Path:   path,
		Syntax: []string{block},
	}
	seenKw := map[string]bool{}
	seenVar := map[string]bool{}
	seenLead := map[string]bool{}
	for i, line := range strings.Split(block, "\n") {
		parsed := ParseLine(line)
		if parsed.Empty() {
			continue
		}
		for _, kw := range parsed.Keywords {
			if !seenKw[kw] {
				seenKw[kw] = true
				rec.Keywords = append(rec.Keywords, kw)
			}
			if i < 3 && !seenLead[kw] {
				seenLead[kw] = true
				rec.LeadKeywords = append(rec.LeadKeywords, kw)
			}
		}
		for _, v := range parsed.Variables {
			if !seenVar[v] {
				seenVar[v] = true
				rec.Variables = append(rec.Variables, v)
			}
		}
		// Optional groups keep per-line emission order and are not
		// deduplicated across lines.
		if len(parsed.OptionalChoices) > 0 {
			rec.Optional = append(rec.Optional, &OptionalGroup{
				Choices: parsed.OptionalChoices,
			})
		}
		if parsed.Optional != "" {
			rec.Optional = append(rec.Optional, &OptionalGroup{
				Single: parsed.Optional,
			})
		}
	}
	return rec
}
