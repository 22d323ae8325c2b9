package syntax

import (
	"reflect"
	"testing"
)

func TestAggregate_SingleBlock(t *testing.T) {
	block := `DEFINE TABLE [ OVERWRITE | IF NOT EXISTS ] @name
	[ SCHEMAFULL | SCHEMALESS ]
	[ PERMISSIONS @expression ]
	DEFINE TABLE @name`

	rec := Aggregate("define/table", []string{block})
	if rec == nil {
		t.Fatal("record must not be nil")
	}
	if rec.Path != "define/table" {
		t.Fatalf("unexpected path; want: %v, got: %v", "define/table", rec.Path)
	}
	if len(rec.Variants) != 0 {
		t.Fatalf("a single-block statement must have no variants; got: %v", len(rec.Variants))
	}

	// Keywords and variables are unioned with set semantics; the repeated
	// DEFINE TABLE line adds nothing.
	wantKw := []string{"DEFINE", "TABLE"}
	if !reflect.DeepEqual(rec.Keywords, wantKw) {
		t.Fatalf("unexpected keywords; want: %#v, got: %#v", wantKw, rec.Keywords)
	}
	wantVars := []string{"name", "expression"}
	if !reflect.DeepEqual(rec.Variables, wantVars) {
		t.Fatalf("unexpected variables; want: %#v, got: %#v", wantVars, rec.Variables)
	}

	wantOpt := []*OptionalGroup{
		{Choices: []string{"OVERWRITE", "IF NOT EXISTS"}},
		{Choices: []string{"SCHEMAFULL", "SCHEMALESS"}},
		{Single: "PERMISSIONS @expression"},
	}
	if !reflect.DeepEqual(rec.Optional, wantOpt) {
		t.Fatalf("unexpected optional groups; want: %#v, got: %#v", wantOpt, rec.Optional)
	}
}

func TestAggregate_OptionalGroupsAreNotDeduplicated(t *testing.T) {
	block := `UPDATE @targets [ TIMEOUT @duration ]
	[ TIMEOUT @duration ]`

	rec := Aggregate("update", []string{block})
	want := []*OptionalGroup{
		{Single: "TIMEOUT @duration"},
		{Single: "TIMEOUT @duration"},
	}
	if !reflect.DeepEqual(rec.Optional, want) {
		t.Fatalf("unexpected optional groups; want: %#v, got: %#v", want, rec.Optional)
	}
}

func TestAggregate_Variants(t *testing.T) {
	blocks := []string{
		"USE [ NS @ns ] [ DB @db ]",
		"USE NS @ns DB @db",
	}

	rec := Aggregate("use", blocks)
	if len(rec.Variants) != 2 {
		t.Fatalf("unexpected variant count; want: %v, got: %v", 2, len(rec.Variants))
	}
	if len(rec.Keywords) != 0 || len(rec.Variables) != 0 {
		t.Fatalf("a multi-block parent must hold no merged fields; got keywords: %#v, variables: %#v",
			rec.Keywords, rec.Variables)
	}

	// Each variant's sets are scoped to its own block; nothing merges
	// across variants.
	if want := []string{"USE"}; !reflect.DeepEqual(rec.Variants[0].Keywords, want) {
		t.Fatalf("unexpected keywords in variant 0; want: %#v, got: %#v", want, rec.Variants[0].Keywords)
	}
	if want := []string{"USE", "NS", "DB"}; !reflect.DeepEqual(rec.Variants[1].Keywords, want) {
		t.Fatalf("unexpected keywords in variant 1; want: %#v, got: %#v", want, rec.Variants[1].Keywords)
	}
	if rec.First() != rec.Variants[0] {
		t.Fatalf("First must return the first variant")
	}
}

func TestAggregate_LeadKeywords(t *testing.T) {
	block := `SELECT @fields FROM @targets
	WHERE @conds
	GROUP BY @field
	LIMIT @limit
	FETCH @fields`

	rec := Aggregate("select", []string{block})
	// Only the first three lines feed the lead keyword list.
	want := []string{"SELECT", "FROM", "WHERE", "GROUP", "BY"}
	if !reflect.DeepEqual(rec.LeadKeywords, want) {
		t.Fatalf("unexpected lead keywords; want: %#v, got: %#v", want, rec.LeadKeywords)
	}
}

func TestAggregate_NoBlocks(t *testing.T) {
	if rec := Aggregate("empty", nil); rec != nil {
		t.Fatalf("a statement without syntax blocks must yield no record; got: %#v", rec)
	}
}
