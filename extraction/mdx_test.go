package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementPage = `---
title: DEFINE TABLE statement
description: Defines a table in the database.
---

# DEFINE TABLE

Some prose about tables.

` + "```surql title=\"SurrealQL Syntax\"" + `
DEFINE TABLE [ IF NOT EXISTS ] @name
	[ SCHEMAFULL | SCHEMALESS ]
` + "```" + `

More prose.

` + "```syntax" + `
DEFINE TABLE @name DROP
` + "```" + `
`

const functionPage = `---
title: Array functions
description: Functions for working with arrays.
---

## array::add

` + "```surql title=\"API DEFINITION\"" + `
array::add(array, value) -> array
` + "```" + `
`

const operatorPage = `---
title: Operators
description: Operators in SurrealQL.
---

## ` + "`&&`" + ` or ` + "`AND`" + ` {#and}

Checks whether both of two values are [truthy](/docs/truthy).

## ` + "`@@`" + ` {#matches}

Performs a full-text search.

## ` + "`~`" + ` {#match}
`

func TestSplitFrontMatter(t *testing.T) {
	fm, body := SplitFrontMatter(statementPage)
	assert.Equal(t, "DEFINE TABLE statement", fm.Title)
	assert.Equal(t, "Defines a table in the database.", fm.Description)
	assert.NotContains(t, body, "title: DEFINE TABLE statement")
	assert.Contains(t, body, "# DEFINE TABLE")
}

func TestSplitFrontMatter_Absent(t *testing.T) {
	content := "# No front matter here\n"
	fm, body := SplitFrontMatter(content)
	assert.Equal(t, FrontMatter{}, fm)
	assert.Equal(t, content, body)
}

func TestSplitFrontMatter_Unterminated(t *testing.T) {
	content := "---\ntitle: broken\n"
	fm, body := SplitFrontMatter(content)
	assert.Equal(t, FrontMatter{}, fm)
	assert.Equal(t, content, body)
}

func TestSyntaxBlocks(t *testing.T) {
	_, body := SplitFrontMatter(statementPage)
	blocks := SyntaxBlocks(body)
	require.Len(t, blocks, 2)
	assert.Equal(t, "DEFINE TABLE [ IF NOT EXISTS ] @name\n\t[ SCHEMAFULL | SCHEMALESS ]", blocks[0])
	assert.Equal(t, "DEFINE TABLE @name DROP", blocks[1])
}

func TestAPIDefinitions(t *testing.T) {
	_, body := SplitFrontMatter(functionPage)
	sigs := APIDefinitions(body)
	require.Len(t, sigs, 1)
	assert.Equal(t, "array::add(array, value) -> array", sigs[0])
}

func TestOperatorSections(t *testing.T) {
	_, body := SplitFrontMatter(operatorPage)
	ops := OperatorSections(body)

	require.Contains(t, ops, "logical")
	require.Len(t, ops["logical"], 1)
	and := ops["logical"][0]
	assert.Equal(t, "&&", and.Symbol)
	assert.Equal(t, "AND", and.Alternative)
	assert.Equal(t, "Checks whether both of two values are truthy.", and.Description)

	require.Contains(t, ops, "fuzzy")
	fuzzy := ops["fuzzy"][0]
	assert.Equal(t, "~", fuzzy.Symbol)
	assert.Equal(t, "", fuzzy.Alternative)
	// Nothing follows the header, so no description attaches.
	assert.Equal(t, "", fuzzy.Description)

	require.Contains(t, ops, "other")
	assert.Equal(t, "Performs a full-text search.", ops["other"][0].Description)
}

func TestParseDocument(t *testing.T) {
	doc := ParseDocument(statementPage)
	assert.Equal(t, "DEFINE TABLE statement", doc.Title)
	assert.Len(t, doc.Syntax, 2)
	assert.Empty(t, doc.Signatures)
	assert.Empty(t, doc.Operators)
}

func TestCategorizeOperator(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{symbol: "&&", want: "logical"},
		{symbol: "CONTAINSALL", want: "set"},
		{symbol: "??", want: "null_handling"},
		{symbol: "@@", want: "other"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeOperator(tt.symbol))
		})
	}
}
