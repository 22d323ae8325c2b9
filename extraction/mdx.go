package extraction

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the subset of MDX front-matter the distiller cares about.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

var (
	syntaxFenceREs = []*regexp.Regexp{
		regexp.MustCompile("(?s)```[a-z]+ title=\"[^\"]*Syntax\"\n(.*?)\n```"),
		regexp.MustCompile("(?s)```syntax\n(.*?)\n```"),
	}
	apiFenceRE = regexp.MustCompile("(?s)```[a-z]+ title=\"API DEFINITION\"\n(.*?)\n```")

	operatorHeaderRE = regexp.MustCompile("^##\\s*`([^`]+)`(?:\\s*or\\s*`([^`]+)`)?.*?\\{#(\\w+)\\}$")
	markdownLinkRE   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// Document is the grammar-relevant content of one MDX documentation page.
type Document struct {
	Title       string
	Description string
	Syntax      []string
	Signatures  []string
	Operators   map[string][]*Operator
}

// ParseDocument pulls front-matter metadata, syntax blocks, API definition
// blocks, and operator sections out of MDX content. It never fails; a page
// without recognizable content yields an empty document.
func ParseDocument(content string) *Document {
	fm, body := SplitFrontMatter(content)
	return &Document{
		Title:       fm.Title,
		Description: fm.Description,
		Syntax:      SyntaxBlocks(body),
		Signatures:  APIDefinitions(body),
		Operators:   OperatorSections(body),
	}
}

// SplitFrontMatter separates the YAML front-matter of an MDX page from its
// body. Malformed front-matter is treated as absent.
func SplitFrontMatter(content string) (FrontMatter, string) {
	if !strings.HasPrefix(content, "---") {
		return FrontMatter{}, content
	}
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return FrontMatter{}, content
	}
	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return FrontMatter{}, content
	}
	return fm, parts[2]
}

// SyntaxBlocks extracts the fenced grammar fragments of a statement page.
func SyntaxBlocks(body string) []string {
	var blocks []string
	for _, re := range syntaxFenceREs {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			blocks = append(blocks, strings.TrimSpace(m[1]))
		}
	}
	return blocks
}

// APIDefinitions extracts the raw signature lines of a function page, one
// per API DEFINITION fence.
func APIDefinitions(body string) []string {
	var sigs []string
	for _, m := range apiFenceRE.FindAllStringSubmatch(body, -1) {
		sigs = append(sigs, strings.TrimSpace(m[1]))
	}
	return sigs
}

// OperatorSections extracts operator entries from the markdown headers of
// an operators page and buckets them by category. The description of an
// entry is the first non-empty, non-header line following it.
func OperatorSections(body string) map[string][]*Operator {
	ops := map[string][]*Operator{}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		m := operatorHeaderRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		desc := ""
		for j := i + 1; j < len(lines) && j <= i+9; j++ {
			l := strings.TrimSpace(lines[j])
			if l != "" && !strings.HasPrefix(l, "#") {
				desc = markdownLinkRE.ReplaceAllString(l, "$1")
				break
			}
		}
		cat := CategorizeOperator(m[1])
		ops[cat] = append(ops[cat], &Operator{
			Symbol:      m[1],
			Alternative: m[2],
			Description: desc,
		})
	}
	return ops
}

var operatorCategories = map[string]string{
	"&&": "logical", "||": "logical", "!": "logical", "!!": "logical",
	"AND": "logical", "OR": "logical", "NOT": "logical",

	"=": "comparison", "!=": "comparison", "==": "comparison",
	"?=": "comparison", "*=": "comparison", "IS": "comparison",
	"IS NOT": "comparison", "<": "comparison", "<=": "comparison",
	">": "comparison", ">=": "comparison",

	"+": "mathematical", "-": "mathematical", "*": "mathematical",
	"/": "mathematical", "%": "mathematical", "**": "mathematical",
	"×": "mathematical", "÷": "mathematical",

	"->": "graph", "<->": "graph", "<-": "graph",
	"OUTSIDE": "graph", "INTERSECTS": "graph",

	"∋": "set", "∌": "set", "∈": "set", "∉": "set", "⊆": "set",
	"⊇": "set", "⊃": "set", "⊅": "set", "CONTAINS": "set",
	"CONTAINSNOT": "set", "CONTAINSALL": "set", "CONTAINSANY": "set",
	"CONTAINSNONE": "set", "INSIDE": "set", "NOTINSIDE": "set",
	"IN": "set", "NOT IN": "set", "ALLINSIDE": "set",

	"~": "fuzzy", "!~": "fuzzy", "?~": "fuzzy", "*~": "fuzzy",

	"??": "null_handling", "?:": "null_handling",
}

// CategorizeOperator maps an operator symbol to its category; symbols
// outside the known table land in "other".
func CategorizeOperator(symbol string) string {
	if cat, ok := operatorCategories[symbol]; ok {
		return cat
	}
	return "other"
}
