package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// maxDiagnosticExcerpt caps how much raw model output a failure may carry.
const maxDiagnosticExcerpt = 500

var (
	// 'true'/'false' values become bare booleans. Must run before the generic
	// quote rewrite, which would otherwise turn them into the strings
	// "true"/"false" and hide the boolean intent.
	boolValueRe = regexp.MustCompile(`:\s*'(true|false)'`)

	// Single-quoted keys and values, the most common model malformation.
	singleQuotedKeyRe   = regexp.MustCompile(`'([^']*)'\s*:`)
	singleQuotedValueRe = regexp.MustCompile(`:\s*'([^']*)'`)

	// Adjacent quoted strings separated only by a newline: a missing comma in
	// list emission.
	missingListCommaRe = regexp.MustCompile(`"\s*\n\s*"`)

	// Trailing commas before a closing brace or bracket.
	trailingCommaObjRe = regexp.MustCompile(`,\s*}`)
	trailingCommaArrRe = regexp.MustCompile(`,\s*]`)

	// Line comments echoed from the schema template. The marker must open a
	// line or follow whitespace so protocol separators inside URLs survive.
	lineCommentRe = regexp.MustCompile(`(?m)(^|[ \t])//[^\n]*`)

	// Adjacent objects with the comma between them dropped.
	adjacentObjectsRe = regexp.MustCompile(`}\s*{`)
)

// repairPass is one textual rewrite stage of the repair ladder.
type repairPass struct {
	name  string
	apply func(string) string
}

// repairPasses is the ordered ladder. Passes are cumulative: each applies to
// the output of the previous one, and a parse attempt follows every pass.
var repairPasses = []repairPass{
	{
		name: "normalize quotes",
		apply: func(s string) string {
			s = boolValueRe.ReplaceAllString(s, `: $1`)
			s = singleQuotedKeyRe.ReplaceAllString(s, `"$1":`)
			return singleQuotedValueRe.ReplaceAllString(s, `: "$1"`)
		},
	},
	{
		name: "insert missing list commas",
		apply: func(s string) string {
			return missingListCommaRe.ReplaceAllString(s, `", "`)
		},
	},
	{
		name: "remove trailing commas",
		apply: func(s string) string {
			s = trailingCommaObjRe.ReplaceAllString(s, "}")
			return trailingCommaArrRe.ReplaceAllString(s, "]")
		},
	},
	{
		name: "strip line comments",
		apply: func(s string) string {
			return lineCommentRe.ReplaceAllString(s, "$1")
		},
	},
	{
		name: "separate adjacent objects",
		apply: func(s string) string {
			return adjacentObjectsRe.ReplaceAllString(s, "},{")
		},
	},
}

// ParseModelJSON parses an extracted candidate, walking the repair ladder when
// the candidate is not valid JSON as-is. The first stage whose output parses
// wins. When every stage fails, the returned error carries the original parse
// error; callers attach a bounded excerpt for diagnostics.
func ParseModelJSON(candidate string) (any, error) {
	var parsed any
	firstErr := json.Unmarshal([]byte(candidate), &parsed)
	if firstErr == nil {
		return parsed, nil
	}

	repaired := candidate
	for _, pass := range repairPasses {
		repaired = pass.apply(repaired)
		if err := json.Unmarshal([]byte(repaired), &parsed); err == nil {
			return parsed, nil
		}
	}

	return nil, fmt.Errorf("could not parse AI response as JSON: %w", firstErr)
}

// RepairJSON runs the full rewrite ladder over a candidate and returns the
// repaired text. Valid JSON passes through unchanged in value, so the function
// is idempotent with respect to the parsed result.
func RepairJSON(candidate string) string {
	if json.Valid([]byte(candidate)) {
		return candidate
	}
	repaired := candidate
	for _, pass := range repairPasses {
		repaired = pass.apply(repaired)
		if json.Valid([]byte(repaired)) {
			return repaired
		}
	}
	return repaired
}

// Excerpt bounds raw model output for logs and failure payloads. The cut
// backs off to a rune boundary so a multi-byte response never produces an
// invalid excerpt.
func Excerpt(s string) string {
	if len(s) <= maxDiagnosticExcerpt {
		return s
	}
	cut := maxDiagnosticExcerpt
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
