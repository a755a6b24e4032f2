package services

import "strings"

// JSONShape is the top-level value a task expects back from the model. Most
// tasks return an object; company research returns a bare array. Extraction
// scans only for the expected opener, so a bracketed aside in the surrounding
// prose ("Top [3] matches...") cannot shadow the real payload.
type JSONShape byte

const (
	ObjectShape JSONShape = '{'
	ArrayShape  JSONShape = '['
)

func (sh JSONShape) closer() byte {
	if sh == ArrayShape {
		return ']'
	}
	return '}'
}

// ExtractJSON locates the JSON payload embedded in free-form model output. The
// text may wrap the payload in prose or markdown fences, so the extractor
// strips fences first, then scans from the first opener of the expected shape
// for the first balanced top-level value. A response containing two
// independent JSON blocks therefore yields the first one rather than an
// unparseable merge.
//
// When the text ends before the span balances (truncated generation), the
// greedy first-to-last span is returned instead so the repair ladder still
// gets a candidate to work with. The boolean is false only when no span of
// the expected shape exists at all.
func ExtractJSON(text string, shape JSONShape) (string, bool) {
	text = stripMarkdownFences(text)

	open, close := byte(shape), shape.closer()
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", false
	}

	if end, ok := balancedSpanEnd(text, start, open, close); ok {
		return text[start : end+1], true
	}

	// Unbalanced: greedy span from the first opener to the last closer.
	last := strings.LastIndexByte(text, close)
	if last <= start {
		return "", false
	}
	return text[start : last+1], true
}

// balancedSpanEnd scans for the closer matching text[start], tracking string
// and escape state so braces inside string values do not count.
func balancedSpanEnd(text string, start int, open, close byte) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// stripMarkdownFences removes ```json / ``` markers the model often wraps
// payloads in.
func stripMarkdownFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return text
}
