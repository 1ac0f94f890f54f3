package main

import (
	"regexp"
	"strings"
)

// ShortcodeExample is one {{< name key=value ... >}} invocation lifted
// out of a document body.
type ShortcodeExample struct {
	Name       string
	Parameters map[string]string
	FullText   string
}

// Hugo-style shortcode invocation, single line. Lazy so adjacent
// invocations on one line match separately.
var shortcodePattern = regexp.MustCompile(`\{\{<\s*(.+?)\s*>\}\}`)

// extractShortcodes scans body for shortcode invocations in order of
// appearance. The first whitespace-delimited token is the name; tokens
// carrying an = become parameters, split on the first = with one layer
// of outer quotes stripped from the value. Tokens without an = are
// ignored, and a match with no tokens at all is dropped.
func extractShortcodes(body string) []ShortcodeExample {
	matches := shortcodePattern.FindAllStringSubmatch(body, -1)
	examples := make([]ShortcodeExample, 0, len(matches))
	for _, m := range matches {
		inner := m[1]
		tokens := strings.Fields(inner)
		if len(tokens) == 0 {
			continue
		}
		params := map[string]string{}
		for _, tok := range tokens[1:] {
			key, value, ok := strings.Cut(tok, "=")
			if !ok {
				continue
			}
			params[key] = trimOuterQuotes(value)
		}
		examples = append(examples, ShortcodeExample{
			Name:       tokens[0],
			Parameters: params,
			FullText:   inner,
		})
	}
	return examples
}

// trimOuterQuotes removes at most one leading and one trailing single
// or double quote; the sides need not match.
func trimOuterQuotes(v string) string {
	if len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
		v = v[1:]
	}
	if len(v) > 0 && (v[len(v)-1] == '"' || v[len(v)-1] == '\'') {
		v = v[:len(v)-1]
	}
	return v
}
