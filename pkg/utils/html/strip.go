// ABOUTME: HTML utilities for stripping markup from provider text
// ABOUTME: Provides the tag removal used when normalizing listing titles

package html

import "regexp"

// tagPattern matches any markup tag sequence such as <b> or </b>
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripTags removes every <...> sequence from s and leaves everything else,
// including entities and whitespace, untouched. StripTags(StripTags(s)) == StripTags(s).
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return tagPattern.ReplaceAllString(s, "")
}
