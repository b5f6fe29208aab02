// ABOUTME: Lenient integer parsing for provider-supplied numeric text
// ABOUTME: Anything that is not a plain base-10 integer parses as zero

package parse

import "strconv"

// IntOrZero parses s with strconv.Atoi and returns 0 on any error.
// Grouped digits such as "12,900", decimals and empty strings all yield 0;
// price normalization relies on that instead of reporting a failure.
func IntOrZero(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return 0
}
