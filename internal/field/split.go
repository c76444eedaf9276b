package field

// split.go splits a search string into its comma-separated queries, allowing for glob brackets

import (
	"fmt"
	"strings"
)

// SplitQuery splits a string on commas and returns the resulting (trimmed, non-empty) queries.
// Commas within square brackets or braces are ignored, so glob character classes and
// alternatives stay intact. For example "User,*{Edge,Connection}" => []string{"User", "*{Edge,Connection}"}
// An error is returned if there is a problem with the input string such as unmatched brackets.
func SplitQuery(s string) ([]string, error) {
	var square, brace int
	var retval []string
	start := 0

	add := func(part string) {
		if part = strings.TrimSpace(part); part != "" {
			retval = append(retval, part)
		}
	}

	for i, c := range s {
		switch c {
		case '[':
			square++
		case '{':
			brace++
		case ']':
			square--
			if square < 0 {
				return nil, fmt.Errorf("unmatched right square bracket ']' in %q", s)
			}
		case '}':
			brace--
			if brace < 0 {
				return nil, fmt.Errorf("unmatched right brace '}' in %q", s)
			}
		case ',':
			if square == 0 && brace == 0 { // only split on "top-level" commas
				add(s[start:i])
				start = i + 1
			}
		}
	}
	if square > 0 {
		return nil, fmt.Errorf("unmatched left square bracket '[' in %q", s)
	}
	if brace > 0 {
		return nil, fmt.Errorf("unmatched left brace '{' in %q", s)
	}
	// Add last (or only) segment
	add(s[start:])

	if len(retval) == 0 {
		return nil, fmt.Errorf("no search name in %q", s)
	}
	return retval, nil
}
