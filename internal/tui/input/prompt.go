// Package input provides helpers for the go-to-date prompt.
package input

import "strings"

// Keyword describes a relative date the prompt can complete.
type Keyword struct {
	Name        string
	Description string
}

// MatchingKeywords returns keywords that start with the current input.
// Empty input and input that already looks like a date match nothing.
func MatchingKeywords(input string, keywords []Keyword) []Keyword {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" || strings.ContainsAny(prefix[:1], "0123456789") {
		return nil
	}

	matches := make([]Keyword, 0, len(keywords))
	for _, k := range keywords {
		if strings.HasPrefix(strings.ToLower(k.Name), prefix) {
			matches = append(matches, k)
		}
	}
	return matches
}

// Autocomplete returns the first matching keyword and whether it exists.
func Autocomplete(input string, keywords []Keyword) (string, bool) {
	matches := MatchingKeywords(input, keywords)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}
