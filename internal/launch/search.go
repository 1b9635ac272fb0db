package launch

import "strings"

// Search filters launches by a case-insensitive substring of the raw mission
// name. A blank query is not a search: launches are returned unchanged and ok is
// false so the caller can skip filtering.
//
// Launches without a name match as "" and so never match a non-blank query.
func Search(launches []Launch, query string) (matches []Launch, ok bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return launches, false
	}
	matches = make([]Launch, 0)
	for _, l := range launches {
		if strings.Contains(strings.ToLower(l.Name), needle) {
			matches = append(matches, l)
		}
	}
	return matches, true
}
