package selectbox

import "strings"

// Filter returns the options whose label contains term, ignoring case, in
// their original order. An empty term returns options unchanged.
func Filter(options []Option, term string) []Option {
	if term == "" {
		return options
	}
	needle := strings.ToLower(term)
	out := make([]Option, 0, len(options))
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label), needle) {
			out = append(out, o)
		}
	}
	return out
}
