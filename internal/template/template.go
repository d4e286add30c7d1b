// Package template renders one line of text per picked option from a
// template with {{variable}} placeholders.
package template

import (
	"strconv"
	"strings"

	"github.com/mark3labs/selectr/internal/selectbox"
)

// DefaultTemplate prints the value key of each option.
const DefaultTemplate = "{{value}}"

// Variables holds the data to be injected into template placeholders.
type Variables struct {
	Label  string // Option label
	Value  string // Option value key
	Avatar string // Avatar image reference, empty if none
	Index  string // 1-based position in the selection
	Count  string // Number of picked options
}

// VariablesFor returns the variables of the i-th of n picked options.
func VariablesFor(o selectbox.Option, i, n int) Variables {
	return Variables{
		Label:  o.Label,
		Value:  o.Key(),
		Avatar: o.AvatarImg,
		Index:  strconv.Itoa(i + 1),
		Count:  strconv.Itoa(n),
	}
}

// Render replaces {{variable}} placeholders in template with actual values.
// Supports the following variables:
// - {{label}} - Option label
// - {{value}} - Option value
// - {{avatar}} - Avatar image reference (empty if none)
// - {{index}} - 1-based position in the selection
// - {{count}} - Number of picked options
//
// Substituted values are not scanned again, and unknown placeholders are left
// as they are.
func Render(template string, vars Variables) string {
	return strings.NewReplacer(
		"{{label}}", vars.Label,
		"{{value}}", vars.Value,
		"{{avatar}}", vars.Avatar,
		"{{index}}", vars.Index,
		"{{count}}", vars.Count,
	).Replace(template)
}

// RenderAll renders template once per option, one line each.
func RenderAll(template string, opts []selectbox.Option) string {
	var b strings.Builder
	for i, o := range opts {
		b.WriteString(Render(template, VariablesFor(o, i, len(opts))))
		b.WriteByte('\n')
	}
	return b.String()
}
