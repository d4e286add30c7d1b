package template

import (
	"testing"

	"github.com/mark3labs/selectr/internal/selectbox"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Variables
		want     string
	}{
		{
			name:     "simple substitution",
			template: "{{value}}: {{label}}",
			vars: Variables{
				Label: "Bart",
				Value: "2",
			},
			want: "2: Bart",
		},
		{
			name:     "all variables",
			template: "{{index}}/{{count}}|{{label}}|{{value}}|{{avatar}}",
			vars: Variables{
				Label:  "Lisa",
				Value:  "3",
				Avatar: "photos/lisa.jpg",
				Index:  "1",
				Count:  "2",
			},
			want: "1/2|Lisa|3|photos/lisa.jpg",
		},
		{
			name:     "empty values",
			template: "{{label}}{{avatar}}",
			vars: Variables{
				Label: "Ned",
			},
			want: "Ned",
		},
		{
			name:     "placeholder not replaced if unknown",
			template: "{{label}} {{unknown}}",
			vars:     Variables{Label: "Homer"},
			want:     "Homer {{unknown}}",
		},
		{
			name:     "substituted values are not expanded",
			template: "{{label}}",
			vars:     Variables{Label: "{{value}}", Value: "x"},
			want:     "{{value}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.template, tt.vars)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderAll(t *testing.T) {
	opts := []selectbox.Option{
		{Label: "Marj", Value: 1},
		{Label: "Bart", Value: "b", AvatarImg: "photos/bart.jpg"},
	}

	got := RenderAll("{{index}}. {{label}} ({{value}})", opts)
	want := "1. Marj (1)\n2. Bart (b)\n"
	if got != want {
		t.Errorf("RenderAll() = %q, want %q", got, want)
	}

	if got := RenderAll(DefaultTemplate, nil); got != "" {
		t.Errorf("RenderAll(nil) = %q, want empty", got)
	}
}
