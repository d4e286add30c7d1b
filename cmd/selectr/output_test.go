package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mark3labs/selectr/internal/options"
	"github.com/mark3labs/selectr/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatResult(t *testing.T) {
	demo := options.Demo()

	t.Run("text", func(t *testing.T) {
		out, err := formatResult(demo[1:3], true, formatText, "")
		require.NoError(t, err)
		assert.Equal(t, "2\n3\n", out)
	})

	t.Run("text template", func(t *testing.T) {
		out, err := formatResult(demo[1:3], true, formatText, "{{index}}/{{count}} {{label}}")
		require.NoError(t, err)
		assert.Equal(t, "1/2 Bart\n2/2 Lisa\n", out)
	})

	t.Run("json multiple", func(t *testing.T) {
		out, err := formatResult(demo[:1], true, formatJSON, "")
		require.NoError(t, err)
		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Marj", got[0]["label"])
		assert.Equal(t, "photos/marj.jpg", got[0]["avatar_img"])
	})

	t.Run("json multiple empty is an array", func(t *testing.T) {
		out, err := formatResult(nil, true, formatJSON, "")
		require.NoError(t, err)
		assert.Equal(t, "[]\n", out)
	})

	t.Run("json single", func(t *testing.T) {
		out, err := formatResult(demo[4:], false, formatJSON, "")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Homer", got["label"])

		out, err = formatResult(nil, false, formatJSON, "")
		require.NoError(t, err)
		assert.Equal(t, "null\n", out)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := formatResult(demo[:2], true, formatYAML, "")
		require.NoError(t, err)
		var got []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, 2, got[1]["value"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := formatResult(nil, true, "xml", "")
		assert.Error(t, err)
		assert.False(t, validFormat("xml"))
	})
}

func TestWriteResult(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, writeResult(&plain, "{}\n", formatJSON, false, "mocha"))
	assert.Equal(t, "{}\n", plain.String())

	var colored bytes.Buffer
	require.NoError(t, writeResult(&colored, `{"label": "Bart"}`, formatJSON, true, "mocha"))
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "Bart")
}

func TestWriteHistory(t *testing.T) {
	demo := options.Demo()
	h := tui.NewHistory(0)
	h.Record(nil, demo[:1])
	h.Record(demo[:1], demo[:1])

	var buf bytes.Buffer
	require.NoError(t, writeHistory(&buf, h.Entries(), false, "mocha"))
	out := buf.String()

	assert.Contains(t, out, "# change 1 at ")
	assert.Contains(t, out, ": +Marj\n")
	assert.Contains(t, out, "+Marj\t1\n")
	assert.Contains(t, out, "# change 2 at ")
	assert.Contains(t, out, "(no change)")
}
