// Package options loads option lists for the select component from YAML or
// JSON files.
package options

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/mark3labs/selectr/internal/logger"
	"github.com/mark3labs/selectr/internal/selectbox"
	"gopkg.in/yaml.v3"
)

// Demo returns the built-in option set used when no options file is
// configured.
func Demo() []selectbox.Option {
	return []selectbox.Option{
		{Label: "Marj", Value: 1, AvatarImg: "photos/marj.jpg"},
		{Label: "Bart", Value: 2, AvatarImg: "photos/bart.jpg"},
		{Label: "Lisa", Value: 3, AvatarImg: "photos/lisa.jpg"},
		{Label: "Maggie", Value: 4, AvatarImg: "photos/maggie.jpg"},
		{Label: "Homer", Value: 5, AvatarImg: "photos/homer.jpg"},
	}
}

// Load reads and validates an options file. JSON is accepted as a subset of
// YAML.
func Load(path string) ([]selectbox.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("options file %s: %w", path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	opts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Loaded %d options from %s", len(opts), path)
	return opts, nil
}

// Parse decodes and validates an option list.
func Parse(data []byte) ([]selectbox.Option, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperrors.NewValidationError("options", "", "file is empty")
	}

	var opts []selectbox.Option
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	if err := selectbox.ValidateOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Save writes options as YAML, creating the parent directory.
func Save(path string, opts []selectbox.Option) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}
	return nil
}

// Find returns the options with the given value keys, in the order the keys
// are given. Unknown and repeated keys are an error.
func Find(opts []selectbox.Option, keys []string) ([]selectbox.Option, error) {
	index := make(map[string]selectbox.Option, len(opts))
	for _, o := range opts {
		index[o.Key()] = o
	}

	var (
		out  []selectbox.Option
		errs apperrors.MultiError
		seen = make(map[string]bool, len(keys))
	)
	for _, k := range keys {
		o, ok := index[k]
		if !ok {
			errs.Append(fmt.Errorf("no option with value %q: %w", k, apperrors.ErrNotFound))
			continue
		}
		if seen[k] {
			errs.Append(apperrors.NewValidationError("value", k, "given more than once"))
			continue
		}
		seen[k] = true
		out = append(out, o)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}
