package selectbox

import (
	"fmt"
	"math"

	apperrors "github.com/mark3labs/selectr/internal/errors"
)

// Option is a selectable item. Value is the stable identity key and must be
// a string or a finite number.
type Option struct {
	Label     string `yaml:"label" json:"label"`
	Value     any    `yaml:"value" json:"value"`
	AvatarImg string `yaml:"avatar_img,omitempty" json:"avatar_img,omitempty"`
}

// Key returns the printed form of Value. Two options are the same option
// when their keys are equal, so 2 and "2" collide.
func (o Option) Key() string {
	return fmt.Sprint(o.Value)
}

// Same reports whether a and b identify the same option.
func Same(a, b Option) bool {
	return a.Key() == b.Key()
}

// ValidateOptions checks the host contract for an option list: every label is
// non-empty, every value is a string or finite number and no two values
// share a key. All problems are reported together.
func ValidateOptions(options []Option) error {
	var errs apperrors.MultiError
	seen := make(map[string]int, len(options))
	for i, o := range options {
		field := fmt.Sprintf("options[%d]", i)
		if o.Label == "" {
			errs.Append(apperrors.NewValidationError(field+".label", o.Label, "label must not be empty"))
		}
		if !validValue(o.Value) {
			errs.Append(apperrors.NewValidationError(field+".value", fmt.Sprint(o.Value), fmt.Sprintf("value must be a string or finite number, got %T", o.Value)))
			continue
		}
		if j, dup := seen[o.Key()]; dup {
			errs.Append(apperrors.NewValidationError(field+".value", o.Key(), fmt.Sprintf("duplicates options[%d]", j)))
			continue
		}
		seen[o.Key()] = i
	}
	return errs.ErrorOrNil()
}

// validateSelection rejects a Multiple value that holds the same option twice.
func validateSelection(value []Option) error {
	var errs apperrors.MultiError
	seen := make(map[string]int, len(value))
	for i, o := range value {
		if j, dup := seen[o.Key()]; dup {
			errs.Append(apperrors.NewValidationError(fmt.Sprintf("value[%d]", i), o.Key(), fmt.Sprintf("duplicates value[%d]", j)))
			continue
		}
		seen[o.Key()] = i
	}
	return errs.ErrorOrNil()
}

func validValue(v any) bool {
	switch v := v.(type) {
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return false
}
