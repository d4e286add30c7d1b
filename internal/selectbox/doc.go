// Package selectbox implements a dropdown select component for Bubble Tea.
//
// The component supports single and multiple selection, keyboard
// navigation, mouse interaction and case-insensitive filtering over option
// labels. It is controlled: the host owns the selected value and receives
// every change through the OnChange callback of the selection mode, then
// writes the value back with SetSingleValue or SetMultipleValue. Only
// transient UI state (open, highlighted row, search text, focus) lives in the
// component.
//
// Options are matched by their Value key, so a host may rebuild option
// records between renders without breaking selection.
package selectbox
