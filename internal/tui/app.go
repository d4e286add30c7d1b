package tui

import (
	"context"
	"fmt"
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	apperrors "github.com/mark3labs/selectr/internal/errors"
	"github.com/mark3labs/selectr/internal/logger"
	"github.com/mark3labs/selectr/internal/selectbox"
	"github.com/mark3labs/selectr/internal/tui/theme"
)

// Layout rows. The dropdown is drawn last so it overlays the rows below it.
const (
	marginX     = 2
	titleY      = 1
	selectY     = 3
	doneY       = 5
	historyY    = 7
	maxSelectW  = 60
	doneLabel   = "Done"
	defaultName = "Select Users"
)

type focusArea int

const (
	focusSelect focusArea = iota
	focusDone
)

// Options configures an App.
type Options struct {
	Title             string
	Items             []selectbox.Option
	Multiple          bool
	Value             []selectbox.Option // At most one element in single mode
	Placeholder       string
	MaxVisible        int
	ResetSearchOnOpen bool
}

// Result is the outcome of a finished App.
type Result struct {
	Value    []selectbox.Option
	Accepted bool
	History  []Entry
}

// App is the full-screen host of one select component. It owns the
// controlled value: every change reported by the component is recorded in
// the history and written back.
type App struct {
	title   string
	sel     *selectbox.Model
	value   []selectbox.Option
	history *History
	footer  *Footer
	keys    KeyMap
	focus   focusArea

	width  int
	height int

	accepted  bool
	cancelled bool
	quitting  bool
}

// NewApp creates the host and its select component.
func NewApp(opts Options) (*App, error) {
	if opts.Title == "" {
		opts.Title = defaultName
	}
	if !opts.Multiple && len(opts.Value) > 1 {
		return nil, fmt.Errorf("single selection with %d values: %w", len(opts.Value), apperrors.ErrModeMismatch)
	}

	a := &App{
		title:   opts.Title,
		value:   slices.Clone(opts.Value),
		history: NewHistory(0),
		keys:    DefaultKeyMap(),
	}

	var mode selectbox.Mode
	if opts.Multiple {
		mode = selectbox.Multiple{Value: opts.Value, OnChange: a.onMultipleChange}
	} else {
		var v *selectbox.Option
		if len(opts.Value) == 1 {
			v = &opts.Value[0]
		}
		mode = selectbox.Single{Value: v, OnChange: a.onSingleChange}
	}

	modelOpts := []selectbox.ModelOption{selectbox.WithResetSearchOnOpen(opts.ResetSearchOnOpen)}
	if opts.Placeholder != "" {
		modelOpts = append(modelOpts, selectbox.WithPlaceholder(opts.Placeholder))
	}
	if opts.MaxVisible > 0 {
		modelOpts = append(modelOpts, selectbox.WithMaxVisible(opts.MaxVisible))
	}

	sel, err := selectbox.New(opts.Items, mode, modelOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create select: %w", err)
	}
	a.sel = sel
	a.sel.SetOrigin(marginX, selectY)
	a.footer = NewFooter(a.keys.ShortHelp())
	a.updateFooter()
	return a, nil
}

// Run starts a full-screen program and blocks until the user finishes.
func Run(ctx context.Context, opts Options) (*Result, error) {
	app, err := NewApp(opts)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(app, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("select program failed: %w", err)
	}

	final, ok := finalModel.(*App)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", finalModel)
	}
	res := final.Result()
	if !res.Accepted {
		return &res, apperrors.ErrCancelled
	}
	return &res, nil
}

// Result returns the current value and whether the user accepted it.
func (a *App) Result() Result {
	return Result{
		Value:    slices.Clone(a.value),
		Accepted: a.accepted,
		History:  slices.Clone(a.history.Entries()),
	}
}

func (a *App) onMultipleChange(next []selectbox.Option) {
	a.record(next)
	if err := a.sel.SetMultipleValue(next); err != nil {
		logger.Error("Failed to store value: %v", err)
	}
}

func (a *App) onSingleChange(next *selectbox.Option) {
	var v []selectbox.Option
	if next != nil {
		v = []selectbox.Option{*next}
	}
	a.record(v)
	if err := a.sel.SetSingleValue(next); err != nil {
		logger.Error("Failed to store value: %v", err)
	}
}

func (a *App) record(next []selectbox.Option) {
	e := a.history.Record(a.value, next)
	a.value = slices.Clone(next)
	logger.Info("Value changed: %s", e.Summary())
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.sel.Focus()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return a.handleClick(msg)

	case tea.BlurMsg:
		// Terminal lost focus.
		if a.sel.IsOpen() {
			a.sel.Blur()
			a.sel.Focus()
		}
		return a, nil
	}

	cmd := a.sel.Update(msg)
	a.updateFooter()
	return a, cmd
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.cancel()
	case key.Matches(msg, a.keys.Accept):
		return a.accept()
	}

	if a.focus == focusDone {
		switch {
		case key.Matches(msg, a.keys.Press):
			return a.accept()
		case key.Matches(msg, a.keys.NextFocus):
			return a, a.setFocus(focusSelect)
		case key.Matches(msg, a.keys.Cancel):
			return a.cancel()
		}
		return a, nil
	}

	// The open dropdown owns Tab and Esc.
	if !a.sel.IsOpen() {
		switch {
		case key.Matches(msg, a.keys.NextFocus):
			return a, a.setFocus(focusDone)
		case key.Matches(msg, a.keys.Cancel):
			return a.cancel()
		}
	}

	cmd := a.sel.Update(msg)
	a.updateFooter()
	return a, cmd
}

func (a *App) handleClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseLeft && !a.sel.IsOpen() {
		if (uv.Position{X: msg.X, Y: msg.Y}).In(a.layout().done) {
			a.setFocus(focusDone)
			return a.accept()
		}
	}

	cmd := a.sel.Update(msg)
	if a.sel.Focused() {
		a.focus = focusSelect
	} else if a.focus == focusSelect {
		// A click elsewhere closes the dropdown but keeps keyboard focus.
		cmd = tea.Batch(cmd, a.sel.Focus())
	}
	a.updateFooter()
	return a, cmd
}

func (a *App) setFocus(f focusArea) tea.Cmd {
	a.focus = f
	var cmd tea.Cmd
	if f == focusSelect {
		cmd = a.sel.Focus()
	} else {
		a.sel.Blur()
	}
	a.updateFooter()
	return cmd
}

func (a *App) accept() (tea.Model, tea.Cmd) {
	a.accepted = true
	a.quitting = true
	logger.Info("Accepted %d selected options", len(a.value))
	return a, tea.Quit
}

func (a *App) cancel() (tea.Model, tea.Cmd) {
	a.cancelled = true
	a.quitting = true
	logger.Info("Selection cancelled")
	return a, tea.Quit
}

func (a *App) updateFooter() {
	if a.focus == focusSelect {
		a.footer.SetBindings(a.sel.KeyMap().ShortHelp())
		return
	}
	a.footer.SetBindings([]key.Binding{a.keys.Press})
}

// SetSize updates the terminal dimensions.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	l := a.layout()
	a.sel.SetSize(l.sel.Dx(), max(height-selectY-1, 0))
	a.footer.SetSize(width, 1)
}

type layout struct {
	title   uv.Rectangle
	sel     uv.Rectangle
	done    uv.Rectangle
	history uv.Rectangle
	footer  uv.Rectangle
}

func (a *App) layout() layout {
	inner := max(a.width-2*marginX, 0)
	l := layout{
		title:  uv.Rect(marginX, titleY, inner, 1),
		sel:    uv.Rect(marginX, selectY, min(inner, maxSelectW), 1),
		done:   uv.Rect(marginX, doneY, lipgloss.Width(theme.Current().S().Button.Render(doneLabel)), 1),
		footer: uv.Rect(0, a.height-1, a.width, 1),
	}
	if h := a.height - historyY - 2; h > 0 {
		l.history = uv.Rect(marginX, historyY, inner, h)
	}
	return l
}

// View implements tea.Model.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.ReportFocus = true
	view.WindowTitle = a.title

	if a.quitting || a.width == 0 || a.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// Draw renders every region into scr.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	s := theme.Current().S()
	l := a.layout()

	DrawStyled(scr, l.title, s.Title, a.title)

	button := s.Button
	if a.focus == focusDone {
		button = s.ButtonFocused
	}
	DrawStyled(scr, l.done, button, doneLabel)

	if !l.history.Empty() {
		a.history.Draw(scr, l.history)
	}
	a.footer.Draw(scr, l.footer)

	sel := l.sel
	sel.Max.Y = min(sel.Min.Y+a.sel.PreferredHeight(), area.Max.Y)
	uv.NewStyledString(a.sel.View()).Draw(scr, sel)
}
