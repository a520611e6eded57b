package wizard

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/terminal"
)

// UI defines the interaction methods the wizard flow needs.
type UI interface {
	Confirm(title string, value *bool) error
	Input(title string, value *string) error
	Note(title string, body string) error
}

// HuhUI implements UI using charmbracelet/huh. Every prompt is its own
// single-field form so each step can be escaped independently.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool // set by the message filter while a form runs; reset per form
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a new HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.WizardRequiresTerminal)
}

// wizardKeyMap binds both Esc and Ctrl+C to form abort at the Quit level;
// runForm then tells them apart through the ctrlCAbort flag. Because Quit
// fires first, the field-level Prev and Next bindings can never trigger,
// which frees them up to serve as help-bar hints for the two abort keys.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	escBack := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	ctrlCExit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))
	km.Confirm.Prev, km.Confirm.Next = escBack, ctrlCExit
	km.Input.Prev, km.Input.Next = escBack, ctrlCExit
	km.Note.Prev, km.Note.Next = escBack, ctrlCExit

	return km
}

// hintField keeps the Prev ("esc"/"back") and Next ("ctrl+c"/"exit") hint
// bindings visible in the help bar.
//
// huh disables Prev on the first field and Next on the last field whenever
// it recomputes field positions, and with one field per form that disables
// both hints permanently. Intercepting WithPosition and re-applying the
// wizard keymap right after restores them.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

// Update delegates to the inner field and re-wraps the result; the group
// stores whatever model Update returns, and it must stay the wrapper.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition applies huh's positional state, then restores the hint
// bindings it just disabled.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

// formFilter records Ctrl+C key presses in ctrlCAbort and rewrites
// InterruptMsg to QuitMsg so bubbletea shuts down gracefully and clears
// the form from the screen.
//
// In raw mode a keyboard Ctrl+C arrives as a KeyMsg, not as an OS signal,
// and that KeyMsg precedes the InterruptMsg huh emits on cancel, so the
// flag is set by the time the abort completes. Esc sets no flag, which is
// how the abort gets classified as back navigation instead.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm validates terminal availability and runs the provided form.
// Esc returns errWizardBack; Ctrl+C returns errWizardCancelled.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	ui.ctrlCAbort = false
	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return errWizardCancelled
		}
		return errWizardBack
	}
	return err
}

// newHintField wraps a huh.Field so the hint bindings survive huh's
// positional disabling in single-field forms.
func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: wizardKeyMap()}
}

// singleFieldForm builds the one-field form every wizard prompt uses.
func singleFieldForm(field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(newHintField(field)))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(singleFieldForm(huh.NewConfirm().Title(title).Value(value)))
}

// Input renders a plain text input prompt.
func (ui *HuhUI) Input(title string, value *string) error {
	return ui.runForm(singleFieldForm(huh.NewInput().Title(title).Value(value)))
}

// Note renders an informational note screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(singleFieldForm(huh.NewNote().Title(title).Description(body)))
}
