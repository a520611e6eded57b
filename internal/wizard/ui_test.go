package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	require.NotNil(t, ui)
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUI_EnsureInteractive_NilChecker(t *testing.T) {
	ui := &HuhUI{}
	// Falls back to the real terminal check; under go test there is no TTY.
	err := ui.ensureInteractive()
	assert.Error(t, err)
}

func TestHuhUI_NoTTY(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	var b bool
	assert.Error(t, ui.Confirm("confirm", &b))

	var s string
	assert.Error(t, ui.Input("input", &s))

	assert.Error(t, ui.Note("note", "body"))
}

func TestHuhUI_RunFormSuccess(t *testing.T) {
	original := runFormFunc
	runFormFunc = func(form *huh.Form) error { return nil }
	defer func() { runFormFunc = original }()

	ui := &HuhUI{isTerminal: func() bool { return true }}
	var value bool
	assert.NoError(t, ui.Confirm("confirm", &value))
}

func TestHuhUI_RunFormMapsUserAbortToWizardBack(t *testing.T) {
	original := runFormFunc
	runFormFunc = func(form *huh.Form) error { return huh.ErrUserAborted }
	defer func() { runFormFunc = original }()

	ui := &HuhUI{isTerminal: func() bool { return true }}
	var value string
	err := ui.Input("input", &value)
	assert.ErrorIs(t, err, errWizardBack)
}

func TestHuhUI_RunFormMapsCtrlCAbortToWizardCancelled(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}

	original := runFormFunc
	runFormFunc = func(form *huh.Form) error {
		ui.ctrlCAbort = true
		return huh.ErrUserAborted
	}
	defer func() { runFormFunc = original }()

	var value string
	err := ui.Input("input", &value)
	assert.ErrorIs(t, err, errWizardCancelled)
}

func TestHuhUI_RunFormResetsCtrlCAbortBetweenForms(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	ui.ctrlCAbort = true

	original := runFormFunc
	runFormFunc = func(form *huh.Form) error { return huh.ErrUserAborted }
	defer func() { runFormFunc = original }()

	var value string
	err := ui.Input("input", &value)
	assert.ErrorIs(t, err, errWizardBack)
}

func TestFormFilter_CtrlCKeySetsCancelFlag(t *testing.T) {
	ui := &HuhUI{}
	filter := ui.formFilter()

	msg := filter(nil, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, ui.ctrlCAbort)
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyCtrlC}, msg)
}

func TestFormFilter_InterruptMsgConvertsToQuitMsg(t *testing.T) {
	ui := &HuhUI{}
	filter := ui.formFilter()

	msg := filter(nil, tea.InterruptMsg{})
	assert.Equal(t, tea.QuitMsg{}, msg)
	assert.False(t, ui.ctrlCAbort)
}

func TestFormFilter_OtherMsgPassesThrough(t *testing.T) {
	ui := &HuhUI{}
	filter := ui.formFilter()

	msg := filter(nil, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyEscape}, msg)
	assert.False(t, ui.ctrlCAbort)
}

func TestWizardKeyMap(t *testing.T) {
	km := wizardKeyMap()
	assert.Equal(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
	assert.Equal(t, []string{"esc"}, km.Input.Prev.Keys())
	assert.Equal(t, []string{"ctrl+c"}, km.Input.Next.Keys())
}

func TestHintField_UpdatePreservesWrapper(t *testing.T) {
	field := newHintField(huh.NewInput().Title("t"))
	model, _ := field.(*hintField).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	_, ok := model.(*hintField)
	assert.True(t, ok)
}
