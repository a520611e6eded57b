package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"

	"github.com/pipboot/pipboot/internal/config"
	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/templates"
)

var (
	errWizardBack      = errors.New("wizard back requested")
	errWizardCancelled = errors.New("wizard cancelled")
)

// Options controls a wizard run.
type Options struct {
	// ConfigPath is the config file to create or edit.
	ConfigPath string
	// Force resets the file to the shipped template before prompting.
	Force bool
}

// Run starts the interactive init wizard.
func Run(ui UI, opts Options) error {
	return RunWithWriter(ui, opts, os.Stdout)
}

// RunWithWriter starts the interactive init wizard and writes user-facing
// output to out.
func RunWithWriter(ui UI, opts Options, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	proceed, err := ensureWizardConfig(opts, ui, out)
	if err != nil {
		if errors.Is(err, errWizardBack) || errors.Is(err, errWizardCancelled) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}
	if !proceed {
		return nil
	}

	content, err := os.ReadFile(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf(messages.WizardLoadConfigFailedFmt, err)
	}
	cfg, err := config.Parse(content, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf(messages.WizardLoadConfigFailedFmt, err)
	}

	choices := NewChoices(cfg)
	if err := promptWizardFlow(ui, choices); err != nil {
		if errors.Is(err, errWizardCancelled) || errors.Is(err, errWizardBack) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}

	if err := confirmAndApply(opts.ConfigPath, string(content), ui, choices, out); err != nil {
		if errors.Is(err, errWizardCancelled) || errors.Is(err, errWizardBack) {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil
		}
		return err
	}

	return nil
}

// ensureWizardConfig makes sure a config file exists before the flow
// starts, writing the shipped template when missing or when Force is set.
func ensureWizardConfig(opts Options, ui UI, out io.Writer) (bool, error) {
	_, statErr := os.Stat(opts.ConfigPath)
	switch {
	case statErr == nil && !opts.Force:
		return true, nil
	case statErr != nil && !os.IsNotExist(statErr):
		return false, statErr
	}

	if statErr != nil {
		confirm := true
		if err := ui.Confirm(fmt.Sprintf(messages.WizardCreatePromptFmt, opts.ConfigPath), &confirm); err != nil {
			return false, err
		}
		if !confirm {
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return false, nil
		}
	}

	templateBytes, err := templates.Read(config.FileName)
	if err != nil {
		return false, fmt.Errorf(messages.WizardCreateFailedFmt, err)
	}
	if err := os.MkdirAll(filepath.Dir(opts.ConfigPath), 0o755); err != nil {
		return false, fmt.Errorf(messages.WizardCreateFailedFmt, err)
	}
	if err := os.WriteFile(opts.ConfigPath, templateBytes, 0o644); err != nil {
		return false, fmt.Errorf(messages.WizardCreateFailedFmt, err)
	}
	_, _ = fmt.Fprintf(out, messages.WizardCreatedFmt, opts.ConfigPath)
	return true, nil
}

type wizardFlowStep int

const (
	wizardFlowStepIndexURL wizardFlowStep = iota
	wizardFlowStepPython
	wizardFlowStepCacheDir
)

// promptWizardFlow walks the steps in order. Esc restores the previous
// snapshot and moves one step back; Esc on the first step offers a
// confirmed exit.
func promptWizardFlow(ui UI, choices *Choices) error {
	step := wizardFlowStepIndexURL
	for {
		snapshot := choices.Clone()
		var err error

		switch step {
		case wizardFlowStepIndexURL:
			err = promptIndexURL(ui, choices)
		case wizardFlowStepPython:
			err = promptPython(ui, choices)
		case wizardFlowStepCacheDir:
			err = promptCacheDir(ui, choices)
		default:
			return nil
		}

		if err == nil {
			if step == wizardFlowStepCacheDir {
				return nil
			}
			step++
			continue
		}

		if !errors.Is(err, errWizardBack) {
			return err
		}

		if snapshot != nil {
			*choices = *snapshot
		}

		if step == wizardFlowStepIndexURL {
			exit, confirmErr := confirmWizardExitOnFirstStepEscape(ui)
			if confirmErr != nil {
				return confirmErr
			}
			if exit {
				return errWizardCancelled
			}
			continue
		}

		step--
	}
}

// promptIndexURL reads the index URL and re-prompts until it is either
// empty (use the default) or a valid http(s) URL.
func promptIndexURL(ui UI, choices *Choices) error {
	for {
		value := choices.IndexURL
		if err := ui.Input(messages.WizardIndexURLTitle, &value); err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		candidate := config.Config{IndexURL: value}
		if err := candidate.Validate("wizard"); err != nil {
			if noteErr := ui.Note(messages.WizardIndexURLInvalidNoteTitle, fmt.Sprintf(messages.WizardIndexURLInvalidNoteBodyFmt, value)); noteErr != nil {
				return noteErr
			}
			continue
		}
		choices.IndexURL = value
		choices.IndexURLTouched = true
		return nil
	}
}

func promptPython(ui UI, choices *Choices) error {
	value := choices.Python
	if err := ui.Input(messages.WizardPythonTitle, &value); err != nil {
		return err
	}
	choices.Python = strings.TrimSpace(value)
	choices.PythonTouched = true
	return nil
}

func promptCacheDir(ui UI, choices *Choices) error {
	value := choices.CacheDir
	if err := ui.Input(messages.WizardCacheDirTitle, &value); err != nil {
		return err
	}
	choices.CacheDir = strings.TrimSpace(value)
	choices.CacheDirTouched = true
	return nil
}

func confirmWizardExitOnFirstStepEscape(ui UI) (bool, error) {
	exit := true
	if err := ui.Confirm(messages.WizardFirstStepEscapeExitPrompt, &exit); err != nil {
		if errors.Is(err, errWizardBack) {
			return false, nil
		}
		return false, err
	}
	return exit, nil
}

// confirmAndApply previews the rewrite as a unified diff, asks for
// confirmation, and writes the patched config.
func confirmAndApply(configPath, currentContent string, ui UI, choices *Choices, out io.Writer) error {
	nextContent, err := PatchConfig(currentContent, choices)
	if err != nil {
		return fmt.Errorf(messages.WizardPatchConfigFailedFmt, err)
	}

	preview := strings.TrimSpace(udiff.Unified(
		configPath+" (current)",
		configPath+" (proposed)",
		currentContent,
		nextContent,
	))
	if preview == "" {
		preview = messages.WizardNoChanges
	}
	if err := ui.Note(messages.WizardPreviewTitle, preview); err != nil {
		return err
	}

	confirmApply := true
	if err := ui.Confirm(messages.WizardApplyChangesPrompt, &confirmApply); err != nil {
		return err
	}
	if !confirmApply {
		_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
		return nil
	}

	if err := os.WriteFile(configPath, []byte(nextContent), 0o644); err != nil {
		return fmt.Errorf(messages.WizardWriteConfigFailedFmt, configPath, err)
	}

	_, _ = color.New(color.FgGreen).Fprintln(out, messages.WizardCompleted)
	return nil
}
