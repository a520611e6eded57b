package messages

// Wizard messages for the interactive init wizard.
const (
	WizardRequiresTerminal = "the init wizard requires an interactive terminal"

	WizardCreatePromptFmt    = "No config file found. Create %s?"
	WizardExitWithoutChanges = "Exiting without changes."
	WizardCreateFailedFmt    = "failed to create config file: %v"
	WizardCreatedFmt         = "Created %s.\n"

	WizardIndexURLTitle              = "Bootstrap index URL"
	WizardIndexURLInvalidNoteTitle   = "Invalid index URL"
	WizardIndexURLInvalidNoteBodyFmt = "%q is not an http(s) URL. Enter a full URL such as https://bootstrap.pypa.io/pip."
	WizardPythonTitle                = "Python interpreter (path or name, empty to auto-detect)"
	WizardCacheDirTitle              = "Cache directory override (empty for the platform default)"

	WizardFirstStepEscapeExitPrompt = "Exit the wizard without saving?"

	WizardPreviewTitle      = "Proposed config changes"
	WizardNoChanges         = "No rewrites needed. The config already matches your selections."
	WizardApplyChangesPrompt = "Apply these changes?"
	WizardCompleted         = "✅ pipboot configuration saved."

	WizardLoadConfigFailedFmt     = "failed to load config: %v"
	WizardWriteConfigFailedFmt    = "failed to write %s: %v"
	WizardParseConfigFailedFmt    = "failed to parse config: %v"
	WizardReadTemplateFailedFmt   = "failed to read config template: %v"
	WizardPatchConfigFailedFmt    = "failed to update config: %v"
	WizardPatchedConfigInvalidFmt = "patched config is not valid TOML: %v"
)
