package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "pipboot"
	// RootShort is the short description for the root command.
	RootShort = "Bootstrap pip for a Python interpreter"
	RootLong  = "pipboot downloads, caches, and launches pip for a Python interpreter\n" +
		"that may not have pip installed. Run it with pip arguments to use pip\n" +
		"as if it were natively installed; pipboot fetches get-pip.py on the\n" +
		"first run and reuses the per-version cache afterwards."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
	VersionUse       = "version"
	VersionShort     = "Print the pipboot version"

	// UpgradeUse is the upgrade-pip command name.
	UpgradeUse          = "upgrade-pip"
	UpgradeShort        = "Discard the cached pip and install the latest"
	UpgradeCompletedFmt = "pipboot: rebuilt pip for Python %s at %s\n"

	// InitUse is the init command name.
	InitUse       = "init"
	InitShort     = "Interactive configuration wizard"
	InitFlagForce = "Reset the config file to the shipped template before prompting"
	// InitNoConfigPath reports that no config location could be derived.
	InitNoConfigPath = "no config file location for this platform; set the relevant environment variable (APPDATA or HOME)"

	// UnsupportedInterpreterFmt reports an interpreter pipboot cannot serve.
	UnsupportedInterpreterFmt = "python %s at %s is not supported (pipboot needs 2.7 or 3.5+)"
)
