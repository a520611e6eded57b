package messages

// Config messages for loading and resolving settings.
const (
	// ConfigSystemRequired reports a missing system dependency.
	ConfigSystemRequired = "config system is required"
	ConfigResolveHomeFmt = "resolve home dir: %w"
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt         = "read config %s: %w"
	ConfigInvalidFmt          = "invalid config %s: %v"
	ConfigUnrecognizedKeysFmt = "invalid config %s: unrecognized keys: %v"
	ConfigIndexURLInvalidFmt  = "%s: index_url %q must be an http or https URL"
)
