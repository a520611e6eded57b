package wizard

import "github.com/pipboot/pipboot/internal/config"

// Choices holds the wizard selections for the config file. Touched flags
// record which values the user actually visited so untouched keys keep
// their current file formatting.
type Choices struct {
	IndexURL string
	Python   string
	CacheDir string

	IndexURLTouched bool
	PythonTouched   bool
	CacheDirTouched bool
}

// NewChoices seeds choices from the parsed config file values.
func NewChoices(cfg *config.Config) *Choices {
	choices := &Choices{}
	if cfg != nil {
		choices.IndexURL = cfg.IndexURL
		choices.Python = cfg.Python
		choices.CacheDir = cfg.CacheDir
	}
	return choices
}

// Clone returns a copy used to restore state on back navigation.
func (c *Choices) Clone() *Choices {
	if c == nil {
		return nil
	}
	copyChoices := *c
	return &copyChoices
}
