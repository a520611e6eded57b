// Package templates embeds the default configuration shipped with pipboot.
package templates

import (
	"embed"
	"fmt"
)

//go:embed config.toml
var files embed.FS

// Read returns the named template's content.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	return data, nil
}
