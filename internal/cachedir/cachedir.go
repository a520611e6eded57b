// Package cachedir maps the host platform and an interpreter version to the
// bootstrap cache directory. Resolution is a pure function of the injected
// environment and version pair; nothing here touches the filesystem.
package cachedir

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyversion"
)

// AppName is the directory name used under the platform cache convention.
const AppName = "pipboot"

// Resolve returns the cache directory for the given OS family and
// interpreter version. When override is non-empty (config or environment)
// it replaces the platform convention entirely; the version segment is
// still appended so one override can serve several interpreters.
func Resolve(sys System, osFamily string, version pyversion.Version, override string) (string, error) {
	if sys == nil {
		return "", fmt.Errorf(messages.CacheDirSystemRequired)
	}
	if trimmed := strings.TrimSpace(override); trimmed != "" {
		return filepath.Join(trimmed, version.String()), nil
	}

	switch osFamily {
	case "windows":
		local := sys.Getenv("LOCALAPPDATA")
		if strings.TrimSpace(local) == "" {
			return "", fmt.Errorf(messages.CacheDirMissingLocalAppData)
		}
		return filepath.Join(local, AppName, "Cache", version.String()), nil
	case "darwin":
		home, err := sys.HomeDir()
		if err != nil {
			return "", fmt.Errorf(messages.CacheDirResolveHomeFmt, err)
		}
		return filepath.Join(home, "Library", "Caches", AppName, version.String()), nil
	default:
		if xdg := strings.TrimSpace(sys.Getenv("XDG_CACHE_HOME")); xdg != "" {
			return filepath.Join(xdg, AppName, version.String()), nil
		}
		home, err := sys.HomeDir()
		if err != nil {
			return "", fmt.Errorf(messages.CacheDirResolveHomeFmt, err)
		}
		return filepath.Join(home, ".cache", AppName, version.String()), nil
	}
}
