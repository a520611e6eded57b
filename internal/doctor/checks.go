package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/pipboot/pipboot/internal/bootstrap"
	"github.com/pipboot/pipboot/internal/cachedir"
	"github.com/pipboot/pipboot/internal/config"
	"github.com/pipboot/pipboot/internal/index"
	"github.com/pipboot/pipboot/internal/messages"
	"github.com/pipboot/pipboot/internal/pyenv"
	"github.com/pipboot/pipboot/internal/pyversion"
)

// lowDiskBytes is the free-space floor below which the disk check warns.
const lowDiskBytes = 100 << 20

var (
	resolveConfigFunc = config.Resolve
	discoverFunc      = pyenv.Discover
	resolveCacheFunc  = cachedir.Resolve
	cacheStateFunc    = bootstrap.CacheState
	statfsFunc        = unix.Statfs
)

// CheckConfig resolves the effective settings from the config file and
// environment overrides. A nil Settings pointer means resolution failed
// and downstream checks cannot run.
func CheckConfig(sys config.System, osFamily string) ([]Result, *config.Settings) {
	settings, err := resolveConfigFunc(sys, osFamily)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	result := Result{Status: StatusOK, CheckName: messages.DoctorCheckNameConfig}
	if settings.ConfigPath != "" {
		result.Message = fmt.Sprintf(messages.DoctorConfigLoadedFmt, settings.ConfigPath)
	} else {
		result.Message = messages.DoctorConfigDefaults
	}
	return []Result{result}, &settings
}

// CheckInterpreter discovers and probes the target interpreter. A nil
// Interpreter pointer means no supported interpreter is available.
func CheckInterpreter(sys pyenv.System, configured string) ([]Result, *pyenv.Interpreter) {
	interp, err := discoverFunc(sys, configured)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameInterpreter,
			Message:        fmt.Sprintf(messages.DoctorInterpreterNotFoundFmt, err),
			Recommendation: messages.DoctorInterpreterNotFoundRecommend,
		}}, nil
	}

	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameInterpreter,
		Message:   fmt.Sprintf(messages.DoctorInterpreterFoundFmt, interp.Path, interp.Version),
	}}
	if !interp.Version.Supported() {
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameInterpreter,
			Message:        fmt.Sprintf(messages.DoctorInterpreterUnsupportedFmt, interp.Version),
			Recommendation: messages.DoctorInterpreterUnsupportedRecommend,
		})
		return results, nil
	}
	return results, &interp
}

// CheckCache resolves the cache root for the interpreter version and
// reports whether pip is already cached there.
func CheckCache(sys cachedir.System, osFamily string, version pyversion.Version, override string) ([]Result, string) {
	root, err := resolveCacheFunc(sys, osFamily, version, override)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameCache,
			Message:        fmt.Sprintf(messages.DoctorCacheResolveFailedFmt, err),
			Recommendation: messages.DoctorCacheResolveRecommend,
		}}, ""
	}

	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCache,
		Message:   fmt.Sprintf(messages.DoctorCacheRootFmt, root),
	}}
	if cacheStateFunc(root) == bootstrap.StateWarm {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameCache,
			Message:   fmt.Sprintf(messages.DoctorCacheWarmFmt, version),
		})
	} else {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCache,
			Message:        fmt.Sprintf(messages.DoctorCacheColdFmt, version),
			Recommendation: messages.DoctorCacheColdRecommend,
		})
	}
	return results, root
}

// CheckDiskSpace reports free space on the volume that would hold the
// cache root, walking up to the nearest existing directory first since
// a cold cache root may not exist yet.
func CheckDiskSpace(cacheRoot string) []Result {
	path := cacheRoot
	for {
		if _, err := os.Stat(path); err == nil {
			break
		}
		parent := filepath.Dir(path)
		if parent == path {
			break
		}
		path = parent
	}

	var stat unix.Statfs_t
	if err := statfsFunc(path, &stat); err != nil {
		return []Result{{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameDisk,
			Message:   fmt.Sprintf(messages.DoctorDiskStatFailedFmt, err),
		}}
	}

	free := uint64(stat.Bavail) * uint64(stat.Bsize)
	freeMiB := free >> 20
	if free < lowDiskBytes {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameDisk,
			Message:        fmt.Sprintf(messages.DoctorDiskLowFmt, freeMiB),
			Recommendation: messages.DoctorDiskLowRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameDisk,
		Message:   fmt.Sprintf(messages.DoctorDiskFreeFmt, freeMiB),
	}}
}

// CheckIndex resolves the installer URL for the interpreter version to
// confirm the bootstrap index is reachable and serving the expected
// layout. The check is skipped in no-network mode.
func CheckIndex(resolver *index.Resolver, version pyversion.Version, noNetwork bool) []Result {
	if noNetwork {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameIndex,
			Message:        fmt.Sprintf(messages.DoctorIndexSkippedFmt, config.EnvNoNetwork),
			Recommendation: fmt.Sprintf(messages.DoctorIndexSkippedRecommendFmt, config.EnvNoNetwork),
		}}
	}

	url, err := resolver.InstallerURL(version)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameIndex,
			Message:        fmt.Sprintf(messages.DoctorIndexUnreachableFmt, err),
			Recommendation: messages.DoctorIndexUnreachableRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameIndex,
		Message:   fmt.Sprintf(messages.DoctorIndexResolvedFmt, version, url),
	}}
}
