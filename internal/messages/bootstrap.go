package messages

// Bootstrap messages for interpreter discovery, cache resolution, download
// staging, and the install/prune/launch pipeline.
const (
	// PyVersionEmpty reports an empty version string.
	PyVersionEmpty              = "interpreter version is empty"
	PyVersionInvalidFmt         = "interpreter version %q must be in the form major.minor"
	PyVersionInvalidSegmentFmt  = "interpreter version %q has a non-numeric segment: %v"
	PyVersionNegativeSegmentFmt = "interpreter version segment %d is negative"

	// PyEnvSystemRequired reports a missing system dependency.
	PyEnvSystemRequired        = "pyenv system is required"
	PyEnvConfiguredNotFoundFmt = "configured interpreter %q not found: %v"
	PyEnvNoInterpreterFmt      = "no python interpreter found on PATH (tried %s)"
	PyEnvProbeFailedFmt        = "probe interpreter %s: %v"
	PyEnvProbeOutputInvalidFmt = "interpreter %s reported an unparseable version: %v"

	// CacheDirSystemRequired reports a missing system dependency.
	CacheDirSystemRequired      = "cachedir system is required"
	CacheDirMissingLocalAppData = "LOCALAPPDATA is not set"
	CacheDirResolveHomeFmt      = "resolve home dir: %w"

	// IndexCreateRequestErrFmt formats index request construction errors.
	IndexCreateRequestErrFmt = "create index request: %w"
	IndexFetchFailedFmt      = "fetch bootstrap index %s: %w"
	IndexUnexpectedStatusFmt = "fetch bootstrap index %s: unexpected status %s"
	IndexParseFailedFmt      = "parse bootstrap index %s: %w"

	// FetchCreateStagingDirFmt formats staging directory creation errors.
	FetchCreateStagingDirFmt = "create download staging dir: %w"
	FetchDownloadFailedFmt   = "download %s: %w"
	FetchUnexpectedStatusFmt = "download %s: unexpected status %s"
	FetchCreateFileFmt       = "create %s: %w"
	FetchCloseFileFmt        = "close %s: %w"
	FetchDownloadTooLargeFmt = "download %s: size %d exceeds limit %d"

	// InstallerRunFailedFmt formats installer subprocess failures.
	InstallerRunFailedFmt  = "run installer %s: %w"
	InstallerReadTargetFmt = "read install target %s: %w"
	InstallerPruneEntryFmt = "prune %s: %w"

	// BootstrapCacheRootRequired reports a missing cache root.
	BootstrapCacheRootRequired  = "cache root is required"
	BootstrapResolverRequired   = "index resolver is required"
	BootstrapNoNetworkFmt       = "pip is not cached at %s and downloads are disabled"
	BootstrapCreateCacheRootFmt = "create cache root %s: %w"
	BootstrapRemoveCacheRootFmt = "remove cache root %s: %w"
	// BootstrapInstallingFmt is the single diagnostic line emitted when a
	// cold download begins.
	BootstrapInstallingFmt = "pipboot: installing pip into %s from %s\n"

	// LaunchErrLaunched is the sentinel text for a completed handoff.
	LaunchErrLaunched         = "handed off to pip"
	LaunchSystemRequired      = "launch system is required"
	LaunchInterpreterRequired = "interpreter path is required"
	LaunchExecFailedFmt       = "exec %s: %w"
)
