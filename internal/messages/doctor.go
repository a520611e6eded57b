package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check interpreter, cache, disk space, and index health"

	DoctorHealthCheck = "🏥 Checking pipboot health...\n"

	DoctorCheckNameConfig      = "Config"
	DoctorCheckNameInterpreter = "Interpreter"
	DoctorCheckNameCache       = "Cache"
	DoctorCheckNameDisk        = "Disk"
	DoctorCheckNameIndex       = "Index"
	DoctorCheckNameUpdate      = "Update"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix or remove the config file, or run `pipboot init` to regenerate it."
	DoctorConfigLoadedFmt     = "Configuration loaded from %s"
	DoctorConfigDefaults      = "No config file found; using defaults"

	DoctorInterpreterNotFoundFmt       = "No usable Python interpreter: %v"
	DoctorInterpreterNotFoundRecommend = "Install Python 3.5 or newer, or point PIPBOOT_PYTHON at an interpreter."
	DoctorInterpreterFoundFmt          = "Found %s (Python %s)"
	DoctorInterpreterUnsupportedFmt    = "Python %s is not supported"
	DoctorInterpreterUnsupportedRecommend = "pipboot supports Python 2.7 and 3.5 or newer."

	DoctorCacheResolveFailedFmt = "Failed to resolve cache directory: %v"
	DoctorCacheResolveRecommend = "Set PIPBOOT_CACHE_DIR to a writable directory."
	DoctorCacheRootFmt          = "Cache root: %s"
	DoctorCacheWarmFmt          = "pip is cached for Python %s"
	DoctorCacheColdFmt          = "pip is not cached for Python %s"
	DoctorCacheColdRecommend    = "Run `pipboot` once to download and cache pip."

	DoctorDiskStatFailedFmt = "Failed to stat cache volume: %v"
	DoctorDiskFreeFmt       = "%d MiB free on cache volume"
	DoctorDiskLowFmt        = "Only %d MiB free on cache volume"
	DoctorDiskLowRecommend  = "Free up disk space; installing pip needs roughly 100 MiB."

	DoctorIndexSkippedFmt           = "Index check skipped because %s is set"
	DoctorIndexSkippedRecommendFmt  = "Unset %s to check index reachability."
	DoctorIndexUnreachableFmt       = "Bootstrap index unreachable: %v"
	DoctorIndexUnreachableRecommend = "Verify network access and the index_url setting."
	DoctorIndexResolvedFmt          = "Installer for Python %s resolves to %s"

	DoctorUpdateSkippedFmt          = "Update check skipped because %s is set"
	DoctorUpdateSkippedRecommendFmt = "Unset %s to check for updates."
	DoctorUpdateRateLimited         = "Update check skipped due to GitHub API rate limit (HTTP 403/429)"
	DoctorUpdateFailedFmt           = "Failed to check for updates: %v"
	DoctorUpdateFailedRecommend     = "Verify network access and try again."
	DoctorUpdateDevBuildFmt         = "Running dev build; latest release is %s"
	DoctorUpdateDevBuildRecommend   = "Install a release build for update notifications."
	DoctorUpdateAvailableFmt        = "pipboot update available: %s (current %s)"
	DoctorUpdateAvailableRecommend  = "Download the latest release from https://github.com/pipboot/pipboot/releases."
	DoctorUpToDateFmt               = "pipboot is up to date (%s)"

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "✅ All systems go. pipboot is ready."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-12s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
