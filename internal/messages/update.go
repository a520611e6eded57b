package messages

// Update messages for the release freshness check.
const (
	// UpdateCreateRequestErrFmt formats request construction errors.
	UpdateCreateRequestErrFmt         = "create release request: %w"
	UpdateFetchLatestReleaseErrFmt    = "fetch latest release: %w"
	UpdateFetchLatestReleaseStatusFmt = "fetch latest release: unexpected status %s"
	UpdateDecodeLatestReleaseErrFmt   = "decode latest release: %w"
	UpdateLatestReleaseMissingTag     = "latest release has no tag name"
	UpdateInvalidLatestReleaseTagFmt  = "invalid latest release tag %q: %v"
	UpdateInvalidCurrentVersionFmt    = "invalid current version %q: %v"
	UpdateRateLimitedFmt              = "github api rate limit exceeded (%s, remaining=%s)"
	UpdateVersionRequired             = "version is required"
	UpdateInvalidVersionFmt           = "version %q must be in the form vX.Y.Z or X.Y.Z"
	UpdateInvalidVersionSegmentFmt    = "invalid version segment %q: %v"
)
