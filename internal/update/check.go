// Package update checks GitHub for a newer pipboot release. The check is
// best-effort and only surfaces through doctor; the bootstrap path never
// depends on it.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pipboot/pipboot/internal/messages"
)

// Repo identifies the GitHub repository used for release checks.
const Repo = "pipboot/pipboot"

// ReleasesBaseURL is the base URL for release downloads.
const ReleasesBaseURL = "https://github.com/" + Repo + "/releases"

var latestReleaseURL = "https://api.github.com/repos/" + Repo + "/releases/latest"
var httpClient = &http.Client{Timeout: 10 * time.Second}
var retryDelay = 250 * time.Millisecond

// RateLimitError indicates GitHub's API rate limit was hit while checking
// for updates. Callers should treat this as a best-effort failure.
type RateLimitError struct {
	StatusCode int
	Status     string
	Remaining  *int
}

func (e *RateLimitError) Error() string {
	remainingText := "unknown"
	if e.Remaining != nil {
		remainingText = fmt.Sprintf("%d", *e.Remaining)
	}
	return fmt.Sprintf(messages.UpdateRateLimitedFmt, e.Status, remainingText)
}

// IsRateLimitError reports whether err represents a GitHub API rate-limit condition.
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// CheckResult captures the latest release check outcome.
type CheckResult struct {
	Current      string
	Latest       string
	Outdated     bool
	CurrentIsDev bool
}

// Check fetches the latest release and compares it to currentVersion.
func Check(ctx context.Context, currentVersion string) (CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	current, isDev, err := normalizeCurrentVersion(currentVersion)
	if err != nil {
		return CheckResult{}, err
	}

	latest, err := latestReleaseVersion(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{
		Current:      current,
		Latest:       latest,
		CurrentIsDev: isDev,
	}
	if !isDev {
		cmp, err := compareSemver(current, latest)
		if err != nil {
			return CheckResult{}, err
		}
		result.Outdated = cmp < 0
	}
	return result, nil
}

type latestReleaseResponse struct {
	TagName string `json:"tag_name"`
}

// latestReleaseVersion returns the normalized latest release tag. A
// transient failure (network timeout, 5xx) gets exactly one retry after a
// short pause; everything else fails immediately.
func latestReleaseVersion(ctx context.Context) (string, error) {
	tag, retryable, err := fetchLatestTag(ctx)
	if err != nil && retryable {
		time.Sleep(retryDelay)
		tag, _, err = fetchLatestTag(ctx)
	}
	if err != nil {
		return "", err
	}
	normalized, err := Normalize(tag)
	if err != nil {
		return "", fmt.Errorf(messages.UpdateInvalidLatestReleaseTagFmt, tag, err)
	}
	return normalized, nil
}

// fetchLatestTag performs a single release-feed request. retryable reports
// whether the failure looks transient.
func fetchLatestTag(ctx context.Context) (tag string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateCreateRequestErrFmt, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "pipboot")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", isTransientNetErr(err), fmt.Errorf(messages.UpdateFetchLatestReleaseErrFmt, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if rlErr := classifyRateLimit(resp); rlErr != nil {
			return "", false, rlErr
		}
		serverSide := resp.StatusCode >= 500 && resp.StatusCode <= 599
		return "", serverSide, fmt.Errorf(messages.UpdateFetchLatestReleaseStatusFmt, resp.Status)
	}

	var payload latestReleaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false, fmt.Errorf(messages.UpdateDecodeLatestReleaseErrFmt, err)
	}
	tag = strings.TrimSpace(payload.TagName)
	if tag == "" {
		return "", false, fmt.Errorf(messages.UpdateLatestReleaseMissingTag)
	}
	return tag, false, nil
}

// classifyRateLimit maps a non-200 response to a RateLimitError when the
// status and headers show rate limiting rather than an ordinary failure.
// GitHub answers unauthenticated exhaustion with 403, so a Forbidden only
// counts when X-RateLimit-Remaining confirms the quota is spent.
func classifyRateLimit(resp *http.Response) *RateLimitError {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	case http.StatusForbidden:
		remaining, err := strconv.Atoi(strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining")))
		if err != nil || remaining != 0 {
			return nil
		}
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status, Remaining: &remaining}
	}
	return nil
}

// isTransientNetErr reports whether a transport error is worth one retry.
// Context cancellation is the caller giving up, never transient.
func isTransientNetErr(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// normalizeCurrentVersion validates the current version and reports dev builds.
func normalizeCurrentVersion(raw string) (string, bool, error) {
	if IsDev(raw) {
		return "dev", true, nil
	}
	normalized, err := Normalize(raw)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateInvalidCurrentVersionFmt, raw, err)
	}
	return normalized, false, nil
}

// compareSemver compares two semantic versions in X.Y.Z form.
// It returns -1 if a < b, 0 if a == b, and 1 if a > b.
func compareSemver(a string, b string) (int, error) {
	aParts, err := parseSemver(a)
	if err != nil {
		return 0, err
	}
	bParts, err := parseSemver(b)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(aParts); i++ {
		if aParts[i] < bParts[i] {
			return -1, nil
		}
		if aParts[i] > bParts[i] {
			return 1, nil
		}
	}
	return 0, nil
}

// parseSemver converts a semantic version into numeric components.
func parseSemver(raw string) ([3]int, error) {
	normalized, err := Normalize(raw)
	if err != nil {
		return [3]int{}, err
	}
	parts := strings.Split(normalized, ".")
	if len(parts) != 3 {
		return [3]int{}, fmt.Errorf(messages.UpdateInvalidVersionFmt, raw)
	}
	var out [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return [3]int{}, fmt.Errorf(messages.UpdateInvalidVersionSegmentFmt, part, err)
		}
		out[i] = value
	}
	return out, nil
}
