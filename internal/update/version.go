package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pipboot/pipboot/internal/messages"
)

// IsDev reports whether raw denotes an unreleased development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "dev")
}

// Normalize converts a release tag or version string into X.Y.Z form,
// accepting an optional leading "v".
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if trimmed == "" {
		return "", fmt.Errorf(messages.UpdateVersionRequired)
	}
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf(messages.UpdateInvalidVersionFmt, raw)
	}
	for _, part := range parts {
		if _, err := strconv.Atoi(part); err != nil {
			return "", fmt.Errorf(messages.UpdateInvalidVersionSegmentFmt, part, err)
		}
	}
	return trimmed, nil
}
