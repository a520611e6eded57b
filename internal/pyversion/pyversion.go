// Package pyversion models Python interpreter versions at major.minor
// granularity, which is the granularity the bootstrap cache is keyed on.
package pyversion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pipboot/pipboot/internal/messages"
)

// Version is an interpreter version reduced to its major.minor pair.
type Version struct {
	Major int
	Minor int
}

// Parse converts raw into a Version. Raw must contain at least a major and
// minor segment ("3.9" or "3.9.18"); any further segments are ignored.
func Parse(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Version{}, fmt.Errorf(messages.PyVersionEmpty)
	}
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf(messages.PyVersionInvalidFmt, raw)
	}
	major, err := parseSegment(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf(messages.PyVersionInvalidSegmentFmt, raw, err)
	}
	minor, err := parseSegment(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf(messages.PyVersionInvalidSegmentFmt, raw, err)
	}
	return Version{Major: major, Minor: minor}, nil
}

// parseSegment converts one dotted segment into a non-negative integer.
func parseSegment(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf(messages.PyVersionNegativeSegmentFmt, value)
	}
	return value, nil
}

// String renders the version in the major.minor form used for cache
// directory names and index subdirectories.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Supported reports whether the bootstrap supports this interpreter.
// Everything from 3.5 up is supported, plus exactly 2.7.
func (v Version) Supported() bool {
	if v.Major == 2 && v.Minor == 7 {
		return true
	}
	if v.Major > 3 {
		return true
	}
	return v.Major == 3 && v.Minor >= 5
}
