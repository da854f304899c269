package formatter

import (
	"strconv"
	"strings"
)

// DefaultSeparator splits Go import paths, the default kind of target.
const DefaultSeparator = "/"

// ShortenTarget returns the last segment of target split on sep.
// An empty separator leaves the target untouched.
func ShortenTarget(target, sep string) string {
	if sep == "" {
		return target
	}
	if i := strings.LastIndex(target, sep); i >= 0 {
		return target[i+len(sep):]
	}
	return target
}

// TargetWithLine renders the target column: the last segment of target,
// a colon, and the source line.
func TargetWithLine(target, sep string, line int) string {
	return ShortenTarget(target, sep) + ":" + strconv.Itoa(line)
}
