// Package semver implements the small subset of version parsing and
// comparison the feature matrix needs. It follows the same three-way
// comparison shape as esbuild's internal/compat.compareVersions: missing
// trailing components compare as zero, and only as many parts as are
// actually present are significant.
package semver

import (
	"strconv"
	"strings"
)

// Semver is a parsed dotted version number, e.g. "14.2" -> Parts: [14, 2].
// It intentionally does not model pre-release or build metadata; targets in
// this domain are plain runtime version numbers.
type Semver struct {
	Parts []int
}

func (v Semver) String() string {
	if len(v.Parts) == 0 {
		return ""
	}
	strs := make([]string, len(v.Parts))
	for i, p := range v.Parts {
		strs[i] = strconv.Itoa(p)
	}
	return strings.Join(strs, ".")
}

// IsZero reports whether this Semver carries no version information at all,
// i.e. the platform was never targeted.
func (v Semver) IsZero() bool {
	return len(v.Parts) == 0
}

// Parse accepts dotted numeric version strings such as "14", "14.2", or
// "14.2.1". Parsing stops at the first non-numeric or empty component, so
// it and every later component are ignored ("1.x.3" parses as 1); a wholly
// unparsable string yields a zero Semver rather than an error, matching how
// a lenient config loader should degrade rather than fail an entire target
// list over one malformed platform version.
func Parse(text string) Semver {
	text = strings.TrimSpace(text)
	if text == "" {
		return Semver{}
	}
	fields := strings.Split(text, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		n, err := strconv.Atoi(f)
		if err != nil {
			break
		}
		parts = append(parts, n)
	}
	return Semver{Parts: parts}
}

// Compare returns <0, 0, or >0 as a is less than, equal to, or greater than
// b, comparing component-by-component and treating a missing trailing
// component as 0.
func Compare(a, b Semver) int {
	n := len(a.Parts)
	if len(b.Parts) > n {
		n = len(b.Parts)
	}
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a.Parts) {
			x = a.Parts[i]
		}
		if i < len(b.Parts) {
			y = b.Parts[i]
		}
		if x != y {
			return x - y
		}
	}
	return 0
}

// AtLeast reports whether a >= b.
func AtLeast(a, b Semver) bool {
	return Compare(a, b) >= 0
}
