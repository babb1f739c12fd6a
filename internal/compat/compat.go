// Package compat implements the feature matrix (C1): a static table mapping
// each downlevel feature to the earliest runtime version of each known
// target platform that ships the feature natively, and the ShouldEnable
// predicate the pass composer uses to decide which lowering stages run.
package compat

import "github.com/tscore/tscore/internal/semver"

// Row returns the compatibility row for a feature. Exported so the composer
// and the debug trace can describe a feature without re-deriving its row.
func (f Feature) Row() FeatureRow {
	return table[f]
}

// Supported reports whether feature f is natively supported on platform p at
// version ver, per the data model's invariant: supported iff the row has a
// version for p and ver is >= that version.
func (f Feature) Supported(p Platform, ver semver.Semver) bool {
	min := table[f][p]
	if min == nil {
		return false
	}
	return semver.AtLeast(ver, *min)
}

// ShouldEnable implements §4.1's enablement rule. A feature must lower
// (return true) iff at least one targeted platform lacks support for it, or
// no targets are configured at all and the feature is default-on.
func ShouldEnable(feature Feature, targets TargetVersions, defaultOn bool) bool {
	if targets.IsEmpty() {
		return defaultOn
	}
	return RowNeeded(table[feature], targets)
}

// RowNeeded reports whether at least one targeted platform lacks native
// support per row. Shared between ShouldEnable and the polyfill injector's
// own ruleset, which carries rows for library builtins the syntax table
// doesn't cover.
func RowNeeded(row FeatureRow, targets TargetVersions) bool {
	for p := Platform(0); p < numPlatforms; p++ {
		target := targets[p]
		if target == nil {
			continue
		}
		min := row[p]
		if min == nil {
			// The feature never shipped on a platform that was explicitly
			// targeted: it must be lowered for that platform.
			return true
		}
		if !semver.AtLeast(*target, *min) {
			return true
		}
	}
	return false
}
