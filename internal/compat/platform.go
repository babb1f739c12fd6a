package compat

import "github.com/tscore/tscore/internal/semver"

// Platform enumerates the twelve runtime targets the feature matrix knows
// about. The order here is also serialization order for debug traces, and
// indexes the fixed-size arrays in TargetVersions and FeatureRow.
type Platform uint8

const (
	Chrome Platform = iota
	IE
	Edge
	Firefox
	Safari
	Node
	IOS
	Samsung
	Opera
	Android
	Electron
	Phantom

	numPlatforms
)

func (p Platform) String() string {
	switch p {
	case Chrome:
		return "chrome"
	case IE:
		return "ie"
	case Edge:
		return "edge"
	case Firefox:
		return "firefox"
	case Safari:
		return "safari"
	case Node:
		return "node"
	case IOS:
		return "ios"
	case Samsung:
		return "samsung"
	case Opera:
		return "opera"
	case Android:
		return "android"
	case Electron:
		return "electron"
	case Phantom:
		return "phantom"
	default:
		return "unknown"
	}
}

// ParsePlatform maps a config key (already lower-cased) to a Platform. The
// second return value is false for unrecognized keys.
func ParsePlatform(name string) (Platform, bool) {
	for p := Platform(0); p < numPlatforms; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// TargetVersions is a fixed-keyed record over every known platform. A nil
// entry means that platform was not targeted at all ("all empty" means "no
// target constraints" per the data model).
type TargetVersions [numPlatforms]*semver.Semver

// NoTargets is the zero value: every entry absent.
var NoTargets = TargetVersions{}

// IsEmpty reports whether no platform was targeted.
func (t TargetVersions) IsEmpty() bool {
	for _, v := range t {
		if v != nil {
			return false
		}
	}
	return true
}

// Set returns a copy of t with platform p set to version v.
func (t TargetVersions) Set(p Platform, v semver.Semver) TargetVersions {
	t[p] = &v
	return t
}
