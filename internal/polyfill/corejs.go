package polyfill

import (
	"github.com/tscore/tscore/internal/compat"
	"github.com/tscore/tscore/internal/semver"
)

// rule is one polyfillable capability: the core-js module that patches it
// in, under both the v2 and v3 naming schemes, plus the compatibility row
// deciding whether the configured targets even need the patch. A rule with
// no targets configured is always needed — usage mode with no targets
// means "polyfill everything you saw used".
type rule struct {
	corejs2 string
	corejs3 string
	row     compat.FeatureRow
}

func (r rule) specifiers(coreJS int) []string {
	if coreJS == 3 {
		return []string{"core-js/modules/" + r.corejs3}
	}
	return []string{"core-js/modules/" + r.corejs2}
}

func (r rule) needed(targets compat.TargetVersions) bool {
	if targets.IsEmpty() {
		return true
	}
	return compat.RowNeeded(r.row, targets)
}

func ver(parts ...int) *semver.Semver {
	return &semver.Semver{Parts: parts}
}

func prow(pairs ...interface{}) compat.FeatureRow {
	var r compat.FeatureRow
	for i := 0; i+1 < len(pairs); i += 2 {
		r[pairs[i].(compat.Platform)] = pairs[i+1].(*semver.Semver)
	}
	return r
}

// globalRules covers constructors and namespaces referenced by name. The
// rows come from the same MDN-derived data set as internal/compat's syntax
// table; IE and phantom have no entries for any ES2015 builtin, so
// targeting either always pulls the polyfill in.
var globalRules = map[string]rule{
	"Map": {
		corejs2: "es6.map", corejs3: "es.map",
		row: prow(compat.Chrome, ver(51), compat.Edge, ver(15), compat.Firefox, ver(53),
			compat.Safari, ver(10), compat.Node, ver(6, 5), compat.IOS, ver(10),
			compat.Samsung, ver(5), compat.Opera, ver(38), compat.Android, ver(51),
			compat.Electron, ver(1, 2)),
	},
	"Set": {
		corejs2: "es6.set", corejs3: "es.set",
		row: prow(compat.Chrome, ver(51), compat.Edge, ver(15), compat.Firefox, ver(53),
			compat.Safari, ver(10), compat.Node, ver(6, 5), compat.IOS, ver(10),
			compat.Samsung, ver(5), compat.Opera, ver(38), compat.Android, ver(51),
			compat.Electron, ver(1, 2)),
	},
	"WeakMap": {
		corejs2: "es6.weak-map", corejs3: "es.weak-map",
		row: prow(compat.Chrome, ver(51), compat.Edge, ver(15), compat.Firefox, ver(53),
			compat.Safari, ver(9), compat.Node, ver(6, 5), compat.IOS, ver(9),
			compat.Samsung, ver(5), compat.Opera, ver(38), compat.Android, ver(51),
			compat.Electron, ver(1, 2)),
	},
	"WeakSet": {
		corejs2: "es6.weak-set", corejs3: "es.weak-set",
		row: prow(compat.Chrome, ver(51), compat.Edge, ver(15), compat.Firefox, ver(53),
			compat.Safari, ver(9), compat.Node, ver(6, 5), compat.IOS, ver(9),
			compat.Samsung, ver(5), compat.Opera, ver(38), compat.Android, ver(51),
			compat.Electron, ver(1, 2)),
	},
	"Promise": {
		corejs2: "es6.promise", corejs3: "es.promise",
		row: prow(compat.Chrome, ver(51), compat.Edge, ver(14), compat.Firefox, ver(45),
			compat.Safari, ver(10), compat.Node, ver(6, 5), compat.IOS, ver(10),
			compat.Samsung, ver(5), compat.Opera, ver(38), compat.Android, ver(51),
			compat.Electron, ver(1, 2)),
	},
	"Symbol": {
		corejs2: "es6.symbol", corejs3: "es.symbol",
		row: prow(compat.Chrome, ver(51), compat.Edge, ver(79), compat.Firefox, ver(51),
			compat.Safari, ver(10), compat.Node, ver(6, 5), compat.IOS, ver(10),
			compat.Samsung, ver(5), compat.Opera, ver(38), compat.Android, ver(51),
			compat.Electron, ver(1, 2)),
	},
}

// staticRules covers static methods accessed off a known global namespace.
var staticRules = map[string]rule{
	"Object.assign": {
		corejs2: "es6.object.assign", corejs3: "es.object.assign",
		row: prow(compat.Chrome, ver(49), compat.Edge, ver(13), compat.Firefox, ver(36),
			compat.Safari, ver(10), compat.Node, ver(6), compat.IOS, ver(10),
			compat.Samsung, ver(5), compat.Opera, ver(36), compat.Android, ver(49),
			compat.Electron, ver(1, 0)),
	},
	"Object.entries": {
		corejs2: "es7.object.entries", corejs3: "es.object.entries",
		row: prow(compat.Chrome, ver(54), compat.Edge, ver(14), compat.Firefox, ver(47),
			compat.Safari, ver(10, 1), compat.Node, ver(7), compat.IOS, ver(10, 3),
			compat.Samsung, ver(6), compat.Opera, ver(41), compat.Android, ver(54),
			compat.Electron, ver(1, 4)),
	},
	"Object.values": {
		corejs2: "es7.object.values", corejs3: "es.object.values",
		row: prow(compat.Chrome, ver(54), compat.Edge, ver(14), compat.Firefox, ver(47),
			compat.Safari, ver(10, 1), compat.Node, ver(7), compat.IOS, ver(10, 3),
			compat.Samsung, ver(6), compat.Opera, ver(41), compat.Android, ver(54),
			compat.Electron, ver(1, 4)),
	},
	"Array.from": {
		corejs2: "es6.array.from", corejs3: "es.array.from",
		row: prow(compat.Chrome, ver(51), compat.Edge, ver(15), compat.Firefox, ver(36),
			compat.Safari, ver(10), compat.Node, ver(6, 5), compat.IOS, ver(10),
			compat.Samsung, ver(5), compat.Opera, ver(38), compat.Android, ver(51),
			compat.Electron, ver(1, 2)),
	},
	"Array.of": {
		corejs2: "es6.array.of", corejs3: "es.array.of",
		row: prow(compat.Chrome, ver(45), compat.Edge, ver(12), compat.Firefox, ver(25),
			compat.Safari, ver(9), compat.Node, ver(4), compat.IOS, ver(9),
			compat.Samsung, ver(5), compat.Opera, ver(32), compat.Android, ver(45),
			compat.Electron, ver(0, 31)),
	},
}

// instanceRules covers property names that look like instance methods. A
// name can map to more than one rule (`includes` is both an Array and a
// String method); every match is injected, which over-approximates the
// same way the original usage plugin does.
var instanceRules = map[string][]rule{
	"includes": {
		{
			corejs2: "es7.array.includes", corejs3: "es.array.includes",
			row: prow(compat.Chrome, ver(47), compat.Edge, ver(14), compat.Firefox, ver(43),
				compat.Safari, ver(10), compat.Node, ver(5), compat.IOS, ver(10),
				compat.Samsung, ver(5), compat.Opera, ver(34), compat.Android, ver(47),
				compat.Electron, ver(0, 36)),
		},
		{
			corejs2: "es6.string.includes", corejs3: "es.string.includes",
			row: prow(compat.Chrome, ver(41), compat.Edge, ver(12), compat.Firefox, ver(40),
				compat.Safari, ver(9), compat.Node, ver(4), compat.IOS, ver(9),
				compat.Samsung, ver(3, 4), compat.Opera, ver(28), compat.Android, ver(41),
				compat.Electron, ver(0, 24)),
		},
	},
	"find": {{
		corejs2: "es6.array.find", corejs3: "es.array.find",
		row: prow(compat.Chrome, ver(45), compat.Edge, ver(12), compat.Firefox, ver(25),
			compat.Safari, ver(8), compat.Node, ver(4), compat.IOS, ver(8),
			compat.Samsung, ver(5), compat.Opera, ver(32), compat.Android, ver(45),
			compat.Electron, ver(0, 31)),
	}},
	"findIndex": {{
		corejs2: "es6.array.find-index", corejs3: "es.array.find-index",
		row: prow(compat.Chrome, ver(45), compat.Edge, ver(12), compat.Firefox, ver(25),
			compat.Safari, ver(8), compat.Node, ver(4), compat.IOS, ver(8),
			compat.Samsung, ver(5), compat.Opera, ver(32), compat.Android, ver(45),
			compat.Electron, ver(0, 31)),
	}},
	"startsWith": {{
		corejs2: "es6.string.starts-with", corejs3: "es.string.starts-with",
		row: prow(compat.Chrome, ver(41), compat.Edge, ver(12), compat.Firefox, ver(40),
			compat.Safari, ver(9), compat.Node, ver(4), compat.IOS, ver(9),
			compat.Samsung, ver(3, 4), compat.Opera, ver(28), compat.Android, ver(41),
			compat.Electron, ver(0, 24)),
	}},
	"endsWith": {{
		corejs2: "es6.string.ends-with", corejs3: "es.string.ends-with",
		row: prow(compat.Chrome, ver(41), compat.Edge, ver(12), compat.Firefox, ver(40),
			compat.Safari, ver(9), compat.Node, ver(4), compat.IOS, ver(9),
			compat.Samsung, ver(3, 4), compat.Opera, ver(28), compat.Android, ver(41),
			compat.Electron, ver(0, 24)),
	}},
	"padStart": {{
		corejs2: "es7.string.pad-start", corejs3: "es.string.pad-start",
		row: prow(compat.Chrome, ver(57), compat.Edge, ver(15), compat.Firefox, ver(48),
			compat.Safari, ver(10), compat.Node, ver(8), compat.IOS, ver(10),
			compat.Samsung, ver(7), compat.Opera, ver(44), compat.Android, ver(57),
			compat.Electron, ver(1, 7)),
	}},
	"padEnd": {{
		corejs2: "es7.string.pad-end", corejs3: "es.string.pad-end",
		row: prow(compat.Chrome, ver(57), compat.Edge, ver(15), compat.Firefox, ver(48),
			compat.Safari, ver(10), compat.Node, ver(8), compat.IOS, ver(10),
			compat.Samsung, ver(7), compat.Opera, ver(44), compat.Android, ver(57),
			compat.Electron, ver(1, 7)),
	}},
}
