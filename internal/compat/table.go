package compat

import "github.com/tscore/tscore/internal/semver"

// FeatureRow is the per-platform minimum version at which a feature ships
// natively; a nil entry means the platform never shipped it. This is the
// "feature row" from the glossary.
type FeatureRow [numPlatforms]*semver.Semver

func ver(parts ...int) *semver.Semver {
	return &semver.Semver{Parts: parts}
}

// row builds a FeatureRow from a sparse set of (platform, version) pairs.
// Platforms not mentioned are left unsupported (nil).
func row(pairs ...interface{}) FeatureRow {
	var r FeatureRow
	for i := 0; i+1 < len(pairs); i += 2 {
		p := pairs[i].(Platform)
		v := pairs[i+1].(*semver.Semver)
		r[p] = v
	}
	return r
}

// table is the static feature-compatibility matrix (C1). It is constructed
// once and never mutated; ShouldEnable, Feature.Row and Feature.Supported
// read it.
var table = map[Feature]FeatureRow{
	ObjectRestSpread: row(
		Chrome, ver(60), Edge, ver(79), Firefox, ver(55), Safari, ver(11, 1),
		Node, ver(8, 3), IOS, ver(11, 3), Samsung, ver(8), Opera, ver(47),
		Android, ver(60), Electron, ver(2, 0),
	),
	OptionalCatchBinding: row(
		Chrome, ver(66), Edge, ver(79), Firefox, ver(58), Safari, ver(11, 1),
		Node, ver(10), IOS, ver(11, 3), Samsung, ver(9), Opera, ver(53),
		Android, ver(66), Electron, ver(3, 0),
	),
	AsyncToGenerator: row(
		Chrome, ver(55), Edge, ver(15), Firefox, ver(52), Safari, ver(11),
		Node, ver(7, 6), IOS, ver(11), Samsung, ver(6), Opera, ver(42),
		Android, ver(55), Electron, ver(1, 6),
	),
	ExponentiationOperator: row(
		Chrome, ver(52), Edge, ver(14), Firefox, ver(52), Safari, ver(10, 1),
		Node, ver(7), IOS, ver(10, 3), Samsung, ver(6), Opera, ver(39),
		Android, ver(52), Electron, ver(1, 3),
	),
	BlockScopedFunctions: row(
		Chrome, ver(41), Edge, ver(12), Firefox, ver(46), Safari, ver(10),
		Node, ver(4), IE, ver(11), IOS, ver(10), Samsung, ver(3, 4),
		Opera, ver(28), Android, ver(41), Electron, ver(0, 24),
	),
	TemplateLiterals: row(
		Chrome, ver(41), Edge, ver(13), Firefox, ver(34), Safari, ver(9),
		Node, ver(4), IOS, ver(9), Samsung, ver(3, 4), Opera, ver(28),
		Android, ver(41), Electron, ver(0, 24),
	),
	Classes: row(
		Chrome, ver(49), Edge, ver(13), Firefox, ver(45), Safari, ver(10),
		Node, ver(6), IOS, ver(9), Samsung, ver(5), Opera, ver(36),
		Android, ver(49), Electron, ver(1, 0),
	),
	Spread: row(
		Chrome, ver(46), Edge, ver(13), Firefox, ver(36), Safari, ver(10),
		Node, ver(5), IOS, ver(10), Samsung, ver(5), Opera, ver(33),
		Android, ver(46), Electron, ver(0, 36),
	),
	FunctionName: row(
		Chrome, ver(51), Edge, ver(79), Firefox, ver(53), Safari, ver(10),
		Node, ver(6, 5), IOS, ver(10), Samsung, ver(5), Opera, ver(38),
		Android, ver(51), Electron, ver(1, 2),
	),
	ArrowFunctions: row(
		Chrome, ver(49), Edge, ver(13), Firefox, ver(45), Safari, ver(10),
		Node, ver(6), IOS, ver(10), Samsung, ver(5), Opera, ver(36),
		Android, ver(49), Electron, ver(1, 0),
	),
	DuplicateKeys: row(
		Chrome, ver(42), Edge, ver(12), Firefox, ver(34), Safari, ver(9),
		Node, ver(4), IOS, ver(9), Samsung, ver(3, 4), Opera, ver(29),
		Android, ver(42), Electron, ver(0, 27),
	),
	StickyRegex: row(
		Chrome, ver(49), Edge, ver(13), Firefox, ver(3), Safari, ver(10),
		Node, ver(6), IOS, ver(10), Samsung, ver(5), Opera, ver(36),
		Android, ver(49), Electron, ver(1, 0),
	),
	TypeOfSymbol: row(
		Chrome, ver(38), Edge, ver(12), Firefox, ver(36), Safari, ver(9),
		Node, ver(0, 12), IOS, ver(9), Samsung, ver(3), Opera, ver(25),
		Android, ver(38), Electron, ver(0, 20),
	),
	ShorthandProperties: row(
		Chrome, ver(43), Edge, ver(12), Firefox, ver(33), Safari, ver(9),
		Node, ver(4), IOS, ver(9), Samsung, ver(4), Opera, ver(30),
		Android, ver(43), Electron, ver(0, 28),
	),
	Parameters: row(
		Chrome, ver(49), Edge, ver(14), Firefox, ver(53), Safari, ver(10),
		Node, ver(6), IOS, ver(10), Samsung, ver(5), Opera, ver(36),
		Android, ver(49), Electron, ver(1, 0),
	),
	ForOf: row(
		Chrome, ver(51), Edge, ver(13), Firefox, ver(53), Safari, ver(10),
		Node, ver(6, 5), IOS, ver(10), Samsung, ver(5), Opera, ver(38),
		Android, ver(51), Electron, ver(1, 2),
	),
	ComputedProperties: row(
		Chrome, ver(44), Edge, ver(12), Firefox, ver(34), Safari, ver(7, 1),
		Node, ver(4), IOS, ver(8), Samsung, ver(4), Opera, ver(31),
		Android, ver(44), Electron, ver(0, 30),
	),
	Destructuring: row(
		Chrome, ver(51), Edge, ver(18), Firefox, ver(53), Safari, ver(10),
		Node, ver(6, 5), IOS, ver(10), Samsung, ver(5), Opera, ver(38),
		Android, ver(51), Electron, ver(1, 2),
	),
	BlockScoping: row(
		Chrome, ver(49), Edge, ver(14), Firefox, ver(51), Safari, ver(11),
		Node, ver(6), IOS, ver(11), Samsung, ver(5), Opera, ver(36),
		Android, ver(49), Electron, ver(1, 0),
	),
	PropertyLiterals: row(
		Chrome, ver(7), Edge, ver(12), Firefox, ver(2), Safari, ver(5, 1),
		Node, ver(0, 10), IE, ver(9), IOS, ver(6), Samsung, ver(1),
		Opera, ver(12), Android, ver(4), Electron, ver(0, 20),
	),
	MemberExpressionLiterals: row(
		Chrome, ver(7), Edge, ver(12), Firefox, ver(2), Safari, ver(5, 1),
		Node, ver(0, 10), IE, ver(9), IOS, ver(6), Samsung, ver(1),
		Opera, ver(12), Android, ver(4), Electron, ver(0, 20),
	),
	ReservedWords: row(
		Chrome, ver(13), Edge, ver(12), Firefox, ver(2), Safari, ver(3, 1),
		Node, ver(0, 10), IE, ver(9), IOS, ver(6), Samsung, ver(1),
		Opera, ver(10, 5), Android, ver(4, 4), Electron, ver(0, 20),
	),
}
