package compat

import (
	"testing"

	"github.com/tscore/tscore/internal/semver"
)

// These tests mirror the table-driven style of esbuild's internal/compat
// compat_test.go: build a small scenario, assert the single boolean result.
func TestShouldEnableNoTargets(t *testing.T) {
	// P1: for any feature and empty targets, ShouldEnable == defaultOn.
	for f := Feature(0); f < numFeatures; f++ {
		for _, def := range []bool{true, false} {
			if got := ShouldEnable(f, NoTargets, def); got != def {
				t.Fatalf("%s: ShouldEnable(_, NoTargets, %v) = %v, want %v", f, def, got, def)
			}
		}
	}
}

func TestShouldEnableSupportedTarget(t *testing.T) {
	// P2: a single targeted platform whose version is >= the feature's row
	// version disables the feature, regardless of defaultOn.
	targets := NoTargets.Set(Chrome, semver.Semver{Parts: []int{90}})
	if ShouldEnable(ArrowFunctions, targets, true) {
		t.Fatalf("expected ArrowFunctions disabled for chrome 90")
	}
}

func TestShouldEnableUnsupportedTarget(t *testing.T) {
	targets := NoTargets.Set(Chrome, semver.Semver{Parts: []int{30}})
	if !ShouldEnable(ArrowFunctions, targets, true) {
		t.Fatalf("expected ArrowFunctions enabled for chrome 30")
	}
}

func TestShouldEnableNeverShipped(t *testing.T) {
	// IE never shipped arrow functions natively (no row entry): targeting any
	// IE version must enable the lowering.
	targets := NoTargets.Set(IE, semver.Semver{Parts: []int{11}})
	if !ShouldEnable(ArrowFunctions, targets, true) {
		t.Fatalf("expected ArrowFunctions enabled when targeting ie (never shipped)")
	}
}

func TestShouldEnableMultiplePlatformsOneFails(t *testing.T) {
	targets := NoTargets.Set(Chrome, semver.Semver{Parts: []int{90}})
	targets = targets.Set(Safari, semver.Semver{Parts: []int{9}})
	if !ShouldEnable(Classes, targets, true) {
		t.Fatalf("expected Classes enabled: safari 9 predates classes support")
	}
}

func TestEveryFeatureHasAStringName(t *testing.T) {
	for f := Feature(0); f < numFeatures; f++ {
		if f.String() == "unknown-feature" {
			t.Fatalf("feature %d has no name", f)
		}
	}
}
