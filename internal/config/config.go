// Package config decodes the external configuration document (§6) into the
// Config value consumed by the pass composer and polyfill injector, the way
// esbuild's pkg/api converts BuildOptions into internal/config.Options
// (see api_impl.go's engine-list conversion).
package config

import (
	"fmt"
	"sort"

	"github.com/tscore/tscore/internal/compat"
)

// Mode selects how the polyfill injector behaves (§3, §4.3).
type Mode uint8

const (
	ModeNone Mode = iota
	ModeUsage
	ModeEntry
)

func (m Mode) String() string {
	switch m {
	case ModeUsage:
		return "usage"
	case ModeEntry:
		return "entry"
	default:
		return "none"
	}
}

func parseMode(s string) (Mode, error) {
	switch s {
	case "", "none":
		return ModeNone, nil
	case "usage":
		return ModeUsage, nil
	case "entry":
		return ModeEntry, nil
	default:
		return ModeNone, fmt.Errorf("config: unknown mode %q (want \"usage\", \"entry\", or \"none\")", s)
	}
}

// Config is the resolved, in-memory configuration the rest of the core
// consumes. It is constructed once per compile job and never mutated
// afterward (§5 lifecycle).
type Config struct {
	Mode          Mode
	Debug         bool
	DynamicImport bool
	Loose         bool
	Skip          map[string]bool
	CoreJS        int
	Versions      compat.TargetVersions
}

// Default matches esbuild's zero-value BuildOptions in spirit: no targets
// configured, core-js 2, every flag off. Per P3, composing from Default
// leaves every ES2015 stage active and everything else inactive.
func Default() Config {
	return Config{
		Mode:     ModeNone,
		CoreJS:   2,
		Skip:     map[string]bool{},
		Versions: compat.NoTargets,
	}
}

// SkipSorted returns the skip set as a sorted slice, for deterministic debug
// output.
func (c Config) SkipSorted() []string {
	out := make([]string, 0, len(c.Skip))
	for k := range c.Skip {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
