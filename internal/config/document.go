package config

import (
	"encoding/json"
	"fmt"

	"github.com/tscore/tscore/internal/compat"
	"github.com/tscore/tscore/internal/semver"
	"gopkg.in/yaml.v3"
)

// document is the external, camelCased wire shape described in §6. Unknown
// keys here (outside of Versions) are tolerated, matching "unknown keys
// elsewhere are ignored". The Versions sub-document (BrowserData) is
// validated separately with unknown-key rejection, since a map can't lean on
// struct-tag-based unknown-field rejection.
type document struct {
	Mode          string            `json:"mode" yaml:"mode"`
	Debug         bool              `json:"debug" yaml:"debug"`
	DynamicImport bool              `json:"dynamicImport" yaml:"dynamicImport"`
	Loose         bool              `json:"loose" yaml:"loose"`
	Skip          []string          `json:"skip" yaml:"skip"`
	CoreJS        int               `json:"coreJs" yaml:"coreJs"`
	Versions      map[string]string `json:"versions" yaml:"versions"`
}

// ParseJSON decodes a JSON configuration document into a Config.
func ParseJSON(data []byte) (Config, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("config: invalid json: %w", err)
	}
	return doc.resolve()
}

// ParseYAML decodes a YAML configuration document into a Config. Wired in
// alongside the JSON path because this repository's lineage of example
// projects routinely accepts either format for structured config (see
// SPEC_FULL.md §10.3).
func ParseYAML(data []byte) (Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("config: invalid yaml: %w", err)
	}
	return doc.resolve()
}

func (doc document) resolve() (Config, error) {
	mode, err := parseMode(doc.Mode)
	if err != nil {
		return Config{}, err
	}

	coreJS := doc.CoreJS
	if coreJS == 0 {
		coreJS = 2
	}
	if coreJS != 2 && coreJS != 3 {
		return Config{}, fmt.Errorf("config: coreJs must be 2 or 3, got %d", coreJS)
	}

	skip := map[string]bool{}
	for _, s := range doc.Skip {
		skip[s] = true
	}

	var versions compat.TargetVersions
	for name, raw := range doc.Versions {
		p, ok := compat.ParsePlatform(name)
		if !ok {
			return Config{}, fmt.Errorf("config: unknown platform %q in versions", name)
		}
		versions = versions.Set(p, semver.Parse(raw))
	}

	return Config{
		Mode:          mode,
		Debug:         doc.Debug,
		DynamicImport: doc.DynamicImport,
		Loose:         doc.Loose,
		Skip:          skip,
		CoreJS:        coreJS,
		Versions:      versions,
	}, nil
}
