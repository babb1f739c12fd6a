package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := Default()
	if c.CoreJS != 2 {
		t.Fatalf("expected default core-js 2, got %d", c.CoreJS)
	}
	if !c.Versions.IsEmpty() {
		t.Fatalf("expected no default targets")
	}
	if c.Mode != ModeNone {
		t.Fatalf("expected default mode none, got %s", c.Mode)
	}
}

func TestParseJSONCoreJSNormalization(t *testing.T) {
	c, err := ParseJSON([]byte(`{"mode":"usage"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.CoreJS != 2 {
		t.Fatalf("expected coreJs 0 to normalize to 2, got %d", c.CoreJS)
	}
	if c.Mode != ModeUsage {
		t.Fatalf("expected usage mode, got %s", c.Mode)
	}
}

func TestParseJSONUnknownPlatformRejected(t *testing.T) {
	_, err := ParseJSON([]byte(`{"versions":{"commodore64":"1.0"}}`))
	if err == nil {
		t.Fatalf("expected an error for an unknown platform key")
	}
}

func TestParseYAMLEquivalentToJSON(t *testing.T) {
	yamlDoc := []byte("mode: usage\ncoreJs: 3\nversions:\n  chrome: \"90\"\n")
	jsonDoc := []byte(`{"mode":"usage","coreJs":3,"versions":{"chrome":"90"}}`)

	fromYAML, err := ParseYAML(yamlDoc)
	if err != nil {
		t.Fatalf("unexpected yaml error: %v", err)
	}
	fromJSON, err := ParseJSON(jsonDoc)
	if err != nil {
		t.Fatalf("unexpected json error: %v", err)
	}
	if fromYAML.Mode != fromJSON.Mode || fromYAML.CoreJS != fromJSON.CoreJS {
		t.Fatalf("yaml and json decoding diverged: %+v vs %+v", fromYAML, fromJSON)
	}
}

func TestParseJSONInvalidCoreJS(t *testing.T) {
	_, err := ParseJSON([]byte(`{"coreJs":4}`))
	if err == nil {
		t.Fatalf("expected an error for coreJs outside {2,3}")
	}
}

func TestParseJSONInvalidMode(t *testing.T) {
	_, err := ParseJSON([]byte(`{"mode":"bogus"}`))
	if err == nil {
		t.Fatalf("expected an error for an unrecognized mode")
	}
}
