package typeanalyzer

import "github.com/tscore/tscore/internal/jsast"

// builtinGenerics are recognized by name so expand() doesn't treat them as
// an unresolved reference, but per §4.2 they are not expanded to their
// structural definition in this core.
var builtinGenerics = map[string]bool{
	"Record": true, "Readonly": true, "ReadonlyArray": true, "ReturnType": true,
	"Partial": true, "Required": true, "NonNullable": true, "Pick": true,
	"Extract": true, "Exclude": true,
}

// builtinGlobals is the minimal set of ambient global identifiers the
// analyzer resolves directly, standing in for a full DOM/ES lib declaration
// file (out of scope per §1 — "the module resolver and file I/O").
var builtinGlobals = map[string]func() Type{
	"console": func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Console"}}}) },
	"Math":    func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Math"}}}) },
	"JSON":    func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"JSON"}}}) },
	"Promise": func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Promise"}}}) },
	"Array":   func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Array"}}}) },
	"Object":  func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Object"}}}) },
	"Map":     func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Map"}}}) },
	"Set":     func() Type { return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"Set"}}}) },
}

// builtinTypes looks name up in the libraries enumerated by libs. Which
// libs are present doesn't change *what* is found in this simplified core
// (the lib list exists for the contract, not yet for per-lib filtering) but
// an empty libs list never resolves anything, matching "consult" being
// conditioned on libs actually being configured.
func builtinTypes(libs []Lib, name string) (Type, bool) {
	if len(libs) == 0 {
		return Type{}, false
	}
	if ctor, ok := builtinGlobals[name]; ok {
		return ctor(), true
	}
	return Type{}, false
}

// regExpType is the type reference produced for a regex literal (§4.2).
func regExpType() Type {
	return Simple(jsast.TsType{Data: &jsast.TTypeRef{Name: []string{"RegExp"}}})
}
