package typeanalyzer

// Lib enumerates the builtin type libraries the analyzer may consult for an
// unresolved identifier (the "libs" field of the analyzer context).
type Lib uint8

const (
	LibES5 Lib = iota
	LibES2015
	LibDOM
)

// Frame is one lexical scope: a block, function body, or the module top
// level. Vars holds declared variable/parameter types; Aliases holds type
// aliases and enum declarations reachable from this frame outward.
type Frame struct {
	Vars    map[string]Type
	Aliases map[string]Type

	// Enums names identifiers in this frame that were declared as enums,
	// consulted by the member-access special case in §9 ("enum-in-member").
	Enums map[string]bool
}

func NewFrame() *Frame {
	return &Frame{
		Vars:    map[string]Type{},
		Aliases: map[string]Type{},
		Enums:   map[string]bool{},
	}
}

// Scope is a stack of lexical Frames, innermost last, mirroring how a
// parser pushes a frame per block/function and pops it on scope exit.
type Scope struct {
	Frames []*Frame
}

func NewScope() *Scope {
	return &Scope{Frames: []*Frame{NewFrame()}}
}

// Push returns a new Scope with an additional innermost frame. The
// underlying frame slice is not shared with the caller's Scope so nested
// lookups never see siblings' declarations.
func (s *Scope) Push() *Scope {
	frames := make([]*Frame, len(s.Frames)+1)
	copy(frames, s.Frames)
	frames[len(frames)-1] = NewFrame()
	return &Scope{Frames: frames}
}

// Innermost returns the frame new declarations in the current block go into.
func (s *Scope) Innermost() *Frame {
	return s.Frames[len(s.Frames)-1]
}

// FindVarType looks up an identifier's declared type, searching from the
// innermost frame outward.
func (s *Scope) FindVarType(name string) (Type, bool) {
	for i := len(s.Frames) - 1; i >= 0; i-- {
		if t, ok := s.Frames[i].Vars[name]; ok {
			return t, true
		}
	}
	return Type{}, false
}

// FindType looks up a type alias (or enum declaration's synthesized type),
// searching from the innermost frame outward.
func (s *Scope) FindType(name string) (Type, bool) {
	for i := len(s.Frames) - 1; i >= 0; i-- {
		if t, ok := s.Frames[i].Aliases[name]; ok {
			return t, true
		}
	}
	return Type{}, false
}

// IsEnum reports whether name was declared as an enum anywhere in scope.
func (s *Scope) IsEnum(name string) bool {
	for i := len(s.Frames) - 1; i >= 0; i-- {
		if s.Frames[i].Enums[name] {
			return true
		}
	}
	return false
}

// Declare records name's variable type in the innermost frame.
func (s *Scope) Declare(name string, t Type) {
	s.Innermost().Vars[name] = t
}

// DeclareAlias records a type alias in the innermost frame.
func (s *Scope) DeclareAlias(name string, t Type) {
	s.Innermost().Aliases[name] = t
}

// DeclareEnum records an enum declaration's name, with its synthesized
// member type available for expand() to resolve TypeRefs against it.
func (s *Scope) DeclareEnum(name string, t Type) {
	s.Innermost().Enums[name] = true
	s.Innermost().Aliases[name] = t
}

// Context is borrowed for the lifetime of one TypeOf call (§3). It has no
// mutable state of its own; Scope is a persistent (copy-on-push) structure
// so the analyzer never mutates a caller's view of an outer scope.
type Context struct {
	Scope            *Scope
	ResolvedImports  map[string]Type
	Libs             []Lib
	Path             string
}

func NewContext(path string) *Context {
	return &Context{
		Scope:           NewScope(),
		ResolvedImports: map[string]Type{},
		Libs:            []Lib{LibES5, LibES2015},
		Path:            path,
	}
}
