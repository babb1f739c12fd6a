package jsast

// Module is the root of the AST the composer rewrites and the analyzer
// reads expressions out of. IsScript distinguishes a classic script (no
// import/export, `this` is the global object) from an ES module; §4.3 uses
// it to refuse automatic polyfill injection on scripts.
type Module struct {
	Stmts    []Stmt
	IsScript bool
}
