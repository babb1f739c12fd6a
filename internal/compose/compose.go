// Package compose implements C2, the pass composer: given a Config and the
// feature matrix (internal/compat), it produces a single deterministic
// Rewriter that applies every enabled lowering to a module in the fixed
// order from §4.1, then appends the polyfill injector as a final stage.
//
// The shape follows esbuild's own "everything is a tree transform" style
// (internal/js_parser/js_parser_lower.go) but makes the optionality explicit
// as a composition of small Rewriter values instead of scattering
// p.options.unsupportedJSFeatures.Has(...) checks through one big visitor.
package compose

import (
	"fmt"

	"github.com/tscore/tscore/internal/compat"
	"github.com/tscore/tscore/internal/config"
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/logger"
	"github.com/tscore/tscore/internal/polyfill"
)

// Rewriter is the uniform abstraction every lowering stage and the polyfill
// injector implement: a module in, a (possibly mutated in place) module out.
type Rewriter interface {
	Apply(m jsast.Module) jsast.Module
}

// RewriterFunc adapts a plain function to a Rewriter, the same trick
// http.HandlerFunc uses for http.Handler.
type RewriterFunc func(jsast.Module) jsast.Module

func (f RewriterFunc) Apply(m jsast.Module) jsast.Module { return f(m) }

// identity is the Rewriter for a disabled stage: Optional returns this
// instead of running stage.Apply at all.
var identity Rewriter = RewriterFunc(func(m jsast.Module) jsast.Module { return m })

// Optional wraps stage so it only runs when enabled, per §4.1: "Each stage
// is wrapped as Optional(stage, enabled); a disabled stage is an identity
// rewriter."
func Optional(stage Rewriter, enabled bool) Rewriter {
	if !enabled {
		return identity
	}
	return stage
}

// Pipeline is an ordered composition of Rewriters, applied in sequence.
type Pipeline []Rewriter

func (p Pipeline) Apply(m jsast.Module) jsast.Module {
	for _, r := range p {
		m = r.Apply(m)
	}
	return m
}

// stageSpec pairs a feature with the builder for its Rewriter. The
// ECMAScript edition of each stage appears only as a comment in
// pipelineSpec; the debug trace prints feature.String().
type stageSpec struct {
	feature compat.Feature
	build   func(cfg config.Config) Rewriter
}

// pipelineSpec is the fixed stage order from §4.1: "newer features first,
// because several lowerings produce constructs that earlier ones would
// reprocess (e.g. arrow -> function, then parameters -> ES5 parameters)."
var pipelineSpec = []stageSpec{
	// ES2018
	{compat.ObjectRestSpread, func(cfg config.Config) Rewriter { return objectRestSpreadRewriter{} }},
	{compat.OptionalCatchBinding, func(cfg config.Config) Rewriter { return optionalCatchBindingRewriter{} }},

	// ES2017
	{compat.AsyncToGenerator, func(cfg config.Config) Rewriter { return asyncToGeneratorRewriter{} }},

	// ES2016
	{compat.ExponentiationOperator, func(cfg config.Config) Rewriter { return exponentiationRewriter{} }},

	// ES2015
	{compat.BlockScopedFunctions, func(cfg config.Config) Rewriter { return blockScopedFunctionsRewriter{} }},
	{compat.TemplateLiterals, func(cfg config.Config) Rewriter { return templateLiteralsRewriter{} }},
	{compat.Classes, func(cfg config.Config) Rewriter { return classesRewriter{} }},
	{compat.Spread, func(cfg config.Config) Rewriter { return spreadRewriter{loose: cfg.Loose} }},
	{compat.FunctionName, func(cfg config.Config) Rewriter { return functionNameRewriter{} }},
	{compat.ArrowFunctions, func(cfg config.Config) Rewriter { return arrowFunctionsRewriter{} }},
	{compat.DuplicateKeys, func(cfg config.Config) Rewriter { return duplicateKeysRewriter{} }},
	{compat.StickyRegex, func(cfg config.Config) Rewriter { return stickyRegexRewriter{} }},
	{compat.TypeOfSymbol, func(cfg config.Config) Rewriter { return typeOfSymbolRewriter{} }},
	{compat.ShorthandProperties, func(cfg config.Config) Rewriter { return shorthandPropertiesRewriter{} }},
	{compat.Parameters, func(cfg config.Config) Rewriter { return parametersRewriter{} }},
	{compat.ForOf, func(cfg config.Config) Rewriter { return forOfRewriter{assumeArray: cfg.Loose} }},
	{compat.ComputedProperties, func(cfg config.Config) Rewriter { return computedPropertiesRewriter{} }},
	{compat.Destructuring, func(cfg config.Config) Rewriter { return destructuringRewriter{loose: cfg.Loose} }},
	{compat.BlockScoping, func(cfg config.Config) Rewriter { return blockScopingRewriter{} }},

	// ES3
	{compat.PropertyLiterals, func(cfg config.Config) Rewriter { return propertyLiteralsRewriter{} }},
	{compat.MemberExpressionLiterals, func(cfg config.Config) Rewriter { return memberExpressionLiteralsRewriter{} }},
	{compat.ReservedWords, func(cfg config.Config) Rewriter { return reservedWordsRewriter{preserveImport: cfg.DynamicImport} }},
}

// Compose implements the C2 contract: compose(config) -> Rewriter. log may
// be the zero logger.Log{} when the caller doesn't want a debug trace; if
// cfg.Debug is set and log is non-zero, one line per stage is recorded via
// log.AddDebug, in pipeline order, matching "<feature-name>: <true|false>".
func Compose(cfg config.Config, log logger.Log) Rewriter {
	pipeline := make(Pipeline, 0, len(pipelineSpec)+1)

	for _, spec := range pipelineSpec {
		enabled := compat.ShouldEnable(spec.feature, cfg.Versions, spec.feature.DefaultOn())
		if cfg.Debug {
			log.AddDebug(fmt.Sprintf("%s: %v", spec.feature.String(), enabled))
		}
		pipeline = append(pipeline, Optional(spec.build(cfg), enabled))
	}

	pipeline = append(pipeline, polyfillStage{cfg: cfg, log: log})

	return pipeline
}

// polyfillStage adapts polyfill.Inject (C4) to the Rewriter interface so it
// can sit as the pipeline's final stage, per §4.1's "Polyfill Injector" line
// and §2's "Appends a Polyfill Injector as the final stage."
type polyfillStage struct {
	cfg config.Config
	log logger.Log
}

func (s polyfillStage) Apply(m jsast.Module) jsast.Module {
	out, err := polyfill.Inject(m, s.cfg)
	if err != nil {
		s.log.AddErrorID(logger.MsgID_Polyfill_ScriptUnsupported, logger.Loc{}, err.Error())
		return m
	}
	return out
}
