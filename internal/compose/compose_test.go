package compose

import (
	"strings"
	"testing"

	"github.com/tscore/tscore/internal/compat"
	"github.com/tscore/tscore/internal/config"
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/logger"
	"github.com/tscore/tscore/internal/semver"
	"github.com/tscore/tscore/internal/testutil"
)

// traceOf composes cfg with a debug trace and returns each stage line as
// "<feature-name>: <true|false>".
func traceOf(t *testing.T, cfg config.Config) map[string]string {
	t.Helper()
	cfg.Debug = true
	log := logger.NewLog()
	Compose(cfg, log)

	out := map[string]string{}
	for _, msg := range log.Done() {
		if msg.ID != logger.MsgID_Compose_StageTrace {
			continue
		}
		name, state, ok := strings.Cut(msg.Data.Text, ": ")
		if !ok {
			t.Fatalf("malformed trace line %q", msg.Data.Text)
		}
		out[name] = state
	}
	return out
}

// P3: composing from the default config leaves every ES2015 default-on
// stage active and every ES2018/ES2017/ES2016/ES3 stage inactive.
func TestDefaultConfigTrace(t *testing.T) {
	trace := traceOf(t, config.Default())
	testutil.AssertEqual(t, len(trace), len(pipelineSpec))
	for _, spec := range pipelineSpec {
		want := "false"
		if spec.feature.DefaultOn() {
			want = "true"
		}
		testutil.AssertEqual(t, trace[spec.feature.String()], want)
	}
}

func TestTraceOrderMatchesPipelineOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Debug = true
	log := logger.NewLog()
	Compose(cfg, log)

	msgs := log.Done()
	testutil.AssertEqual(t, len(msgs), len(pipelineSpec))
	for i, spec := range pipelineSpec {
		if !strings.HasPrefix(msgs[i].Data.Text, spec.feature.String()+": ") {
			t.Fatalf("trace line %d = %q, want stage %s", i, msgs[i].Data.Text, spec.feature)
		}
	}
}

func TestOptionalDisabledIsIdentity(t *testing.T) {
	m := jsast.Module{Stmts: []jsast.Stmt{
		{Data: &jsast.SExpr{Value: jsast.Expr{Data: &jsast.EArrow{Fn: &jsast.Fn{
			ExprBody: &jsast.Expr{Data: &jsast.ENumber{Value: 1}},
		}}}}},
	}}
	out := Optional(arrowFunctionsRewriter{}, false).Apply(m)
	testutil.AssertDeepEqual(t, out, m)
}

// End-to-end scenario 1: chrome 70 supports everything in the pipeline
// natively, so an async function passes through byte-identical.
func TestChrome70LeavesAsyncFunctionAlone(t *testing.T) {
	cfg := config.Default()
	cfg.Versions = compat.NoTargets.Set(compat.Chrome, semver.Semver{Parts: []int{70}})

	trace := traceOf(t, cfg)
	testutil.AssertEqual(t, trace["async-to-generator"], "false")
	testutil.AssertEqual(t, trace["classes"], "false")
	testutil.AssertEqual(t, trace["block-scoping"], "false")

	name := "f"
	m := jsast.Module{Stmts: []jsast.Stmt{
		{Data: &jsast.SFunction{Fn: &jsast.Fn{Name: &name, IsAsync: true}}},
	}}
	out := Compose(cfg, logger.NewLog()).Apply(m)
	testutil.AssertDeepEqual(t, out, m)
}

// End-to-end scenario 2: under the default config ArrowFunctions is
// enabled, and "const f = (x) => x*2" becomes a var declaration holding a
// traditional function expression with the parameter and body preserved.
func TestDefaultConfigLowersArrow(t *testing.T) {
	body := jsast.Expr{Data: &jsast.EBinary{
		Op:    jsast.BinMul,
		Left:  jsast.Expr{Data: &jsast.EIdentifier{Name: "x"}},
		Right: jsast.Expr{Data: &jsast.ENumber{Value: 2}},
	}}
	arrow := jsast.Expr{Data: &jsast.EArrow{Fn: &jsast.Fn{
		Params:   []jsast.Param{{Binding: jsast.Binding{Kind: jsast.BIdentifier, Name: "x"}}},
		ExprBody: &body,
	}}}
	m := jsast.Module{Stmts: []jsast.Stmt{
		{Data: &jsast.SVarDecl{Kind: jsast.VarConst, Decls: []jsast.Decl{{
			Binding: jsast.Binding{Kind: jsast.BIdentifier, Name: "f"},
			Value:   &arrow,
		}}}},
	}}

	out := Compose(config.Default(), logger.NewLog()).Apply(m)

	decl, ok := out.Stmts[0].Data.(*jsast.SVarDecl)
	if !ok {
		t.Fatalf("expected var declaration, got %T", out.Stmts[0].Data)
	}
	testutil.AssertEqual(t, decl.Kind, jsast.VarVar)

	fn, ok := decl.Decls[0].Value.Data.(*jsast.EFunction)
	if !ok {
		t.Fatalf("expected function expression, got %T", decl.Decls[0].Value.Data)
	}
	testutil.AssertEqual(t, len(fn.Fn.Params), 1)
	testutil.AssertEqual(t, fn.Fn.Params[0].Binding.Name, "x")
	if len(fn.Fn.Body) != 1 {
		t.Fatalf("expected single-return body, got %d statements", len(fn.Fn.Body))
	}
	ret, ok := fn.Fn.Body[0].Data.(*jsast.SReturn)
	if !ok || ret.Value == nil {
		t.Fatalf("expected return statement with a value, got %+v", fn.Fn.Body[0].Data)
	}
	if _, ok := ret.Value.Data.(*jsast.EBinary); !ok {
		t.Fatalf("expected binary expression body, got %T", ret.Value.Data)
	}
}
