// Command tscore is a thin driver over the core packages, for poking at
// them by hand: it is not part of the specified contract. `tscore compose`
// prints the composer's stage trace for a config file; `tscore typeof`
// runs the type analyzer over a small built-in fixture scope.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tscore/tscore/internal/compile"
	"github.com/tscore/tscore/internal/config"
	"github.com/tscore/tscore/internal/jsast"
	"github.com/tscore/tscore/internal/typeanalyzer"
)

func main() {
	root := &cobra.Command{
		Use:           "tscore",
		Short:         "drive the pass composer and type analyzer by hand",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newComposeCmd(), newTypeofCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tscore:", err)
		os.Exit(1)
	}
}

func newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose <config.json|config.yaml>",
		Short: "compose a pipeline from a config file and print its stage trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}
			cfg.Debug = true

			job := compile.New(cfg)
			fmt.Fprintf(cmd.OutOrStdout(), "job %s\n", job.ID)
			for _, msg := range job.Messages() {
				fmt.Fprintln(cmd.OutOrStdout(), msg.Data.Text)
			}
			return nil
		},
	}
}

func loadConfig(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return config.ParseYAML(data)
	default:
		return config.ParseJSON(data)
	}
}

func newTypeofCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typeof",
		Short: "run the analyzer over a built-in fixture scope and print each result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := typeanalyzer.NewContext("<fixture>")
			ctx.Scope.Declare("n", typeanalyzer.NumberType())
			ctx.Scope.DeclareEnum("Color", typeanalyzer.NewEnum("Color"))

			fixtures := []struct {
				source string
				expr   jsast.Expr
			}{
				{`typeof 42 === "number"`, jsast.Expr{Data: &jsast.EBinary{
					Op: jsast.BinStrictEq,
					Left: jsast.Expr{Data: &jsast.EUnary{
						Op: jsast.UnTypeof, Value: jsast.Expr{Data: &jsast.ENumber{Value: 42}},
					}},
					Right: jsast.Expr{Data: &jsast.EString{Value: "number"}},
				}}},
				{`[1, "a", 1]`, jsast.Expr{Data: &jsast.EArray{Items: []jsast.Expr{
					{Data: &jsast.ENumber{Value: 1}},
					{Data: &jsast.EString{Value: "a"}},
					{Data: &jsast.ENumber{Value: 1}},
				}}}},
				{`!n`, jsast.Expr{Data: &jsast.EUnary{
					Op: jsast.UnNot, Value: jsast.Expr{Data: &jsast.EIdentifier{Name: "n"}},
				}}},
				{`Color.Red`, jsast.Expr{Data: &jsast.EMember{
					Obj: jsast.Expr{Data: &jsast.EIdentifier{Name: "Color"}}, Prop: "Red",
				}}},
				{`missing`, jsast.Expr{Data: &jsast.EIdentifier{Name: "missing"}}},
			}

			for _, f := range fixtures {
				t, err := typeanalyzer.TypeOf(ctx, f.expr)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%-22s error: %s (%s)\n", f.source, err.Error(), err.Kind)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", f.source, formatType(t))
			}
			return nil
		},
	}
}

func formatType(t typeanalyzer.Type) string {
	switch t.Kind {
	case typeanalyzer.KindArray:
		return "Array<" + formatType(*t.Elem) + ">"
	case typeanalyzer.KindUnion:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = formatType(m)
		}
		return strings.Join(parts, " | ")
	case typeanalyzer.KindEnum:
		return "enum " + t.EnumRef
	default:
		return formatTsType(t.TsType)
	}
}

func formatTsType(ts jsast.TsType) string {
	switch data := ts.Data.(type) {
	case *jsast.TKeyword:
		return data.Kind.String()
	case *jsast.TLit:
		switch data.Kind {
		case jsast.LitBool:
			return fmt.Sprintf("%v", data.Bool)
		case jsast.LitNum:
			return fmt.Sprintf("%v", data.Num)
		default:
			return fmt.Sprintf("%q", data.Str)
		}
	case *jsast.TTypeRef:
		return strings.Join(data.Name, ".")
	case *jsast.TTypeLit:
		return fmt.Sprintf("{ %d members }", len(data.Members))
	case *jsast.TFnType:
		return fmt.Sprintf("(%d params) => %s", len(data.Params), formatTsType(data.ReturnType))
	case *jsast.TConstructorType:
		return fmt.Sprintf("new (%d params) => %s", len(data.Params), formatTsType(data.ReturnType))
	case *jsast.TIndexedAccess:
		return formatTsType(data.Obj) + "[" + formatTsType(data.Index) + "]"
	case *jsast.TTypeQuery:
		return "typeof " + strings.Join(data.Name, ".")
	default:
		return "<unknown>"
	}
}
