// Copyright © 2026 The ringlisp authors

package cmd

import (
	"fmt"
	"os"

	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt := lisp.NewRuntime(
			lisp.WithReader(parser.NewReader()),
			lisp.WithHeapCells(heapCells()),
		)
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i := range args {
			val, err := rt.EvalString(args[i], string(exprs[i]))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if rt.Heap.IsKind(val, lisp.KindError) || rt.Heap.IsKind(val, lisp.KindStale) {
				renderLispError(rt, val)
				os.Exit(1)
			}
			if runPrint {
				fmt.Println(rt.Sprint(val))
			}
		}
	},
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path) //#nosec G304
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
