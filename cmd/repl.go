// Copyright © 2026 The ringlisp authors

package cmd

import (
	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser"
	"github.com/luthersystems/ringlisp/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive ringlisp REPL",
	Long: `Start an interactive read-eval-print loop.

Line editing and command history (kept in ~/.ringlisp_history) are
supported via readline.
Use Ctrl-D to exit.  Heap wraps print a "... generation: N" line as they
happen.

Example REPL session:
  > (+ 1 2)
  3
  > (defun square (x) (* x x))
  square
  > (square 5)
  25
  > (setq t 1)
  <error: t is immutable>`,
	Run: func(cmd *cobra.Command, args []string) {
		rt := lisp.NewRuntime(
			lisp.WithReader(parser.NewReader()),
			lisp.WithWrapDiagnostics(true),
			lisp.WithHeapCells(heapCells()),
		)
		repl.RunRuntime(rt, "> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
