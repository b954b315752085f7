// Copyright © 2026 The ringlisp authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
	cellsFlag int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ringlisp",
	Short: "ringlisp — a tiny Lisp on a ring-buffer heap",
	Long: `ringlisp is a tiny interactive Lisp interpreter whose cons heap is a
fixed-size ring without garbage collection.  Cell memory is reused by
wrapping the allocation cursor, and the evaluator detects references to
overwritten cells and reports them as stale values instead of crashing.

Getting started:
  ringlisp repl                Start an interactive REPL
  ringlisp run file.lisp       Run a Lisp source file
  ringlisp run -e '(+ 1 2)'    Evaluate an expression

Language overview:
  The dialect is a minimal Lisp-1: quote, if, lambda, defun, setq, and a
  handful of subroutines (car, cdr, cons, eq, atom, numberp, symbolp,
  +, *, -, /, mod, list, copy).  The empty list nil is the only false
  value; the symbol t is bound to itself.  Errors are first-class values
  printed as <error: MESSAGE>.

The heap:
  Cells live in a ring of --cells cons cells (1024 by default).  When the
  ring fills, allocation wraps and the generation counter bumps; values
  from an older generation print as <stale value: HEX> when touched.
  Bindings made before initialization froze — t and the subroutines —
  are immortal and immutable.

More information:
  Source code:     https://github.com/luthersystems/ringlisp`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ringlisp.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
	rootCmd.PersistentFlags().IntVar(&cellsFlag, "cells", 0,
		"Number of cons cells in the ring heap (default 1024)")
	if err := viper.BindPFlag("cells", rootCmd.PersistentFlags().Lookup("cells")); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".ringlisp" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".ringlisp")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// heapCells resolves the configured ring size: flag, then config file,
// then the built-in default.
func heapCells() int {
	return viper.GetInt("cells")
}
