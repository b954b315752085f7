// Copyright © 2026 The ringlisp authors

package repl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ergochat/readline"
	"github.com/luthersystems/ringlisp/lisp"
	"github.com/luthersystems/ringlisp/parser"
)

type config struct {
	stdin  io.ReadCloser
	stdout io.Writer
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStdout allows overriding the output of the REPL.
func WithStdout(stdout io.Writer) Option {
	return func(c *config) {
		c.stdout = stdout
	}
}

// RunRepl runs a simple repl in a fresh ringlisp runtime.  Heap wraps are
// reported as they happen, the way the interpreter's diagnostics always
// have, so long-running loops show their reclamation.
func RunRepl(prompt string, opts ...Option) {
	cfg := newConfig(opts...)
	rtOpts := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithWrapDiagnostics(true),
	}
	if cfg.stdout != nil {
		rtOpts = append(rtOpts, lisp.WithStderr(cfg.stdout))
	}
	RunRuntime(lisp.NewRuntime(rtOpts...), prompt, opts...)
}

// RunRuntime runs a simple repl over rt.  It reads one line at a time,
// evaluates the first expression on it in the user environment, and prints
// the result.  RunRuntime returns on end of input.
func RunRuntime(rt *lisp.Runtime, prompt string, opts ...Option) {
	cfg := newConfig(opts...)
	out := io.Writer(os.Stdout)
	if cfg.stdout != nil {
		out = cfg.stdout
	}

	histFile := historyPath()
	ensureHistoryFilePermissions(histFile)
	rlCfg := &readline.Config{
		Prompt:            prompt,
		HistoryFile:       histFile,
		HistorySearchFold: true,
		AutoComplete:      &symbolCompleter{rt: rt},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	if cfg.stdout != nil {
		rlCfg.Stdout = out
		rlCfg.Stderr = out
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		panic(err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		exprs, err := rt.ReadString("stdin", string(line))
		if err != nil {
			fmt.Fprintln(out, err) //nolint:errcheck // best-effort error display
			continue
		}
		var val lisp.Word
		if len(exprs) == 0 {
			val = rt.ReadError("empty input")
		} else {
			val = rt.EvalUser(exprs[0])
		}
		fmt.Fprintln(out, rt.Sprint(val)) //nolint:errcheck // best-effort REPL output
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ringlisp_history")
}

// ensureHistoryFilePermissions creates the history file if needed and
// restricts it to the owning user.  Command history can contain anything
// the user typed.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600) //#nosec G304
	if err != nil {
		return
	}
	defer f.Close() //nolint:errcheck // best-effort cleanup
	_ = os.Chmod(path, 0600)
}
