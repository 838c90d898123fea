// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"symcalc/app"
	"symcalc/command"
)

var (
	evalExpr string
	fancyOut bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program of stack literals and commands",
	Long: `Execute a whitespace-separated program against a fresh stack and
print what remains.

Each token is either a literal, pushed onto the stack via the basic
display/parse grammar ("3", "[1,2,3]", "x"), or a command reference:
an optional leading numerical argument, an optional "k" keep
modifier, and a command name ("2k+", "pack", "vector_apply:{...}").
A command that needs a textual argument (vector_apply, vector_map,
reduce, rreduce) takes it after a colon, as the Subcommand JSON
record that package command's ParseSubcommand reads.

Examples:
  calc run -e "3 4 +"
  calc run -e "1 2 3 3pack reverse unpack"
  calc run program.calc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline program instead of reading a file")
	runCmd.Flags().BoolVar(&fancyOut, "fancy", false, "print the final stack as fancy HTML instead of basic notation")
}

func runProgram(_ *cobra.Command, args []string) error {
	var input string
	switch {
	case evalExpr != "":
		input = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for an inline program")
	}

	a := app.New()
	if indexOrigin == 0 || indexOrigin == 1 {
		a.Mode.SetOrigin(indexOrigin)
	}
	state := a.NewSession()
	ctx := a.Context()

	for _, tok := range strings.Fields(input) {
		if err := runToken(a, state, ctx, tok); err != nil {
			return fmt.Errorf("%s: %w", tok, err)
		}
	}

	printStack(a, state, fancyOut)
	return nil
}

// runToken executes one program token against state: a command
// reference dispatches through a's table; anything else parses as a
// literal via basic notation and is pushed.
func runToken(a *app.Application, state *command.State, ctx *command.Context, tok string) error {
	if opts, name, arg, ok := parseCommandToken(a.Dispatch, tok); ok {
		cmdObj, _ := a.Dispatch.Lookup(name)
		var cmdArgs []string
		if arg != "" {
			cmdArgs = []string{arg}
		}
		errs, err := cmdObj.Run(state, opts, cmdArgs, ctx)
		if err != nil {
			return err
		}
		for _, soft := range errs.All() {
			fmt.Fprintf(os.Stderr, "warning: %v\n", soft)
		}
		return nil
	}

	e, err := a.Basic.Parse(tok)
	if err != nil {
		return fmt.Errorf("not a literal or a known command: %w", err)
	}
	state.Stack.Push(e)
	return nil
}

// parseCommandToken recognizes the "[N][k]name[:arg]" command token
// grammar described in runCmd's Long text. It reports ok=false for
// anything that isn't the name of a registered command, leaving the
// caller to fall back to parsing tok as a literal.
func parseCommandToken(dispatch *command.Table, tok string) (opts command.Options, name string, arg string, ok bool) {
	rest := tok
	if colon := strings.IndexByte(rest, ':'); colon >= 0 {
		arg = rest[colon+1:]
		rest = rest[:colon]
	}

	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	numPart, rest := rest[:i], rest[i:]

	keep := strings.HasPrefix(rest, "k")
	if keep {
		rest = rest[1:]
	}

	if rest == "" {
		return command.Options{}, "", "", false
	}
	if _, found := dispatch.Lookup(rest); !found {
		return command.Options{}, "", "", false
	}

	opts = command.Options{KeepModifier: keep}
	if numPart != "" {
		n, err := strconv.Atoi(numPart)
		if err != nil {
			return command.Options{}, "", "", false
		}
		opts.Argument = &n
	}
	return opts, rest, arg, true
}

func printStack(a *app.Application, state *command.State, fancy bool) {
	mode := a.Basic
	if fancy {
		mode = a.Fancy
	}
	elems := state.Stack.Snapshot()
	for i, e := range elems {
		var b strings.Builder
		if err := mode.WriteHTML(&b, e, 0); err != nil {
			fmt.Fprintf(os.Stderr, "error printing stack element %d: %v\n", i, err)
			continue
		}
		fmt.Println(b.String())
	}
}
