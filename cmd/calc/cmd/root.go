// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	verbose     bool
	indexOrigin int
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "A symbolic, stack-based scientific calculator",
	Long: `calc is a Go implementation of a stack-based symbolic calculator
in the Emacs Calc tradition.

Values live on a stack. Each token on a command line is either a
literal (pushed as-is) or a named command (popped operands in,
rewritten result out). Expressions stay symbolic until every operand
simplifies to a concrete number.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVarP(&indexOrigin, "origin", "o", 1, "index origin (0 or 1)")
}
