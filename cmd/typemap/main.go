// Package main provides the typemap demo CLI: runnable walkthroughs of the
// sovran-typemap containers, one subcommand per scenario.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
