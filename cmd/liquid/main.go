// Command liquid is the CLI entry point: build the root command and
// execute it, exiting non-zero on failure (grounded on the teacher's
// cli/main.go bootstrap).
package main

import (
	"fmt"
	"os"

	"github.com/compozy/liquid/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
