// Command piracer computes π to N fractional decimal or hexadecimal digits
// using the Chudnovsky series via binary splitting.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/piracer/internal/app"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut *os.File) int {
	if app.HasVersionFlag(args[1:]) {
		app.PrintVersion(out)
		return 0
	}

	a, err := app.New(args, errOut)
	if err != nil {
		if app.IsHelpError(err) {
			return 0
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := app.SetupLifecycle(context.Background(), 0)
	defer cancel.Cleanup()

	return a.Run(ctx, out)
}
