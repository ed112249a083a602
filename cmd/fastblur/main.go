// Command fastblur blurs images and renders drop shadows from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fastblur:", err)
		os.Exit(1)
	}
}
