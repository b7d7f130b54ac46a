package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, newStyles().failure.Render(describe(err)))
		os.Exit(1)
	}
}
