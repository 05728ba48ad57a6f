// Package main provides the entry point for the dtmf command line.
package main

import (
	"fmt"
	"os"

	"github.com/Raikerian/go-turkish-dtmf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
