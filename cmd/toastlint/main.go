package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/toastkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "toastlint:", err)
		os.Exit(1)
	}
}
