package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/itergen/cmd/itergen"
	"github.com/arthur-debert/itergen/pkg/style"
)

func main() {
	rootCmd := itergen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.NewTerminalRenderer().RenderError(err))
		os.Exit(1)
	}
}
