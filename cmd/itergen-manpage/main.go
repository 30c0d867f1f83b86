package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/itergen/cmd/itergen"
	"github.com/arthur-debert/itergen/internal/version"
)

func main() {
	rootCmd := itergen.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ITERGEN",
		Section: "1",
		Source:  "itergen " + version.Version,
		Manual:  "itergen manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
