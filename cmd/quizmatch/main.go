// Quizmatch: futon recommendation quiz for the command line.
//
// Usage:
//
//	quizmatch quiz       # Run the interactive quiz wizard
//	quizmatch recommend  # Score a prepared answer set
//	quizmatch mappings   # Manage the tag vocabulary
package main

import (
	"fmt"
	"os"

	"github.com/nordfuton/quizmatch-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
