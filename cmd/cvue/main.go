// Command cvue manages a catalog of Vue project templates and clones them
// into new project directories.
package main

import (
	"os"

	"github.com/hyh0309/cvue/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
