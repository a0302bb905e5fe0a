// Command dubar charts the disk usage of a directory's immediate
// entries.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dubar/internal/cli"
)

// version is the current version of the application, set at build time.
//
//nolint:gochecknoglobals // Set by ldflags
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dubar: %v\n", err)
		os.Exit(1)
	}
}
