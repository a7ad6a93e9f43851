// seam lints Swift source files for style violations.
//
// Usage:
//
//	seam [flags] [paths...]
//
// With no paths, seam falls back to the include/exclude patterns of the
// configuration file (rooted at SRCROOT or the working directory), then
// to SRCROOT itself. Run `seam --show-rules` for the rule universe.
package main

import (
	"os"

	"github.com/dkoosis/seam/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
