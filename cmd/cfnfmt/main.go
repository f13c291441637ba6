// Where: cmd/cfnfmt/main.go
// What: CLI entrypoint.
// Why: Execute cfnfmt commands against the standard streams.
package main

import (
	"os"

	"github.com/cfntools/cfnfmt/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], app.Dependencies{
		Out: os.Stdout,
		In:  os.Stdin,
	}))
}
