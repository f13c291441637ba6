// Where: internal/app/check.go
// What: Handler for the check command.
// Why: Validate template structure before it reaches a deployment pipeline.
package app

import (
	"io"

	"github.com/cfntools/cfnfmt/internal/cfnyaml"
	"github.com/cfntools/cfnfmt/internal/schema"
	"github.com/cfntools/cfnfmt/internal/ui"
)

func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)

	content, err := readInput(cli.Check.Path, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	// Normalize to long form first: short-form tags do not survive the
	// YAML-to-JSON conversion inside the validator.
	normalized, err := cfnyaml.Reformat(content, false)
	if err != nil {
		console.Failure("Template could not be parsed")
		console.ItemPlain(err.Error())
		return 1
	}

	if err := schema.Validate([]byte(normalized)); err != nil {
		console.Failure("Template structure check failed")
		console.ItemPlain(err.Error())
		return 1
	}

	console.Success("Template structure looks good")
	return 0
}
