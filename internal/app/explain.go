// Where: internal/app/explain.go
// What: Handler for the explain command.
// Why: Turn raw operation failures into structured diagnostic records.
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cfntools/cfnfmt/internal/diagnose"
)

func runExplain(cli CLI, deps Dependencies, out io.Writer) int {
	raw := cli.Explain.Error
	if raw == "" {
		data, err := io.ReadAll(deps.In)
		if err != nil {
			return exitWithError(out, fmt.Errorf("read stdin: %w", err))
		}
		raw = strings.TrimRight(string(data), "\n")
	}

	var context map[string]any
	if len(cli.Explain.Context) > 0 {
		parsed, err := parseKeyValues(cli.Explain.Context)
		if err != nil {
			return exitWithError(out, err)
		}
		context = parsed
	}

	report := diagnose.FormatError(errors.New(raw), cli.Explain.Operation, context)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return exitWithError(out, fmt.Errorf("encode report: %w", err))
	}
	fmt.Fprintln(out, string(data))
	return 0
}
