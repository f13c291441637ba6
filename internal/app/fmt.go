// Where: internal/app/fmt.go
// What: Handler for the fmt command.
// Why: Reformat templates to a consistent intrinsic-function syntax.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cfntools/cfnfmt/internal/cfnyaml"
	"github.com/cfntools/cfnfmt/internal/templating"
)

func runFmt(cli CLI, deps Dependencies, out io.Writer) int {
	content, err := readInput(cli.Fmt.Path, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	if len(cli.Fmt.Var) > 0 {
		vars, err := parseKeyValues(cli.Fmt.Var)
		if err != nil {
			return exitWithError(out, err)
		}
		content, err = templating.Process(content, vars)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	result, err := cfnyaml.Reformat(content, !cli.Fmt.Long)
	if err != nil {
		return exitWithError(out, err)
	}

	if cli.Fmt.Write {
		if cli.Fmt.Path == "" || cli.Fmt.Path == "-" {
			return exitWithError(out, fmt.Errorf("--write requires a template file path"))
		}
		if err := os.WriteFile(cli.Fmt.Path, []byte(result), 0o644); err != nil {
			return exitWithError(out, fmt.Errorf("write template: %w", err))
		}
		return 0
	}

	fmt.Fprint(out, result)
	return 0
}

// readInput reads the template from a file, or from stdin when path is empty
// or "-".
func readInput(path string, deps Dependencies) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(deps.In)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// parseKeyValues turns key=value pairs into a variable map. A bare key takes
// its value from the environment, so .env entries can feed templates.
func parseKeyValues(pairs []string) (map[string]any, error) {
	vars := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid variable %q: empty key", pair)
		}
		if !found {
			value = os.Getenv(key)
		}
		vars[key] = value
	}
	return vars, nil
}
