// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/cfntools/cfnfmt/internal/version"
)

// Dependencies holds the injected dependencies required for command
// execution, so tests can swap the input and output streams.
type Dependencies struct {
	Out io.Writer
	In  io.Reader
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	EnvFile string `name:"env-file" help:"Path to .env file"`

	Fmt     FmtCmd     `cmd:"" help:"Rewrite a template with consistent intrinsic syntax"`
	Check   CheckCmd   `cmd:"" help:"Validate template structure"`
	Explain ExplainCmd `cmd:"" help:"Explain a failed operation as a diagnostic record"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type FmtCmd struct {
	Path  string   `arg:"" optional:"" help:"Template file (default: stdin)"`
	Long  bool     `help:"Emit long-form intrinsic syntax instead of tags"`
	Write bool     `short:"w" help:"Write the result back to the file"`
	Var   []string `help:"Template variable as key=value (key alone reads the environment)"`
}

type CheckCmd struct {
	Path string `arg:"" help:"Template file"`
}

type ExplainCmd struct {
	Operation string   `short:"o" required:"" help:"Operation that failed (generate_template, validate_template, deploy_stack, ...)"`
	Error     string   `short:"e" help:"Raw error text (default: stdin)"`
	Context   []string `help:"Context entry as key=value"`
}

type VersionCmd struct{}

// Run parses the arguments and dispatches to the requested command handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.In == nil {
		deps.In = os.Stdin
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("cfnfmt"),
		kong.Description("CloudFormation template syntax normalization and failure diagnostics"),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	if exitCode, handled := dispatchCommand(ctx.Command(), cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"fmt":          runFmt,
		"fmt <path>":   runFmt,
		"check <path>": runCheck,
		"explain":      runExplain,
		"version":      runVersion,
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

func runVersion(_ CLI, _ Dependencies, out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
