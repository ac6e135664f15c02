// Command propbin decodes property-bin assets to JSON, encodes JSON or YAML
// back to binary, and inspects the compiled schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	propbin "github.com/reoring/propbin"
	"github.com/reoring/propbin/internal/config"
	"github.com/reoring/propbin/schema"
)

const (
	exitOK     = 0
	exitUsage  = 1
	exitDecode = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries the state every subcommand shares once the root command has
// loaded configuration.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	cfgFile string
	verbose bool

	cfg *config.Config
	log *zap.Logger
	reg *propbin.Registry
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	_ = a.log.Sync()
	if err == nil {
		return exitOK
	}
	var df *decodeFailure
	if errors.As(err, &df) {
		a.log.Debug("decode failed", zap.String("input", df.input), zap.Error(df.err))
		fmt.Fprintln(stderr, df.line())
		return exitDecode
	}
	fmt.Fprintln(stderr, "propbin:", err)
	return exitUsage
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "propbin",
		Short:         "Property-bin asset codec",
		Long:          "propbin converts schema-described property-bin assets to and from JSON.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./propbin.yaml or $HOME/.config/propbin/propbin.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "development logging to stderr")

	root.AddCommand(a.decodeCmd())
	root.AddCommand(a.entriesCmd())
	root.AddCommand(a.encodeCmd())
	root.AddCommand(a.schemaCmd())
	root.AddCommand(a.hashCmd())
	root.AddCommand(a.listCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log, err := cfg.Logger(a.verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.log = log
	reg, err := schema.Registry()
	if err != nil {
		return fmt.Errorf("building schema registry: %w", err)
	}
	a.reg = reg
	a.log.Debug("registry ready",
		zap.Int("records", len(reg.Records())),
		zap.Int("variants", len(reg.Variants())),
		zap.Int("workers", cfg.Workers))
	return nil
}

// decodeFailure marks a codec error on one input; it maps to exit code 2.
type decodeFailure struct {
	input string
	err   error
}

func (f *decodeFailure) Error() string { return f.input + ": " + f.err.Error() }

func (f *decodeFailure) Unwrap() error { return f.err }

// line renders the single stderr line "error at <path>: <kind>".
func (f *decodeFailure) line() string {
	e, ok := propbin.AsError(f.err)
	if !ok {
		return fmt.Sprintf("error at <root>: %s", propbin.CodeMalformedInput)
	}
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("error at %s: %s", path, e.Code)
}

// failed wraps codec errors as decode failures and passes anything else
// through unchanged.
func failed(input string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := propbin.AsError(err); ok {
		return &decodeFailure{input: input, err: err}
	}
	return err
}
