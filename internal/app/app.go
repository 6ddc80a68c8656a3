// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fqfmt/internal/fastqio"
	"fqfmt/internal/logging"
	"fqfmt/internal/reformat"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitIO    = 3
)

// Options tunes a run. Zero values select the defaults used by the CLI.
type Options struct {
	// Length is the required sequence/quality width (default reformat.ReadLength).
	Length int
	// Logger receives diagnostics (default: Warn level on stderr).
	Logger *zap.Logger
}

func (o Options) withDefaults(stderr io.Writer) Options {
	if o.Length <= 0 {
		o.Length = reformat.ReadLength
	}
	if o.Logger == nil {
		o.Logger = logging.New(stderr, zapcore.WarnLevel)
	}
	return o
}

// exitError carries a non-usage exit code out of RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// NewCommand builds the root command. Messages meant for the user go to stdout.
func NewCommand(opts Options, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "fqfmt <input>",
		Short: "Rebuild loose read records as four-line FASTQ",
		Long: `fqfmt reads a loosely formatted read file, removes all whitespace from
each line and keeps only records shaped as header, 76-character sequence,
empty separator and 76-character quality. Anything else is dropped.

The result is written next to the input as <input-stem>_formatted.fastq,
replacing any existing file of that name. Gzipped input is accepted.`,
		// Every argument is a path, even one starting with "-". Only the
		// first is used.
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return format(opts, args[0], stdout)
		},
	}
}

func format(opts Options, input string, stdout io.Writer) error {
	log := opts.Logger.With(zap.String("input", input))

	lines, err := fastqio.ReadLines(input)
	if fastqio.IsNotFound(err) {
		_, _ = fmt.Fprintln(stdout, err)
		return nil
	}
	if err != nil {
		log.Error("cannot read input", zap.Error(err))
		return &exitError{code: ExitIO, err: err}
	}

	out, st := reformat.FoldStats(lines, opts.Length)
	dst := fastqio.OutputPath(input)
	if err := fastqio.WriteLines(dst, out); err != nil {
		log.Error("cannot write output", zap.String("output", dst), zap.Error(err))
		return &exitError{code: ExitIO, err: err}
	}
	log.Debug("formatted",
		zap.String("output", dst),
		zap.Int("lines", st.Lines),
		zap.Int("emitted", st.Emitted),
		zap.Int("records", st.Records),
	)
	return nil
}

// RunWithOptions executes the command for argv and returns the exit code.
func RunWithOptions(ctx context.Context, opts Options, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	opts = opts.withDefaults(stderr)
	defer func() { _ = opts.Logger.Sync() }()

	if argv == nil {
		// cobra falls back to os.Args on a nil slice.
		argv = []string{}
	}
	cmd := NewCommand(opts, outw)
	cmd.SetArgs(argv)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)

	code := ExitOK
	if err := cmd.ExecuteContext(ctx); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		} else {
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			code = ExitUsage
		}
	}

	if err := outw.Flush(); fastqio.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}

// RunContext runs the command with default options.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWithOptions(ctx, Options{}, argv, stdout, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
