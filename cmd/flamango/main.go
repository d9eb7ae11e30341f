package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	expr        string
	prompt      string
	historyFile string
	logLevel    string
	color       string
	ast         bool
	tokens      bool
}

// exitError carries a process exit code for failures that were already
// reported to the user.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "flamango [flags] [file]",
		Short: "Evaluate integer arithmetic expressions",
		Long: `Evaluate integer arithmetic expressions made of non-negative integers and + - * /.

With no file and a terminal on stdin, an interactive prompt is started.
Otherwise every non-empty line of the file (or stdin) is evaluated.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	addFlags(cmd.Flags(), opts)
	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.expr, "expr", "e", "", "evaluate `expression` and exit")
	flags.StringVar(&opts.prompt, "prompt", "calc> ", "interactive prompt")
	flags.StringVar(&opts.historyFile, "history-file", "", "save interactive history to `path`")
	flags.StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), "log messages above specified level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.color, "color", "auto", "colorize errors (auto, always, never)")
	flags.BoolVar(&opts.ast, "ast", false, "print the parsed expression tree")
	flags.BoolVar(&opts.tokens, "tokens", false, "print the token stream")
}

func setup(opts *options) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", opts.logLevel)
	}
	logrus.SetLevel(level)

	switch opts.color {
	case "auto":
		color.NoColor = !colorSupported(os.Stderr)
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return errors.Errorf("invalid --color %q: must be auto, always or never", opts.color)
	}
	return nil
}

// colorSupported reports whether escape codes should be written to f.
// Errors go to stderr, so the check is made there rather than on stdout.
func colorSupported(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// interactive decides whether in gets the line-editing prompt or is read
// as a batch of lines.
var interactive = func(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && isTerminal(f)
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	ev := &evaluator{
		opts:   opts,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}

	if opts.expr != "" {
		if len(args) > 0 {
			return errors.New("--expr cannot be combined with a file argument")
		}
		if err := ev.evalLine(opts.expr); err != nil {
			return exitError{code: 1}
		}
		return nil
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "open %s", args[0])
		}
		defer f.Close()
		return ev.runBatch(f)
	}

	in := cmd.InOrStdin()
	if interactive(in) {
		if in != os.Stdin {
			ev.stdin = io.NopCloser(in)
		}
		return ev.runInteractive()
	}
	return ev.runBatch(in)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if e, ok := errors.Cause(err).(exitError); ok {
			os.Exit(e.code)
		}
		logrus.Fatal(err)
	}
}
