package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Ashwins9001/flamango"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var errorColor = color.New(color.FgRed, color.Bold)

type evaluator struct {
	opts   *options
	out    io.Writer
	errOut io.Writer
	// stdin replaces the terminal as the interactive input when set.
	stdin io.ReadCloser
}

// evalLine evaluates one line and prints its value, or reports the error
// with a caret under the offending column. The returned error is the one
// already reported.
func (ev *evaluator) evalLine(line string) error {
	log := logrus.WithField("line", line)
	log.Debug("evaluating")

	if ev.opts.tokens {
		toks, err := flamango.Tokenize(line)
		if err != nil {
			return ev.report(line, err)
		}
		for _, tok := range toks {
			fmt.Fprintln(ev.out, tok)
		}
	}

	node, err := flamango.ParseString(line)
	if err != nil {
		return ev.report(line, err)
	}
	if ev.opts.ast {
		pretty.Fprintf(ev.out, "%# v\n", node)
		fmt.Fprintln(ev.out, node)
	}

	v, err := flamango.Eval(node)
	if err != nil {
		return ev.report(line, err)
	}
	log.WithField("value", v).Debug("evaluated")
	fmt.Fprintln(ev.out, v)
	return nil
}

func (ev *evaluator) report(line string, err error) error {
	logrus.WithField("line", line).WithError(err).Debug("evaluation failed")

	var pe interface{ Position() int }
	if errors.As(err, &pe) {
		fmt.Fprintln(ev.errOut, line)
		fmt.Fprintln(ev.errOut, caret(line, pe.Position()))
	}
	errorColor.Fprintf(ev.errOut, "%s: %v\n", errorKind(err), err)
	return err
}

func errorKind(err error) string {
	var (
		lexErr   *flamango.LexicalError
		synErr   *flamango.SyntaxError
		arithErr *flamango.ArithmeticError
	)
	switch {
	case errors.As(err, &lexErr):
		return "lexical error"
	case errors.As(err, &synErr):
		return "syntax error"
	case errors.As(err, &arithErr):
		return "arithmetic error"
	}
	return "error"
}

// caret returns a line with '^' under byte offset pos of line. Tabs in the
// prefix are kept so the caret lines up with the echoed input.
func caret(line string, pos int) string {
	if pos > len(line) {
		pos = len(line)
	}
	var buf strings.Builder
	for _, r := range line[:pos] {
		if r == '\t' {
			buf.WriteRune('\t')
		} else {
			buf.WriteRune(' ')
		}
	}
	buf.WriteRune('^')
	return buf.String()
}

// runBatch evaluates every non-empty line of r. Failed lines are reported
// and skipped; if any failed the result is exit status 1.
func (ev *evaluator) runBatch(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	var total, failed int
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if err := ev.evalLine(line); err != nil {
			failed++
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	logrus.WithFields(logrus.Fields{"lines": total, "failed": failed}).Info("batch done")
	if failed > 0 {
		return exitError{code: 1}
	}
	return nil
}

// runInteractive reads lines at a prompt until end of input. Failed lines
// are reported and the session goes on. Ctrl-C discards a partial line and
// ends the session on an empty one.
func (ev *evaluator) runInteractive() error {
	cfg := &readline.Config{
		Prompt:          ev.opts.prompt,
		HistoryFile:     ev.opts.historyFile,
		InterruptPrompt: "^C",
		Stdout:          ev.out,
		Stderr:          ev.errOut,
	}
	if ev.stdin != nil {
		cfg.Stdin = ev.stdin
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
		cfg.FuncGetWidth = func() int { return 80 }
		cfg.FuncOnWidthChanged = func(func()) {}
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return errors.Wrap(err, "start line editor")
	}
	defer rl.Close()

	ev.out = rl.Stdout()
	ev.errOut = rl.Stderr()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read line")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		// already reported; the session continues
		_ = ev.evalLine(line)
	}
}
