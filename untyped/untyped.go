package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/smasher164/lambdarw/lambda"
)

type config struct {
	weak     bool
	debruijn bool
	trace    bool
	steps    bool
	maxSteps int
	timeout  time.Duration
}

func usage(w io.Writer, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprint(w, "usage: untyped [flags] [file]\n\n")
		fmt.Fprint(w, "untyped reduces a term of the untyped lambda calculus to normal form.\n")
		fmt.Fprintf(w, "The letters %s stand for combinators; write [K] for a variable named K.\n", string(lambda.Reserved()))
		fmt.Fprint(w, "Without a file the term is read from standard input, interactively on a terminal.\n\n")
		fs.PrintDefaults()
	}
}

func (c *config) mode() lambda.Mode {
	if c.weak {
		return lambda.Weak
	}
	return lambda.Full
}

// eval parses and reduces src and returns the rendered result. The binding
// trace goes to stdout ahead of the result, step logging to stderr.
func (c *config) eval(src string, stdout, stderr io.Writer) (string, error) {
	t, err := lambda.Parse(src)
	if err != nil {
		return "", err
	}
	if c.trace {
		fmt.Fprintln(stdout, lambda.TraceString(t))
	}
	s := lambda.NewSession(c.mode())
	s.MaxSteps = c.maxSteps
	if c.steps {
		s.Observer = func(st lambda.Step) {
			fmt.Fprintf(stderr, "%s (%d): %s ---> %s\n", st.Kind, st.N, st.Redex, st.Result)
		}
	}
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	r, err := s.ReduceContext(ctx, t)
	if err != nil {
		return "", fmt.Errorf("after %d steps: %w", s.Steps(), err)
	}
	if c.debruijn {
		return lambda.DeBruijnString(r), nil
	}
	return lambda.Format(r), nil
}

func isTerminal() bool {
	mode, err := liner.TerminalMode()
	return err == nil && mode != nil
}

func repl(c *config, stdout, stderr io.Writer) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	for {
		src, err := line.Prompt("λ> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return 0
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)
		out, err := c.eval(src, stdout, stderr)
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		fmt.Fprintln(stdout, out)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var c config
	fs := flag.NewFlagSet("untyped", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(stderr, fs)
	fs.BoolVar(&c.weak, "weak", false, "stop at weak head normal form (never reduce under λ)")
	fs.BoolVar(&c.debruijn, "debruijn", false, "print the result in De Bruijn form")
	fs.BoolVar(&c.trace, "trace", false, "print the binding trace of the input term")
	fs.BoolVar(&c.steps, "steps", false, "log every beta reduction and alpha conversion to stderr")
	fs.IntVar(&c.maxSteps, "max-steps", 0, "give up after `n` rewrites (0 means no limit)")
	fs.DurationVar(&c.timeout, "timeout", 0, "give up after duration `d` (0 means no limit)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	var (
		b   []byte
		err error
	)
	switch fs.NArg() {
	case 0:
		if stdin == os.Stdin && isTerminal() {
			return repl(&c, stdout, stderr)
		}
		b, err = io.ReadAll(stdin)
	case 1:
		b, err = os.ReadFile(fs.Arg(0))
	default:
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	out, err := c.eval(string(b), stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
