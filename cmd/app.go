package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/config"
	"github.com/leonardinius/gocalc/internal/interpreter"
	"github.com/leonardinius/gocalc/internal/logs"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
)

// Exit codes follow sysexits.h.
const (
	exitUsage  = 64
	exitData   = 65
	exitIO     = 74
	exitConfig = 78
)

const banner = "Simple CLI calculator | type expressions like: 12+7*3-4/2\nPress CTRL+C to quit\n"

var errUsage = errors.New("Usage: gocalc [-config file] [-echo] [-e expression | script]")

type CalcApp struct {
	opts        *appOpts
	cfg         *config.Config
	logger      *slog.Logger
	reporter    calcerrors.ErrReporter
	interpreter interpreter.Interpreter
	echo        bool
	failed      bool
}

func NewCalcApp(options ...AppOption) *CalcApp {
	return &CalcApp{opts: newAppOpts(options...)}
}

func (app *CalcApp) Main(args []string) int {
	flags := flag.NewFlagSet("gocalc", flag.ContinueOnError)
	flags.SetOutput(app.opts.stderr)
	configPath := flags.String("config", "", "YAML configuration file")
	expression := flags.String("e", "", "evaluate a single expression and exit")
	flags.BoolVar(&app.echo, "echo", false, "print each expression in reverse Polish notation before its result")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		app.reportFatal(err)
		return exitConfig
	}

	logger, closeLog, err := logs.New(app.opts.stderr, logs.Options{Level: cfg.Level(), File: cfg.LogFile})
	if err != nil {
		app.reportFatal(err)
		return exitConfig
	}
	defer app.closeLog(closeLog)

	app.cfg = cfg
	app.logger = logs.WithSession(logger)
	app.reporter = calcerrors.NewErrReporter(app.opts.stdout)
	app.interpreter = interpreter.NewInterpreter(interpreter.WithLogger(app.logger))

	expressionSet := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			expressionSet = true
		}
	})

	ctx := context.Background()
	switch {
	case expressionSet && flags.NArg() == 0:
		err = app.runExpression(ctx, *expression)
	case !expressionSet && flags.NArg() == 1:
		err = app.runFile(ctx, flags.Arg(0))
	case !expressionSet && flags.NArg() == 0:
		err = app.runPrompt(ctx)
	default:
		err = errUsage
	}

	if errors.Is(err, errUsage) {
		app.reportFatal(err)
		return exitUsage
	}
	if err != nil {
		app.reportFatal(err)
		return exitIO
	}
	if app.failed {
		return exitData
	}

	return 0
}

func (app *CalcApp) reportFatal(err error) {
	fmt.Fprintln(app.opts.stderr, err)
}

func (app *CalcApp) closeLog(closeFn func() error) {
	if err := closeFn(); err != nil {
		app.reportFatal(fmt.Errorf("close log file: %w", err))
	}
}

func (app *CalcApp) runPrompt(ctx context.Context) error {
	rl, err := app.opts.newLineReader(app.cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	app.logger.InfoContext(ctx, "prompt started")
	if app.cfg.Banner {
		fmt.Fprint(app.opts.stdout, banner+"\n")
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			app.logger.InfoContext(ctx, "prompt closed", "reason", err)
			return nil
		}
		if err != nil {
			return err
		}

		app.evaluateLine(ctx, line)
	}
}

func (app *CalcApp) runFile(ctx context.Context, scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(bytes), "\n") {
		if !app.evaluateLine(ctx, line) {
			app.failed = true
		}
	}
	return nil
}

func (app *CalcApp) runExpression(ctx context.Context, expression string) error {
	if strings.TrimSpace(expression) == "" {
		return errUsage
	}
	if !app.evaluateLine(ctx, expression) {
		app.failed = true
	}
	return nil
}

// evaluateLine prints the result of one console line; blank lines are
// skipped. It reports whether the line evaluated cleanly.
func (app *CalcApp) evaluateLine(ctx context.Context, line string) (ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			app.logger.ErrorContext(ctx, "evaluation panicked", "expression", line, "panic", r)
			app.reporter.ReportPanic(fmt.Errorf("%v", r))
			ok = false
		}
	}()

	value, err := app.run(ctx, line)
	if err != nil {
		app.logger.DebugContext(ctx, "evaluation failed", "expression", line, "error", err)
		app.reporter.ReportError(err)
		return false
	}

	fmt.Fprintf(app.opts.stdout, "= "+app.cfg.ResultFormat+"\n\n", value)
	return true
}

func (app *CalcApp) run(ctx context.Context, input string) (float64, error) {
	s := scanner.NewScanner(input)

	tokens, err := s.Scan()
	if err != nil {
		return 0, err
	}

	p := parser.NewParser(tokens)
	sequence, err := p.Parse()
	if err != nil {
		return 0, err
	}

	if app.echo {
		fmt.Fprintln(app.opts.stdout, parser.NewRPNPrinter().Print(sequence))
	}

	return app.interpreter.Interpret(ctx, sequence)
}
