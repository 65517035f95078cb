package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/batch"
	"github.com/vancomm/minefield/internal/board"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/render"
)

var errFailed = errors.New("some boards could not be annotated")

type outputValue render.Mode

func (v *outputValue) String() string {
	return string(*v)
}

func (v *outputValue) Set(value string) error {
	mode, err := render.ParseMode(value)
	if err != nil {
		return err
	}
	*v = outputValue(mode)
	return nil
}

func (v *outputValue) Type() string {
	return "mode"
}

type options struct {
	configPath string
	overrides  []string
	output     outputValue
	workers    int
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{output: outputValue(render.Text)}

	cmd := &cobra.Command{
		Use:   "minefield [file...]",
		Short: "Annotate minefield boards with adjacent mine counts",
		Long: `minefield reads bordered minefield boards and replaces every free
cell with the number of mines around it.

	+---+      +---+
	| * |  ->  |1*1|
	|   |      |111|
	+---+      +---+

Boards are read from the given files, or from stdin when no file (or "-")
is given. A file may hold several boards separated by empty lines.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file path")
	flags.StringArrayVar(&opts.overrides, "set", nil, "Override a config value, e.g. --set log.level=debug")
	flags.VarP(&opts.output, "output", "o", "Output mode: text, color or json")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Number of sources processed at once (default GOMAXPROCS)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "Also write logs to this file, rotated")

	return cmd
}

// flagOverrides turns explicitly set flags into config overrides, so flags
// win over the config file and environment.
func (o *options) flagOverrides(cmd *cobra.Command) []string {
	overrides := append([]string(nil), o.overrides...)
	flags := cmd.Flags()
	if flags.Changed("output") {
		overrides = append(overrides, "output="+o.output.String())
	}
	if flags.Changed("workers") {
		overrides = append(overrides, "workers="+strconv.Itoa(o.workers))
	}
	if flags.Changed("log-level") {
		overrides = append(overrides, "log.level="+o.logLevel)
	}
	if flags.Changed("log-file") {
		overrides = append(overrides, "log.file="+o.logFile)
	}
	return overrides
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath, o.flagOverrides(cmd))
	if err != nil {
		return err
	}
	mode, err := render.ParseMode(cfg.Output)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("unable to set up logging: %w", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	runner := batch.Runner{
		Workers: cfg.Workers,
		Transformer: board.Transformer{
			Workers:           cfg.CountWorkers,
			ParallelThreshold: cfg.ParallelThreshold,
		},
		Middleware: []batch.Middleware{batch.Recover(log), batch.Logging(log)},
	}

	jobs, err := runner.Run(cmd.Context(), sources(args, cmd.InOrStdin()))

	printer := render.New(mode, cmd.OutOrStdout(), cmd.ErrOrStderr())
	failed := false
	for _, job := range jobs {
		if job.Failed() {
			failed = true
		}
		if perr := printer.Print(job); perr != nil {
			return fmt.Errorf("unable to write output: %w", perr)
		}
	}

	if err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}

func sources(args []string, stdin io.Reader) []batch.Source {
	if len(args) == 0 {
		return []batch.Source{batch.ReaderSource("<stdin>", stdin)}
	}
	srcs := make([]batch.Source, len(args))
	for i, arg := range args {
		if arg == "-" {
			srcs[i] = batch.ReaderSource("<stdin>", stdin)
		} else {
			srcs[i] = batch.FileSource(arg)
		}
	}
	return srcs
}

func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	default:
		fmt.Fprintln(stderr, "minefield:", err)
		return 1
	}
}

func Execute() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	return execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
