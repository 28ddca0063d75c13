// Command hackasm translates Hack assembly into machine words.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/sarchlab/hackasm/api"
	"github.com/sarchlab/hackasm/config"
	"github.com/sarchlab/hackasm/core"
	"github.com/sarchlab/hackasm/verify"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// stdio is the path that selects standard input or output.
const stdio = "-"

type options struct {
	configFile string
	output     string
	format     string
	noMacros   bool
	symbols    bool
	lint       bool
	cycles     int
	dump       bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hackasm [flags] input.asm",
		Short: "Assembler for the Hack 16-bit computer",
		Long: `Hackasm translates a Hack assembly program into 16-bit machine words.

Besides the canonical @value, dest=comp;jump and (LABEL) forms, the source
may use shorthand such as x++, D;JGT:LOOP, x=5, x=D+1, D=x and y=x, which
expand to canonical instructions before labels and variables are resolved.
Use - as input to read standard input, and -o - to write standard output.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "YAML config file")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: input with .hack)")
	f.StringVar(&opts.format, "format", string(api.FormatText), "output format: text or binary")
	f.BoolVar(&opts.noMacros, "no-macros", false, "reject shorthand instructions")
	f.BoolVar(&opts.symbols, "symbols", false, "print the symbol table")
	f.BoolVar(&opts.lint, "lint", false, "run static checks and print a report")
	f.IntVar(&opts.cycles, "run", 0, "execute the program for at most N cycles")
	f.BoolVar(&opts.dump, "dump", false, "dump the expanded instructions to stderr")
	f.StringVar(&opts.logLevel, "log-level", "warn", "debug, trace, info, warn or error")

	return cmd
}

func loadConfig(cmd *cobra.Command, opts *options, args []string) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if f.Changed("output") {
		cfg.Output = opts.output
	}
	if f.Changed("format") {
		cfg.Format = opts.format
	}
	if f.Changed("no-macros") {
		cfg.Macros = !opts.noMacros
	}
	if f.Changed("symbols") {
		cfg.Symbols = opts.symbols
	}
	if f.Changed("lint") {
		cfg.Lint = opts.lint
	}
	if f.Changed("run") {
		cfg.Run.Cycles = opts.cycles
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if cfg.Input == "" {
		return nil, fmt.Errorf("no input file")
	}
	if cfg.Input == stdio && cfg.Output == "" {
		cfg.Output = stdio
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setupLogging(cfg *config.Config, w io.Writer) {
	level, _ := cfg.SlogLevel()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	setupLogging(cfg, cmd.ErrOrStderr())

	var src api.LineSource
	if cfg.Input == stdio {
		src = api.NewReaderSource("stdin", cmd.InOrStdin())
	} else {
		src = api.NewFileSource(cfg.Input)
	}

	// Tables go to stderr when the words take stdout.
	format := api.Format(cfg.Format)
	info := cmd.OutOrStdout()
	var sink api.WordSink
	if out := cfg.OutputPath(); out == stdio {
		sink = api.NewWriterSink(cmd.OutOrStdout(), format)
		info = cmd.ErrOrStderr()
	} else {
		sink = api.NewFileSink(out, format)
	}

	assembler := core.NewBuilder().
		WithMacros(cfg.Macros).
		Build("Assembler")
	driver := api.DriverBuilder{}.
		WithAssembler(assembler).
		Build("Driver")

	prog, err := driver.Assemble(src, sink)
	if err != nil {
		return err
	}

	slog.Info("Assembled",
		"Input", cfg.Input,
		"Output", cfg.OutputPath(),
		"Words", prog.Len(),
	)

	if opts.dump {
		printer := pp.New()
		printer.SetOutput(cmd.ErrOrStderr())
		printer.Println(prog.Expanded)
	}

	if cfg.Symbols {
		core.PrintSymbolTable(info, prog)
	}

	if !cfg.Lint && cfg.Run.Cycles == 0 {
		return nil
	}

	limits := verify.DefaultLimits()
	limits.RAMSize = cfg.Run.RAM

	report := verify.GenerateReport(prog, limits, cfg.Run.Cycles)
	report.WriteReport(info)

	if !report.SimulationOK {
		return fmt.Errorf("running %s: %w", cfg.Input, report.SimulationErr)
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hackasm:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
