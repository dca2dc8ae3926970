package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.starlark.net/starlark"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/rpncalc/engine"
	"github.com/ezrec/rpncalc/logic"
	"github.com/ezrec/rpncalc/metrics"
	"github.com/ezrec/rpncalc/script"
	"github.com/ezrec/rpncalc/tape"
	"github.com/ezrec/rpncalc/translate"
)

type options struct {
	configPath string
	verbose    bool
	lang       string
	metrics    bool
	registers  bool
}

// calculator is an interpreter and the collectors attached to it.
type calculator struct {
	li       *logic.Interpreter
	registry *prometheus.Registry
}

func (opts *options) loadConfig() (cfg engine.Config, err error) {
	if opts.configPath == "" {
		cfg = engine.DefaultConfig()
		return
	}

	inf, err := os.Open(opts.configPath)
	if err != nil {
		return
	}
	defer inf.Close()

	cfg, err = engine.LoadConfig(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", opts.configPath, err)
	}

	return
}

func (opts *options) newCalculator() (calc *calculator, err error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return
	}

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		return
	}
	eng.Verbose = opts.verbose

	calc = &calculator{
		li:       logic.NewInterpreter(eng),
		registry: prometheus.NewRegistry(),
	}
	calc.li.Verbose = opts.verbose

	m, err := metrics.NewMetrics(calc.registry)
	if err != nil {
		return nil, err
	}
	m.Attach(calc.li)

	return
}

// report writes the registers and metrics, as requested.
func (opts *options) report(calc *calculator, w io.Writer) (err error) {
	if opts.registers {
		_, err = fmt.Fprint(w, calc.li.Engine().String())
		if err != nil {
			return
		}
	}

	if opts.metrics {
		err = metrics.Dump(calc.registry, w)
	}

	return
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "rpncalc",
		Short:         "A four level stack RPN decimal calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))

			if opts.lang != "" {
				tag := translate.SetLanguage(opts.lang)
				slog.Debug("language", "component", "cli", "tag", tag.String())
			}

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML engine configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")
	flags.StringVar(&opts.lang, "lang", "", "Message language (en, de)")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print key and error counters when done")
	flags.BoolVarP(&opts.registers, "registers", "r", false, "Print the registers when done")

	runCmd := &cobra.Command{
		Use:   "run [key...]",
		Short: "Key in words from the arguments, or from standard input",
		Long: `Key in words from the arguments, or from standard input if there are none.

A word is a key name ("enter", "+", "sqrt", "sto0", ...) or a plain
number ("12.5"). The display is printed after every word.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTape(opts, cmd, args)
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script <file.star>",
		Short: "Run a Starlark program against the calculator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(opts, cmd, args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective engine configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "List the key names and codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			for op := range logic.OpCodes() {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%4d %v\n", int(op), op)
				if err != nil {
					return
				}
			}
			return
		},
	}

	rootCmd.AddCommand(runCmd, scriptCmd, configCmd, keysCmd)

	return rootCmd
}

func runTape(opts *options, cmd *cobra.Command, args []string) (err error) {
	calc, err := opts.newCalculator()
	if err != nil {
		return
	}

	tc := &tape.Tape{
		Input:  cmd.InOrStdin(),
		Output: cmd.OutOrStdout(),
	}
	if len(args) > 0 {
		tc.Input = strings.NewReader(strings.Join(args, " "))
	}

	err = tc.Run(calc.li)
	if err != nil {
		return
	}

	return opts.report(calc, cmd.OutOrStdout())
}

func runScript(opts *options, cmd *cobra.Command, filename string) (err error) {
	calc, err := opts.newCalculator()
	if err != nil {
		return
	}

	sc := script.NewScript(calc.li)
	sc.Verbose = opts.verbose
	sc.Output = cmd.OutOrStdout()

	_, err = sc.Exec(filename, nil)
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			err = errors.New(evalErr.Backtrace())
		}
		return
	}

	return opts.report(calc, cmd.OutOrStdout())
}
