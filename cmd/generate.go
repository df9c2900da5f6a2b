package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/openmrn/cdi-gen/internal/config"
	"github.com/openmrn/cdi-gen/internal/generator"
	"github.com/openmrn/cdi-gen/internal/ui"
	"github.com/openmrn/cdi-gen/pkg/log"
)

// generateOptions holds the command line flags of the root command.
// Non-empty values override the config file.
type generateOptions struct {
	Input      string
	Output     string
	ConfigPath string
	Symbol     string
	Include    string
	LogLevel   string
	LogFile    string
	Quiet      bool
}

var genOpts generateOptions

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&genOpts.Input, "input", "i", "", "input file that will serve as the source XML")
	f.StringVarP(&genOpts.Output, "output", "o", "", "output file that will serve as the destination C code")
	f.StringVarP(&genOpts.ConfigPath, "config", "c", "", "yaml config file (see 'cdi-gen init')")
	f.StringVar(&genOpts.Symbol, "symbol", "", "array symbol (default \""+config.DefaultSymbol+"\")")
	f.StringVar(&genOpts.Include, "include", "", "header to include (default \""+config.DefaultInclude+"\")")
	f.StringVar(&genOpts.LogLevel, "log-level", "", "log level: debug, info, warn, error (default \"warn\", \"info\" with --log-file)")
	f.StringVar(&genOpts.LogFile, "log-file", "", "append logs to this file instead of stderr")
	f.BoolVarP(&genOpts.Quiet, "quiet", "q", false, "suppress status output")

	for _, name := range []string{"input", "output", "config", "log-file"} {
		rootCmd.MarkFlagFilename(name)
	}
}

// buildConfig merges the optional config file with the flags, applies
// defaults and validates the result. No file other than the config file is
// touched.
func buildConfig(opts generateOptions) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	override(&cfg.Input, opts.Input)
	override(&cfg.Output, opts.Output)
	override(&cfg.Array.Symbol, opts.Symbol)
	override(&cfg.Array.Include, opts.Include)
	override(&cfg.Logging.Level, opts.LogLevel)
	override(&cfg.Logging.Path, opts.LogFile)

	config.ApplyDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// logLevel returns the level for this run. --quiet keeps only errors on
// stderr; a log file keeps its configured level.
func logLevel(cfg *config.Config, quiet bool) string {
	if quiet && cfg.Logging.Path == "" {
		return "error"
	}
	return cfg.Logging.Level
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// runGenerate validates the options and writes the array source.
//
// Returns:
//   - error: A config.ErrUsage error for missing paths, or the first
//     configuration or I/O failure.
func runGenerate(opts generateOptions) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	if opts.Quiet {
		ui.SetOutput(io.Discard)
	}

	closeLog, err := log.Init(cfg.Logging.Path, logLevel(cfg, opts.Quiet))
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	res, err := generator.Generate(cfg)
	if err != nil {
		slog.Error("Generation failed", "input", cfg.Input, "output", cfg.Output, "error", err)
		return err
	}

	if res.Bytes == 0 {
		ui.PrintWarning("Input", res.Input+" is empty")
	}
	ui.PrintSuccess("Generated", fmt.Sprintf("%s (%d bytes from %s)", res.Output, res.Bytes, res.Input))
	return nil
}
