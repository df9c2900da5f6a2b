package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/openmrn/cdi-gen/internal/config"
)

// FromConfig builds an Emitter from a validated configuration.
func FromConfig(cfg *config.Config) *Emitter {
	return &Emitter{
		Include: cfg.Array.Include,
		Symbol:  cfg.Array.Symbol,
		Layout: Layout{
			BytesPerGroup: cfg.Layout.BytesPerGroup,
			BytesPerLine:  cfg.Layout.BytesPerLine,
			Indent:        cfg.Layout.Indent,
		},
	}
}

// Generate converts cfg.Input into the C++ array source at cfg.Output.
// The input is opened before the output is created, so a missing input leaves
// the output untouched. The output is written in place; an interrupted run
// leaves a partial file behind.
//
// Parameters:
//   - cfg: A configuration that has passed config.Validate.
//
// Returns:
//   - Result: Counters for the emitted array.
//   - error: The first open, read, write or close failure.
func Generate(cfg *config.Config) (res Result, err error) {
	slog.Debug("Generating CDI array", "input", cfg.Input, "output", cfg.Output, "symbol", cfg.Array.Symbol)

	in, err := os.Open(cfg.Input)
	if err != nil {
		return res, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close input: %w", cerr))
		}
	}()

	out, err := os.Create(cfg.Output)
	if err != nil {
		return res, fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close output: %w", cerr))
		}
	}()

	res, err = FromConfig(cfg).Emit(out, in, cfg.Input)
	res.Output = cfg.Output
	if err != nil {
		return res, err
	}

	slog.Info("Generated CDI array", "output", cfg.Output, "bytes", res.Bytes, "lines", res.Lines)
	return res, nil
}
