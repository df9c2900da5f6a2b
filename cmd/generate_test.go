package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openmrn/cdi-gen/internal/config"
	"github.com/openmrn/cdi-gen/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietRun(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		ui.SetOutput(os.Stdout)
	})
	ui.SetOutput(io.Discard)
}

func TestBuildConfig_MissingPaths(t *testing.T) {
	_, err := buildConfig(generateOptions{Output: "out.cxx"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUsage))
	assert.Equal(t, "No input file specified", usageMessage(err))

	_, err = buildConfig(generateOptions{Input: "in.xml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUsage))
	assert.Equal(t, "No output file specified", usageMessage(err))
}

func TestBuildConfig_FlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cdi.yaml")
	content := `input: from-file.xml
output: from-file.cxx
array:
  symbol: file::cdi
layout:
  bytes_per_group: 10
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	cfg, err := buildConfig(generateOptions{
		ConfigPath: cfgPath,
		Output:     "flag.cxx",
		Include:    "flag/cdi.hxx",
	})
	require.NoError(t, err)

	assert.Equal(t, "from-file.xml", cfg.Input)
	assert.Equal(t, "flag.cxx", cfg.Output)
	assert.Equal(t, "file::cdi", cfg.Array.Symbol)
	assert.Equal(t, "flag/cdi.hxx", cfg.Array.Include)
	assert.Equal(t, 10, cfg.Layout.BytesPerGroup)
	assert.Equal(t, config.DefaultBytesPerLine, cfg.Layout.BytesPerLine)
}

func TestBuildConfig_BadConfigFile(t *testing.T) {
	_, err := buildConfig(generateOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.False(t, errors.Is(err, config.ErrUsage))
}

func TestRunGenerate(t *testing.T) {
	quietRun(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "cdi.xml")
	out := filepath.Join(dir, "cdi.cxx")
	logFile := filepath.Join(dir, "cdi-gen.log")
	require.NoError(t, os.WriteFile(in, []byte("<cdi/>"), 0644))

	err := runGenerate(generateOptions{Input: in, Output: out, LogFile: logFile, LogLevel: "debug"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	src := string(data)
	assert.True(t, strings.HasPrefix(src, "/* Generated code based off of "+in+" */\n"))
	assert.Contains(t, src, "const uint8_t NMRAnet::MemoryConfig::globalCdi[] =\n{\n")
	assert.Contains(t, src, " 60,  99, 100, 105,  47,  62,    // | <cdi/> |\n")
	assert.True(t, strings.HasSuffix(src, "   0\n\n};\n"))

	logData, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "bytes=6")
}

func TestRunGenerate_UsageErrorBeforeIO(t *testing.T) {
	quietRun(t)
	dir := t.TempDir()
	logFile := filepath.Join(dir, "cdi-gen.log")

	err := runGenerate(generateOptions{Input: filepath.Join(dir, "cdi.xml"), LogFile: logFile})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUsage))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunGenerate_MissingInput(t *testing.T) {
	quietRun(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "cdi.cxx")

	err := runGenerate(generateOptions{
		Input:   filepath.Join(dir, "missing.xml"),
		Output:  out,
		LogFile: filepath.Join(dir, "cdi-gen.log"),
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, config.ErrUsage))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		opts  generateOptions
		quiet bool
		want  string
	}{
		{name: "stderr default", opts: generateOptions{Input: "a", Output: "b"}, want: "warn"},
		{name: "log file default", opts: generateOptions{Input: "a", Output: "b", LogFile: "cdi-gen.log"}, want: "info"},
		{name: "explicit level", opts: generateOptions{Input: "a", Output: "b", LogLevel: "debug"}, want: "debug"},
		{name: "quiet on stderr", opts: generateOptions{Input: "a", Output: "b", LogLevel: "debug"}, quiet: true, want: "error"},
		{name: "quiet keeps log file level", opts: generateOptions{Input: "a", Output: "b", LogFile: "cdi-gen.log"}, quiet: true, want: "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := buildConfig(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, logLevel(cfg, tt.quiet))
		})
	}
}
