package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/openmrn/cdi-gen/internal/config"
	"github.com/openmrn/cdi-gen/internal/templates"
	"github.com/openmrn/cdi-gen/internal/ui"
	"github.com/spf13/cobra"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [config-file]",
	Short: "Write a default cdi-gen config file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "cdi.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := runInit(path); err != nil {
			ui.PrintError("Init", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit writes a commented config file holding the default settings.
//
// Parameters:
//   - path: Destination of the config file.
//
// Returns:
//   - error: An error if the file already exists or cannot be written.
func runInit(path string) (err error) {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	tmpl, err := templates.Parse(templates.Config, nil)
	if err != nil {
		return err
	}

	data := struct {
		Input         string
		Output        string
		Include       string
		Symbol        string
		BytesPerGroup int
		BytesPerLine  int
		Indent        string
		LogLevel      string
	}{
		Input:         "cdi.xml",
		Output:        "cdi.cxx",
		Include:       config.DefaultInclude,
		Symbol:        config.DefaultSymbol,
		BytesPerGroup: config.DefaultBytesPerGroup,
		BytesPerLine:  config.DefaultBytesPerLine,
		Indent:        config.DefaultIndent,
		LogLevel:      config.DefaultLogLevel,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	ui.PrintSuccess("Created", path)
	return nil
}
