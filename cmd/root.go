package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openmrn/cdi-gen/internal/config"
	"github.com/openmrn/cdi-gen/internal/ui"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command. Invoked without a subcommand it
// generates the array source from --input into --output.
var rootCmd = &cobra.Command{
	Use:   "cdi-gen -i FILE -o FILE",
	Short: "Embed a CDI document as a C++ byte array",
	Long: `cdi-gen converts a file (usually the node's CDI XML document) into a C++
source file defining a constant uint8_t array terminated by a 0 sentinel.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(genOpts); err != nil {
			exitWithError(cmd, err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(func() {
		if os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}
	})
}

// exitWithError reports err and terminates the process. Usage errors print
// the command usage and exit with status 2, everything else exits with 1.
func exitWithError(cmd *cobra.Command, err error) {
	if errors.Is(err, config.ErrUsage) {
		cmd.Usage()
		fmt.Fprintf(os.Stderr, "\n%s: error: %s\n", cmd.Root().Name(), usageMessage(err))
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// usageMessage strips the ErrUsage prefix from err.
func usageMessage(err error) string {
	return strings.TrimPrefix(err.Error(), config.ErrUsage.Error()+": ")
}
