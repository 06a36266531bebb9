package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCmd builds the guess command tree. Running the root command
// plays one game on the command's input and output streams.
func NewRootCmd() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number",
		Long: `Guess picks a secret number between 1 and 100 and asks for guesses
one line at a time, answering "Too small!" or "Too big!" until the
number is found.

Lines that are not whole numbers are ignored. The game exits with an
error if input ends before the number is guessed.

Example:
  guess
  guess --seed 42
  guess --config guess.yaml --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for the secret number (0 draws one from the OS)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Diagnostics level on stderr: debug, info, warn, error")

	cmd.Version = Version
	cmd.SetVersionTemplate("guess version {{.Version}}\n")

	cmd.AddCommand(newHelloCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
