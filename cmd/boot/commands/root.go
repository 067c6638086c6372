// Package commands implements the CLI commands for boot.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/boot/internal/app"
	"go.trai.ch/boot/internal/build"
)

// CLI represents the command line interface for boot.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
// manifest is the default value of the --manifest flag.
func New(a *app.App, manifest string) *CLI {
	rootCmd := &cobra.Command{
		Use:           "boot",
		Short:         "Construct, wire and start components from a manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("manifest", "m", manifest, "Path to the component manifest")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func manifestPath(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("manifest")
}
