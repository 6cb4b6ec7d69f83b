package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/pkg/constants"
)

// Execute runs the ainything CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ainything",
		Short:   "Browse a catalog of AI models and tools",
		Version: a.version,
		Long: `ainything is a browser for a catalog of AI models and tools.

Search by name, provider, description, tags and use cases, narrow the results
with pricing, capability and input/output type filters, sort them, and open
any model's details. Views can be shared as links such as
https://ainything.ai/#model=GPT-4o or #search=image.

The catalog is compiled into the binary. Point catalog_path or catalog_url
at another YAML or JSON document to browse a different one.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    cmdutil.GroupCore,
		Title: "Catalog Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    cmdutil.GroupInteractive,
		Title: "Interactive Commands:",
	})

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.ainything.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format: table, wide, json, yaml, markdown")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("ainything {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	// These flags are defined as persistent flags in createRootCommand, so
	// errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Full-screen commands own the terminal, so their logs go to a file
	if cmd.Annotations[cmdutil.AnnotationLogOutput] == cmdutil.LogOutputFile {
		switch a.config.LogOutput {
		case "", "stderr", "stdout":
			a.config.LogOutput = constants.DefaultLogsPath
		}
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
