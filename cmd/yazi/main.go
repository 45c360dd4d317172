package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kpbaks/yazi/pkg/configuration"
	"github.com/kpbaks/yazi/pkg/yazi"
)

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configurationPath overrides the configuration file location.
	configurationPath string
	// logLevel overrides the configured logging level.
	logLevel string
}

// globalConfiguration is the loaded configuration. It is populated before
// any command runs.
var globalConfiguration *configuration.Configuration

// globalLogger is the root logger. It is populated before any command runs.
var globalLogger zerolog.Logger

// configureFlags applies common flag set conventions.
func configureFlags(flags *pflag.FlagSet) {
	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false
}

// rootPreRun loads configuration and initializes logging for all commands.
func rootPreRun(_ *cobra.Command, _ []string) error {
	// Resolve the configuration path.
	configurationPath := rootConfiguration.configurationPath
	if configurationPath == "" {
		if path, err := configuration.DefaultPath(); err == nil {
			configurationPath = path
		}
	}

	// Load configuration. A missing file yields defaults.
	loaded, err := configuration.Load(configurationPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}
	globalConfiguration = loaded

	// Determine the logging level, with the command line taking precedence.
	levelName := globalConfiguration.LogLevel
	if rootConfiguration.logLevel != "" {
		levelName = rootConfiguration.logLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	// Initialize the root logger, using console formatting on terminals.
	var writer = os.Stderr
	if isatty.IsTerminal(writer.Fd()) {
		globalLogger = zerolog.New(zerolog.ConsoleWriter{Out: writer}).
			Level(level).With().Timestamp().Logger()
	} else {
		globalLogger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	}

	// Success.
	return nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail.
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "yazi",
	Version:           yazi.Version,
	Short:             "Inspect and list filesystem entry characteristics",
	PersistentPreRunE: rootPreRun,
	RunE:              rootMain,
	SilenceUsage:      true,
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("yazi version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()
	configureFlags(flags)

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register persistent flags.
	persistent := rootCommand.PersistentFlags()
	configureFlags(persistent)
	persistent.StringVar(&rootConfiguration.configurationPath, "config", "", "Override the configuration file path")
	persistent.StringVar(&rootConfiguration.logLevel, "log-level", "", "Override the logging level")

	// Hide Cobra's completion command.
	rootCommand.CompletionOptions.HiddenDefaultCmd = true

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		listCommand,
		statCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
