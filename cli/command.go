package cli

import (
	"os"

	"github.com/grovetools/numwidget/config"
	"github.com/grovetools/numwidget/errors"
	"github.com/grovetools/numwidget/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the persistent flags every numwidget command carries.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command with the standard numwidget flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to numwidget.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the shared "numwidget" logger adjusted for the command's
// verbose and json flags.
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	opts := GetOptions(cmd)
	var lopts []LoggerOption
	if opts.Verbose {
		lopts = append(lopts, WithLevel(logrus.DebugLevel))
	}
	if opts.JSONOutput {
		lopts = append(lopts, WithFormatter(&logrus.JSONFormatter{}))
	}
	return Configure(logging.NewLogger("numwidget").Logger, lopts...)
}

// GetOptions extracts the persistent flags from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// InitConfig resolves the configuration file path. An explicit path wins;
// otherwise the usual search runs from the working directory. No file found
// yields "" and no error.
func InitConfig(configFile string) (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	found, err := config.FindConfigFile(cwd)
	if err != nil {
		return "", nil
	}
	return found, nil
}

// LoadConfig loads the configuration named by --config, or the layered
// configuration for the working directory. Running without any config file
// is fine and yields the defaults.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := GetOptions(cmd)
	if opts.ConfigFile != "" {
		return config.Load(opts.ConfigFile)
	}

	cfg, err := config.LoadDefault()
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		cfg = &config.Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	return cfg, err
}
