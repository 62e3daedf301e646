package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/grovetools/numwidget/cli"
	"github.com/grovetools/numwidget/config"
	"github.com/grovetools/numwidget/errors"
	"github.com/grovetools/numwidget/logging"
	"github.com/grovetools/numwidget/tui/demo"
	"github.com/grovetools/numwidget/tui/keymap"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate numwidget configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after merging the global layer
($XDG_CONFIG_HOME/numwidget/numwidget.yml) under the project file and
applying defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			path, _ := cli.InitConfig(cli.GetOptions(cmd).ConfigFile)
			fmt.Fprintln(out, "--- # EFFECTIVE CONFIG")
			if path != "" {
				fmt.Fprintf(out, "# Source: %s\n", path)
			} else {
				fmt.Fprintln(out, "# Source: defaults")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for numwidget.yml",
		Long: `Prints the JSON schema for numwidget.yml. With --out the schema is
written to a file instead, creating parent directories as needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to generate schema")
			}
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to create schema directory").
					WithDetail("path", out)
			}
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to write schema").
					WithDetail("path", out)
			}
			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Success("Schema written")
			pretty.Path("File", out)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write the schema to this file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a configuration file",
		Long: `Checks a configuration file against the schema and the semantic rules
(keymap preset, non-empty keybindings, known demo scene). Without a path the
file found from the working directory is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cli.GetOptions(cmd).ConfigFile
			if len(args) > 0 {
				path = args[0]
			}
			path, err := cli.InitConfig(path)
			if err != nil {
				return err
			}
			if path == "" {
				cwd, _ := os.Getwd()
				return errors.ConfigNotFound(cwd)
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			cfg, err := config.Load(path)
			if err == nil {
				_, err = demo.Lookup(cfg.Demo.Scene)
			}
			if err != nil {
				reportInvalid(pretty, path, err)
				return err
			}

			pretty.Success("Configuration is valid")
			pretty.Path("File", path)
			pretty.Field("Scene", cfg.Demo.Scene)
			if cfg.TUI != nil && cfg.TUI.Keymap != "" {
				pretty.Field("Keymap", cfg.TUI.Keymap)
			}
			_, unknown := keymap.Load(cfg)
			for _, name := range unknown {
				pretty.Warn(fmt.Sprintf("Keybinding override for unknown action '%s' is ignored", name))
			}
			return nil
		},
	}
}

// reportInvalid lists what config validate rejected, one detail per line.
func reportInvalid(pretty *logging.PrettyLogger, path string, err error) {
	message := err.Error()
	numErr, ok := errors.As(err)
	if ok {
		message = numErr.Message
		if numErr.Cause != nil {
			message += ": " + numErr.Cause.Error()
		}
	}
	pretty.Fail("Configuration is invalid: "+message, nil)
	pretty.Path("File", path)
	if !ok {
		return
	}
	keys := make([]string, 0, len(numErr.Details))
	for key := range numErr.Details {
		if key != "path" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		pretty.Field(key, numErr.Details[key])
	}
}
