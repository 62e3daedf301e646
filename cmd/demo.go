package cmd

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/numwidget/cli"
	"github.com/grovetools/numwidget/config"
	"github.com/grovetools/numwidget/logging"
	"github.com/grovetools/numwidget/tui/components"
	"github.com/grovetools/numwidget/tui/demo"
	"github.com/grovetools/numwidget/tui/keymap"
	"github.com/spf13/cobra"
)

func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [scene]",
		Short: "Run a number label scene interactively",
		Long: `Runs one of the example scenes in the terminal. Buttons react to mouse
clicks and to the keyboard: move focus with the focus keys and press the
activate key to click. The step key advances scenes that change over time.

Examples:
# the counter with its Increment button
numwidget demo counter
# list the scenes
numwidget demo --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDemo,
	}
	cmd.Flags().Bool("list", false, "List the available scenes and exit")
	cmd.Flags().Bool("watch", true, "Reload key bindings when the config file changes")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		printScenes(cmd.OutOrStdout())
		return nil
	}

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cli.GetLogger(cmd)

	scene := cfg.Demo.Scene
	if len(args) > 0 {
		scene = args[0]
	}

	keys, unknown := keymap.Load(cfg)
	for _, name := range unknown {
		logger.WithField("action", name).Warn("Ignoring keybinding override for unknown action")
	}

	model, err := demo.New(scene, keys)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if *cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if *cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	// Log lines on stderr would tear the frame while the program owns the terminal.
	prev := logging.GetGlobalOutput()
	logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(prev)

	p := tea.NewProgram(model, opts...)

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := watchKeys(ctx, cmd, p); err != nil {
			logger.WithError(err).Warn("Config watching disabled")
		}
	}

	logger.WithField("scene", scene).Debug("Starting demo")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo exited: %w", err)
	}
	return nil
}

// watchKeys sends demo.KeysMsg to p whenever the config file in use changes.
// Without a config file there is nothing to watch.
func watchKeys(ctx context.Context, cmd *cobra.Command, p *tea.Program) error {
	path, err := cli.InitConfig(cli.GetOptions(cmd).ConfigFile)
	if err != nil || path == "" {
		return err
	}

	log := logging.NewLogger("demo")
	w, err := config.NewWatcher(path, 0, log, func(string) {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			log.WithError(err).Warn("Keeping previous key bindings")
			return
		}
		keys, _ := keymap.Load(cfg)
		p.Send(demo.KeysMsg{Keys: keys})
	})
	if err != nil {
		return err
	}
	go w.Start(ctx)
	return nil
}

func printScenes(w io.Writer) {
	for _, name := range demo.Names() {
		fmt.Fprintln(w, components.RenderKeyValue(name, demo.Describe(name)))
	}
}
