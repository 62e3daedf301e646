package cmd

import (
	"fmt"

	"github.com/grovetools/numwidget/cli"
	"github.com/grovetools/numwidget/errors"
	"github.com/grovetools/numwidget/tui/demo"
	"github.com/grovetools/numwidget/tui/widget"
	"github.com/spf13/cobra"
)

func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Print one frame of a scene",
		Long: `Builds a scene on an off-screen widget screen and prints a single frame.
Without a scene argument the demo.scene config value is used.

Examples:
numwidget render simple --width 40 --height 9
# the update scene after three steps
numwidget render update --steps 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}
	addSizeFlags(cmd)
	cmd.Flags().Int("steps", 0, "Advance the scene this many steps before rendering")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}

	name := cfg.Demo.Scene
	if len(args) > 0 {
		name = args[0]
	}
	build, err := demo.Lookup(name)
	if err != nil {
		return err
	}
	steps, _ := cmd.Flags().GetInt("steps")
	if steps < 0 {
		return errors.InvalidInput("steps", fmt.Sprint(steps), fmt.Errorf("must not be negative"))
	}

	w, h := frameSize(cmd, cfg)
	screen := widget.NewScreen(w, h)
	scene := build(screen.Root())
	for i := 0; i < steps; i++ {
		scene.Step()
	}

	cli.GetLogger(cmd).WithField("scene", name).WithField("size", fmt.Sprintf("%dx%d", w, h)).Debug("Rendering frame")
	fmt.Fprintln(cmd.OutOrStdout(), screen.Render())
	return nil
}
