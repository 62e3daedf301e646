// Package cmd holds the numwidget command tree.
package cmd

import (
	"io"

	"github.com/grovetools/numwidget/cli"
	"github.com/grovetools/numwidget/config"
	"github.com/grovetools/numwidget/tui"
	"github.com/grovetools/numwidget/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Frame size used when neither flags, config nor the terminal give one.
const (
	fallbackWidth  = 60
	fallbackHeight = 15
)

// NewRootCmd builds the numwidget command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"numwidget",
		"Render and explore number label widgets in the terminal",
	)
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		tui.InitializeTUI()
	}
	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(NewDemoCmd())
	root.AddCommand(NewRenderCmd())
	root.AddCommand(NewLabelCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(cli.NewVersionCommand("numwidget"))
	return root
}

// Execute runs the root command and reports errors through cli.ErrorHandler.
func Execute() error {
	root := NewRootCmd()
	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}
	if cmd == nil {
		cmd = root
	}
	return cli.NewErrorHandler(cli.GetOptions(cmd).Verbose).Handle(err)
}

// addSizeFlags registers --width and --height on cmd.
func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "Frame width in cells (0 uses demo.width or the terminal)")
	cmd.Flags().Int("height", 0, "Frame height in cells (0 uses demo.height or the terminal)")
}

// frameSize resolves the frame size: flags first, then the demo section of
// the config, then the terminal, then a fixed fallback.
func frameSize(cmd *cobra.Command, cfg *config.Config) (int, int) {
	w, _ := cmd.Flags().GetInt("width")
	h, _ := cmd.Flags().GetInt("height")
	if cfg != nil && cfg.Demo != nil {
		if w <= 0 {
			w = cfg.Demo.Width
		}
		if h <= 0 {
			h = cfg.Demo.Height
		}
	}
	if w <= 0 || h <= 0 {
		tw, th := terminalSize(cmd.OutOrStdout())
		if w <= 0 {
			w = tw
		}
		if h <= 0 {
			h = th
		}
	}
	return w, h
}

// terminalSize returns the size of w when it is a terminal, else the fallback.
func terminalSize(w io.Writer) (int, int) {
	if f, ok := w.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(f.Fd())) {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 && th > 0 {
			return tw, th
		}
	}
	return fallbackWidth, fallbackHeight
}
