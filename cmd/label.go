package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grovetools/numwidget/cli"
	"github.com/grovetools/numwidget/errors"
	"github.com/grovetools/numwidget/tui/components/numberlabel"
	"github.com/grovetools/numwidget/tui/widget"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewLabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label <value>",
		Short: "Render a single number label",
		Long: `Renders one number label and prints the frame. Integers use the large
font and are centered. With --align the medium styled label is placed at
the given anchor. With --float the value is formatted with --decimals
digits (1 to 3; anything else prints no decimals).

Negative values can be given directly; a number that follows a flag taking
a value (such as --x) belongs to that flag. Everything after "--" is read
as the value.

Examples:
numwidget label 42
numwidget label -7 --width 20 --height 7
numwidget label 7 --align bottom-right --x -2 --y -1
numwidget label 3.14159 --float --decimals 2`,
		Args: cobra.ArbitraryArgs,
		// pflag reads "-7" as a shorthand flag, so flags are parsed in RunE
		// after negative values are moved behind "--".
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			flags.AddFlagSet(cmd.InheritedFlags())
			if err := flags.Parse(positionalNegatives(flags, args)); err != nil {
				return err
			}
			if help, _ := flags.GetBool("help"); help {
				return cmd.Help()
			}
			args = flags.Args()
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			return runLabel(cmd, args)
		},
	}
	addSizeFlags(cmd)
	cmd.Flags().Bool("float", false, "Treat the value as a float")
	cmd.Flags().Uint8("decimals", 1, "Decimal places for --float")
	cmd.Flags().String("align", "", "Anchor: "+joinAligns())
	cmd.Flags().Int("x", 0, "Horizontal offset from the anchor")
	cmd.Flags().Int("y", 0, "Vertical offset from the anchor")
	return cmd
}

// joinAligns lists the anchors a user can pick; "default" is left out.
func joinAligns() string {
	return strings.Join(widget.AlignNames()[1:], ", ")
}

var negativeNumber = regexp.MustCompile(`^-(\d+\.?\d*|\.\d+)$`)

// positionalNegatives moves negative numbers that are not the value of the
// preceding flag behind "--" so pflag keeps them as arguments.
func positionalNegatives(flags *pflag.FlagSet, args []string) []string {
	var head, tail []string
	for i, arg := range args {
		if arg == "--" {
			tail = append(tail, args[i+1:]...)
			break
		}
		if negativeNumber.MatchString(arg) && !awaitsValue(flags, head) {
			tail = append(tail, arg)
			continue
		}
		head = append(head, arg)
	}
	if len(tail) == 0 {
		return head
	}
	return append(append(head, "--"), tail...)
}

// awaitsValue reports whether the last of prev is a flag still missing its
// value, as in "--x" or "-c" without "=".
func awaitsValue(flags *pflag.FlagSet, prev []string) bool {
	if len(prev) == 0 {
		return false
	}
	last := prev[len(prev)-1]
	if len(last) < 2 || last[0] != '-' || strings.Contains(last, "=") {
		return false
	}
	var f *pflag.Flag
	if strings.HasPrefix(last, "--") {
		f = flags.Lookup(last[2:])
	} else if !negativeNumber.MatchString(last) {
		// In "-abc" only the last shorthand can take the next argument.
		f = flags.ShorthandLookup(last[len(last)-1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func runLabel(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}

	isFloat, _ := cmd.Flags().GetBool("float")
	decimals, _ := cmd.Flags().GetUint8("decimals")
	alignName, _ := cmd.Flags().GetString("align")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	var align widget.Align
	if cmd.Flags().Changed("align") {
		if align, err = widget.ParseAlign(alignName); err != nil {
			return err
		}
	}

	w, h := frameSize(cmd, cfg)
	screen := widget.NewScreen(w, h)
	parent := screen.Root()

	var label *widget.Object
	if isFloat {
		v, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return errors.InvalidInput("value", args[0], err)
		}
		label = numberlabel.CreateFloat(parent, float32(v), decimals)
		if cmd.Flags().Changed("align") {
			label.Align(align, x, y)
		}
	} else {
		v, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return errors.InvalidInput("value", args[0], err)
		}
		if cmd.Flags().Changed("align") {
			label = numberlabel.CreateStyled(parent, int32(v), align, x, y)
		} else {
			label = numberlabel.Create(parent, int32(v))
		}
	}

	cli.GetLogger(cmd).WithField("text", label.Text()).Debug("Rendering label")
	fmt.Fprintln(cmd.OutOrStdout(), screen.Render())
	return nil
}
