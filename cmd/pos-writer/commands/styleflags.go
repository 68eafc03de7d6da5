package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linky00/pos-writer/pkg/config"
	"github.com/linky00/pos-writer/pkg/layout"
	"github.com/linky00/pos-writer/pkg/print"
	"github.com/linky00/pos-writer/pkg/style"
)

// styleFlags holds the style-related flag values shared by print and
// preview
type styleFlags struct {
	font         string
	size         string
	bold         bool
	underline    string
	justify      string
	upsideDown   bool
	reverse      bool
	doubleStrike bool
	lineSpacing  int
}

// boxFlags holds the layout-related flag values shared by print and
// preview
type boxFlags struct {
	box    bool
	width  int
	border string
}

func registerStyleFlags(cmd *cobra.Command, f *styleFlags) {
	cmd.Flags().StringVar(&f.font, "font", "", "Printer font: a, b or c")
	cmd.Flags().StringVar(&f.size, "size", "", "Character scale as WIDTHxHEIGHT, e.g. 2x2")
	cmd.Flags().BoolVar(&f.bold, "bold", false, "Emphasized printing")
	cmd.Flags().StringVar(&f.underline, "underline", "", "Underline mode: none, single or double")
	cmd.Flags().StringVar(&f.justify, "justify", "", "Justification: left, center or right")
	cmd.Flags().BoolVar(&f.upsideDown, "upside-down", false, "Rotated printing")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "White-on-black printing")
	cmd.Flags().BoolVar(&f.doubleStrike, "double-strike", false, "Double-strike printing")
	cmd.Flags().IntVar(&f.lineSpacing, "line-spacing", 0, "Line spacing in motion units")
}

func registerBoxFlags(cmd *cobra.Command, f *boxFlags) {
	cmd.Flags().BoolVar(&f.box, "box", false, "Wrap to the paper width and draw a border")
	cmd.Flags().IntVar(&f.width, "width", 0, "Column budget (default from config)")
	cmd.Flags().StringVar(&f.border, "border", "", "Border style (default from config; \"none\" disables)")
}

// buildStyle converts flag values into an ordered directive list
func (f *styleFlags) buildStyle() (style.Style, error) {
	var directives []style.Directive

	if f.font != "" {
		font, err := style.ParseFont(f.font)
		if err != nil {
			return nil, err
		}
		directives = append(directives, style.SelectFont(font))
	}

	if f.size != "" {
		width, height, err := parseSize(f.size)
		if err != nil {
			return nil, err
		}
		directives = append(directives, style.Size(width, height))
	}

	if f.bold {
		directives = append(directives, style.Bold())
	}

	if f.underline != "" {
		mode, err := style.ParseUnderlineMode(f.underline)
		if err != nil {
			return nil, err
		}
		directives = append(directives, style.Underline(mode))
	}

	if f.justify != "" {
		mode, err := style.ParseJustifyMode(f.justify)
		if err != nil {
			return nil, err
		}
		directives = append(directives, style.Justify(mode))
	}

	if f.upsideDown {
		directives = append(directives, style.UpsideDown())
	}

	if f.reverse {
		directives = append(directives, style.Reverse())
	}

	if f.doubleStrike {
		directives = append(directives, style.DoubleStrike())
	}

	if f.lineSpacing > 0 {
		if f.lineSpacing > 255 {
			return nil, fmt.Errorf("line spacing must be 0-255, got %d", f.lineSpacing)
		}
		directives = append(directives, style.LineSpacing(uint8(f.lineSpacing)))
	}

	return style.New(directives...), nil
}

// buildBox resolves flags against config defaults into a box config
func (f *boxFlags) buildBox(cfg *config.Config) (print.Box, error) {
	if !f.box {
		return print.Box{}, nil
	}

	width := f.width
	if width == 0 {
		width = cfg.Printer.Width
	}

	borderName := f.border
	if borderName == "" {
		borderName = cfg.Box.Border
	}

	box := print.Box{WrapWidth: width}
	if borderName != "" && borderName != "none" {
		border, err := layout.ParseBorderType(borderName)
		if err != nil {
			return print.Box{}, err
		}
		box.Border = border
	}

	return box, nil
}

func parseSize(s string) (width, height uint8, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size must be WIDTHxHEIGHT, got %q", s)
	}

	var w, h int
	if _, err := fmt.Sscanf(parts[0], "%d", &w); err != nil {
		return 0, 0, fmt.Errorf("invalid size width %q", parts[0])
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size height %q", parts[1])
	}
	if w < 1 || w > 8 || h < 1 || h > 8 {
		return 0, 0, fmt.Errorf("size multipliers must be 1-8, got %dx%d", w, h)
	}

	return uint8(w), uint8(h), nil
}

// readText returns the first argument, or all of stdin when no
// argument is given
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
