package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/linky00/pos-writer/pkg/config"
	"github.com/linky00/pos-writer/pkg/preview"
)

func newPreviewCmd() *cobra.Command {
	var (
		sf     styleFlags
		bf     boxFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "preview [text]",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		Example: MsgPreviewExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			st, err := sf.buildStyle()
			if err != nil {
				return err
			}

			box, err := bf.buildBox(cfg)
			if err != nil {
				return err
			}

			formatName := format
			if formatName == "" {
				formatName = cfg.Preview.Format
			}
			f, err := preview.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if f == preview.FormatAuto {
				f = preview.DetectFormat(os.Stdout)
			}

			r := preview.New(cmd.OutOrStdout(), f)
			return r.Render(st, text, box)
		},
	}

	registerStyleFlags(cmd, &sf)
	registerBoxFlags(cmd, &bf)
	cmd.Flags().StringVar(&format, "format", "", "Output format: auto, term or text (default from config)")

	return cmd
}
