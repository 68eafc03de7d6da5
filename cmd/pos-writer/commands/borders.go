package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linky00/pos-writer/pkg/layout"
)

func newBordersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "borders",
		Short: MsgBordersShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, borderType := range layout.BorderTypes() {
				chars, err := borderType.Chars()
				if err != nil {
					return err
				}

				fmt.Fprintln(out, borderType)
				for _, line := range layout.Frame([]string{string(borderType)}, chars) {
					fmt.Fprintf(out, "  %s\n", line)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
