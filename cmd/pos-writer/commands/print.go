package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/linky00/pos-writer/pkg/config"
	"github.com/linky00/pos-writer/pkg/errors"
	"github.com/linky00/pos-writer/pkg/escpos"
	"github.com/linky00/pos-writer/pkg/logging"
	"github.com/linky00/pos-writer/pkg/print"
)

func newPrintCmd() *cobra.Command {
	var (
		sf     styleFlags
		bf     boxFlags
		device string
		cut    bool
	)

	cmd := &cobra.Command{
		Use:     "print [text]",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli")

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

			devicePath := device
			if devicePath == "" {
				devicePath = cfg.Printer.Device
			}

			w, closeDevice, err := openDevice(cmd, devicePath)
			if err != nil {
				return err
			}
			defer closeDevice()

			printer := escpos.New(w)
			if cfg.Printer.Init {
				if err := printer.Init(); err != nil {
					return err
				}
			}

			logger.Debug().
				Str("device", devicePath).
				Bool("box", bf.box).
				Msg("Printing")

			if bf.box {
				err = print.LineBox(printer, st, text, box)
			} else {
				err = print.Line(printer, st, text)
			}
			if err != nil {
				return err
			}

			if cut || cfg.Printer.Cut {
				return printer.Cut()
			}
			return nil
		},
	}

	registerStyleFlags(cmd, &sf)
	registerBoxFlags(cmd, &bf)
	cmd.Flags().StringVar(&device, "device", "", "Device path, or \"-\" for stdout (default from config)")
	cmd.Flags().BoolVar(&cut, "cut", false, "Cut the paper after printing")

	return cmd
}

// openDevice opens the output device; the returned close function is a
// no-op for stdout
func openDevice(cmd *cobra.Command, path string) (w io.Writer, closeDevice func(), err error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrDeviceOpen, "opening %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
