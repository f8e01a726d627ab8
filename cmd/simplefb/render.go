package main

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"simplefb/device/video/console"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var (
		output           string
		redrawFontHeight uint32
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render text to a PNG image",
		Long: "Render writes the input (a file or stdin) to a framebuffer console and saves the framebuffer as a PNG. " +
			"With --redraw-font-height the console is reconfigured after writing and its history replayed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := opts.logger(cmd)

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tc, err := newTranscoder(cfg)
			if err != nil {
				return err
			}

			if input, err = tc.Bytes(input); err != nil {
				return err
			}

			cons, err := newConsole(cfg, logger)
			if err != nil {
				return err
			}

			cons.Write(input)
			logger.Printf("wrote %d bytes, %d kept in history", len(input), cons.HistoryLen())

			if cmd.Flags().Changed("redraw-font-height") {
				cons.SetFontHeight(redrawFontHeight)
				cons.Redraw()

				cols, rows := cons.Dimensions(console.Characters)
				logger.Printf("redrawn with %dpx cells: %dx%d characters", cons.FontHeight(), cols, rows)
			}

			if output == "-" {
				if err := png.Encode(cmd.OutOrStdout(), cons.Framebuffer()); err != nil {
					return errors.Wrap(err, "encode png")
				}
			} else {
				f, err := os.Create(output)
				if err != nil {
					return errors.Wrapf(err, "create %s", output)
				}

				if err := savePNG(f, cons.Framebuffer()); err != nil {
					return errors.Wrapf(err, "save %s", output)
				}
			}

			logger.Printf("saved %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "console.png", "output PNG file (- for stdout)")
	cmd.Flags().Uint32Var(&redrawFontHeight, "redraw-font-height", 0, "change the cell size after writing and replay the history (0 = native)")

	return cmd
}

// savePNG encodes img to w and closes it. The close error is reported so that
// a failed final flush is not mistaken for success.
func savePNG(w io.WriteCloser, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		w.Close()
		return errors.Wrap(err, "encode png")
	}

	return w.Close()
}
