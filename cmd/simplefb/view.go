package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"simplefb/internal/view"
)

func newViewCmd(opts *globalOptions) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show the console in the terminal",
		Long: "View renders the console framebuffer with half-block characters. " +
			"Keys: + and - change the font height and replay the history, 0 restores the native size, " +
			"r redraws, q or Esc quits.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if follow && len(args) != 1 {
				return errors.New("--follow requires a file argument")
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := opts.logger(cmd)

			tc, err := newTranscoder(cfg)
			if err != nil {
				return err
			}

			var initial []byte
			if len(args) == 1 {
				if initial, err = readFile(args[0]); err != nil {
					return err
				}
			}

			cons, err := newConsole(cfg, logger)
			if err != nil {
				return err
			}

			chunk, err := tc.Bytes(initial)
			if err != nil {
				return err
			}
			cons.Write(chunk)

			screen, err := tcell.NewScreen()
			if err != nil {
				return errors.Wrap(err, "create screen")
			}
			if err := screen.Init(); err != nil {
				return errors.Wrap(err, "init screen")
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			raw := make(chan []byte)
			switch {
			case follow:
				go func() {
					if err := view.Follow(ctx, args[0], int64(len(initial)), raw); err != nil {
						logger.Printf("follow: %v", err)
					}
				}()
			case len(args) == 0 && !isTerminal(cmd.InOrStdin()):
				go streamReader(ctx, cmd.InOrStdin(), raw)
			}

			return view.New(screen, cons, logger).Run(ctx, transcodeStream(ctx, tc, raw, logger.Printf))
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep reading bytes appended to the file")

	return cmd
}

// streamReader sends chunks read from r to out until EOF or ctx is done.
func streamReader(ctx context.Context, r io.Reader, out chan<- []byte) {
	defer close(out)

	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}

		if err != nil {
			return
		}
	}
}

// transcodeStream converts every chunk from in with tc. A UTF-8 sequence
// split across chunks is held back until the rest of it arrives. Chunks that
// fail to convert are reported through logf and dropped.
func transcodeStream(ctx context.Context, tc *transcoder, in <-chan []byte, logf func(string, ...interface{})) <-chan []byte {
	out := make(chan []byte)

	go func() {
		defer close(out)

		var pending []byte
		for {
			var (
				data []byte
				eof  bool
			)
			select {
			case <-ctx.Done():
				return
			case chunk, ok := <-in:
				if !ok {
					if len(pending) == 0 {
						return
					}
					eof = true
				}
				data = append(pending, chunk...)
			}

			pending = nil
			if tc.enc != nil && !eof {
				var rest []byte
				data, rest = splitIncompleteRune(data)
				pending = append([]byte(nil), rest...)
			}

			if len(data) == 0 {
				continue
			}

			converted, err := tc.Bytes(data)
			if err != nil {
				logf("%v", err)
			} else {
				select {
				case out <- converted:
				case <-ctx.Done():
					return
				}
			}

			if eof {
				return
			}
		}
	}()

	return out
}

// splitIncompleteRune splits p before a trailing UTF-8 sequence that is not
// yet complete.
func splitIncompleteRune(p []byte) ([]byte, []byte) {
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(p[i]) {
			continue
		}

		if utf8.FullRune(p[i:]) {
			break
		}
		return p[:i], p[i:]
	}

	return p, nil
}
