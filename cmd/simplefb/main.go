package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// globalOptions holds the flags shared by all commands.
type globalOptions struct {
	configPath string
	verbose    bool

	width      uint32
	height     uint32
	fontHeight uint32
	font       string
	history    int
	noLogo     bool
	encoding   string
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[simplefb] error: %s\n", err.Error())
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "simplefb",
		Short:         "Framebuffer text console renderer",
		Long:          "simplefb renders text with ANSI colors onto an in-memory framebuffer and writes it as a PNG or shows it in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (layered over /etc/simplefb and ~/.config/simplefb)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log driver and replay details to stderr")
	flags.Uint32Var(&opts.width, "width", 0, "framebuffer width in pixels (default from config)")
	flags.Uint32Var(&opts.height, "height", 0, "framebuffer height in pixels (default from config)")
	flags.Uint32Var(&opts.fontHeight, "font-height", 0, "character cell size in pixels (default from config)")
	flags.StringVar(&opts.font, "font", "", "font name (default: best fit)")
	flags.IntVar(&opts.history, "history", -1, "history size in bytes (default from config)")
	flags.BoolVar(&opts.noLogo, "no-logo", false, "do not draw the boot logo")
	flags.StringVar(&opts.encoding, "encoding", "", "convert input text to utf-8, latin1 or cp437 bytes")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simplefb version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newViewCmd(opts))

	return rootCmd
}

// logger returns the command logger. Output is discarded unless --verbose
// is set.
func (opts *globalOptions) logger(cmd *cobra.Command) *log.Logger {
	w := io.Discard
	if opts.verbose {
		w = cmd.ErrOrStderr()
	}
	return log.New(w, "[simplefb] ", 0)
}
