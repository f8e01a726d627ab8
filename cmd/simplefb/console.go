package main

import (
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"

	"simplefb/device/video/console"
	"simplefb/internal/config"
	"simplefb/kernel/hal"
)

// loadConfig loads the layered config and applies the flags that were set on
// the command line.
func (opts *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Framebuffer.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Framebuffer.Height = opts.height
	}
	if flags.Changed("font-height") {
		cfg.Framebuffer.FontHeight = opts.fontHeight
	}
	if flags.Changed("font") {
		cfg.Framebuffer.Font = opts.font
	}
	if flags.Changed("history") {
		cfg.Console.HistorySize = opts.history
	}
	if opts.noLogo {
		cfg.Console.Logo = false
	}
	if flags.Changed("encoding") {
		cfg.Input.Encoding = opts.encoding
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// newConsole allocates a framebuffer and brings up a console on it. Driver
// output is sent to logger.
func newConsole(cfg *config.Config, logger *log.Logger) (*console.FbConsole, error) {
	fb := console.NewFramebuffer(cfg.Framebuffer.Width, cfg.Framebuffer.Height)

	cmdLine := cfg.CmdLine()
	logger.Printf("console command line: %q", cmdLine)

	cons, kerr := hal.InitConsole(fb, hal.ParseCmdLine(cmdLine), cfg.Console.HistorySize, logger.Writer())
	if kerr != nil {
		return nil, errors.Wrap(kerr, "console init")
	}

	return cons, nil
}

// transcoder converts UTF-8 input into the console character set.
type transcoder struct {
	enc encoding.Encoding
}

func newTranscoder(cfg *config.Config) (*transcoder, error) {
	enc, err := cfg.Encoding()
	if err != nil {
		return nil, err
	}
	return &transcoder{enc: enc}, nil
}

// Bytes converts data. Characters that the target character set cannot
// represent are replaced by its substitution byte.
func (t *transcoder) Bytes(data []byte) ([]byte, error) {
	if t.enc == nil {
		return data, nil
	}

	out, err := encoding.ReplaceUnsupported(t.enc.NewEncoder()).Bytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "transcode input")
	}
	return out, nil
}

// readInput reads all of the input named by args: the single file argument
// or stdin. Reading from an interactive terminal is refused.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return readFile(args[0])
	}

	stdin := cmd.InOrStdin()
	if isTerminal(stdin) {
		return nil, errors.New("refusing to read console input from a terminal; pass a file or pipe data in")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return data, nil
}
