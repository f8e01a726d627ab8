package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// maxDimension bounds the framebuffer width and height.
const maxDimension = 16384

type Config struct {
	Framebuffer FramebufferConfig `toml:"framebuffer"`
	Console     ConsoleConfig     `toml:"console"`
	Input       InputConfig       `toml:"input"`
}

type FramebufferConfig struct {
	Width      uint32 `toml:"width"`
	Height     uint32 `toml:"height"`
	FontHeight uint32 `toml:"font_height"` // 0 = native 8px cells
	Font       string `toml:"font"`        // empty = best fit for the resolution
}

type ConsoleConfig struct {
	HistorySize int    `toml:"history_size"`
	DefaultFg   string `toml:"default_fg"` // hex, e.g. "#ffffff"
	DefaultBg   string `toml:"default_bg"`
	Logo        bool   `toml:"logo"`
}

type InputConfig struct {
	Encoding string `toml:"encoding"` // "utf-8", "latin1" or "cp437"
}

// These are variables so tests can point them elsewhere.
var (
	systemConfigPath = "/etc/simplefb/config.toml"
	userConfigPath   = func() (string, error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "simplefb", "config.toml"), nil
	}
)

func DefaultConfig() *Config {
	return &Config{
		Framebuffer: FramebufferConfig{
			Width:  640,
			Height: 480,
		},
		Console: ConsoleConfig{
			HistorySize: 64 * 1024,
			DefaultFg:   "#ffffff",
			DefaultBg:   "#000000",
			Logo:        true,
		},
		Input: InputConfig{
			Encoding: "utf-8",
		},
	}
}

// Load builds the configuration from the defaults, the system config, the
// user config, an optional explicit config file and finally the SIMPLEFB_*
// environment variables. Each layer overrides the previous one. An explicit
// path that does not exist is an error; missing system and user configs are
// skipped.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := decodeIfExists(systemConfigPath, cfg); err != nil {
		return nil, err
	}

	if userConfig, err := userConfigPath(); err == nil {
		if err := decodeIfExists(userConfig, cfg); err != nil {
			return nil, err
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decodeIfExists(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SIMPLEFB_FONT"); v != "" {
		cfg.Framebuffer.Font = v
	}

	if v := os.Getenv("SIMPLEFB_FONT_HEIGHT"); v != "" {
		height, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return errors.Errorf("invalid SIMPLEFB_FONT_HEIGHT: %q", v)
		}
		cfg.Framebuffer.FontHeight = uint32(height)
	}

	if v := os.Getenv("SIMPLEFB_HISTORY_SIZE"); v != "" {
		size, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Errorf("invalid SIMPLEFB_HISTORY_SIZE: %q", v)
		}
		cfg.Console.HistorySize = size
	}

	if v := os.Getenv("SIMPLEFB_ENCODING"); v != "" {
		cfg.Input.Encoding = v
	}

	return nil
}

// Validate checks that the configuration describes a usable console.
func (c *Config) Validate() error {
	fb := c.Framebuffer
	if fb.Width == 0 || fb.Height == 0 {
		return errors.Errorf("framebuffer dimensions must be non-zero; got %dx%d", fb.Width, fb.Height)
	}

	if fb.Width > maxDimension || fb.Height > maxDimension {
		return errors.Errorf("framebuffer dimensions must not exceed %d; got %dx%d", maxDimension, fb.Width, fb.Height)
	}

	if fb.FontHeight > maxDimension {
		return errors.Errorf("framebuffer font_height must not exceed %d; got %d", maxDimension, fb.FontHeight)
	}

	if c.Console.HistorySize < 0 {
		return errors.Errorf("console history_size must not be negative; got %d", c.Console.HistorySize)
	}

	if _, _, err := c.Colors(); err != nil {
		return err
	}

	if _, err := c.Encoding(); err != nil {
		return err
	}

	return nil
}

// Colors returns the configured default colors as packed 0x00RRGGBB values.
func (c *Config) Colors() (fg, bg uint32, err error) {
	if fg, err = parseColor(c.Console.DefaultFg); err != nil {
		return 0, 0, errors.Wrap(err, "console default_fg")
	}

	if bg, err = parseColor(c.Console.DefaultBg); err != nil {
		return 0, 0, errors.Wrap(err, "console default_bg")
	}

	return fg, bg, nil
}

func parseColor(hex string) (uint32, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	col, err := colorful.Hex(hex)
	if err != nil {
		return 0, err
	}

	r, g, b := col.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
}

// Encoding returns the character set that input text is converted to before
// being written to the console. A nil encoding means the input bytes are
// passed through unchanged.
func (c *Config) Encoding() (encoding.Encoding, error) {
	switch strings.ToLower(c.Input.Encoding) {
	case "", "utf-8", "utf8", "raw":
		return nil, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp437", "ibm437":
		return charmap.CodePage437, nil
	default:
		return nil, errors.Errorf("unsupported input encoding %q", c.Input.Encoding)
	}
}

// CmdLine renders the console settings as a boot command line. Colors that
// fail to parse or match the console defaults are omitted.
func (c *Config) CmdLine() string {
	var parts []string

	if fg, bg, err := c.Colors(); err == nil {
		if fg != 0xFFFFFF {
			parts = append(parts, fmt.Sprintf("consoleFg=%06x", fg))
		}
		if bg != 0x000000 {
			parts = append(parts, fmt.Sprintf("consoleBg=%06x", bg))
		}
	}

	if c.Framebuffer.Font != "" {
		parts = append(parts, "consoleFont="+c.Framebuffer.Font)
	}

	if c.Framebuffer.FontHeight != 0 {
		parts = append(parts, "consoleFontHeight="+strconv.FormatUint(uint64(c.Framebuffer.FontHeight), 10))
	}

	if !c.Console.Logo {
		parts = append(parts, "consoleLogo=off")
	}

	return strings.Join(parts, " ")
}
