// Package hal brings up the framebuffer console from a framebuffer
// description and a boot command line.
package hal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"simplefb/device"
	"simplefb/device/video/console"
	"simplefb/device/video/console/font"
	"simplefb/device/video/console/logo"
	"simplefb/kernel"
	"simplefb/kernel/kfmt"
)

// Boot command line keys understood by InitConsole.
const (
	// CmdLineFont selects a font by name.
	CmdLineFont = "consoleFont"

	// CmdLineFontHeight sets the console cell size in pixels.
	CmdLineFontHeight = "consoleFontHeight"

	// CmdLineLogo disables the boot logo when set to "off".
	CmdLineLogo = "consoleLogo"

	// CmdLineFg and CmdLineBg set the default console colors as RRGGBB
	// hex values.
	CmdLineFg = "consoleFg"
	CmdLineBg = "consoleBg"
)

// managedDevices contains the devices brought up by the HAL.
type managedDevices struct {
	activeConsole *console.FbConsole

	// activeDrivers tracks all initialized device drivers.
	activeDrivers []device.Driver
}

var devices managedDevices

// ActiveConsole returns the console initialized by the last successful call
// to InitConsole or nil.
func ActiveConsole() *console.FbConsole {
	return devices.activeConsole
}

// DriverList returns the drivers initialized by the HAL in initialization
// order.
func DriverList() []device.Driver {
	return append([]device.Driver(nil), devices.activeDrivers...)
}

// ParseCmdLine splits a boot command line into key/value pairs. Entries are
// separated by whitespace and use the form "key=value"; a bare "key" maps to
// itself. Entries with more than one '=' are ignored.
func ParseCmdLine(cmdLine string) map[string]string {
	kv := make(map[string]string)

	for _, pair := range strings.Fields(cmdLine) {
		parts := strings.Split(pair, "=")
		switch len(parts) {
		case 2: // foo=bar
			kv[parts[0]] = parts[1]
		case 1: // nofoo
			kv[parts[0]] = parts[0]
		}
	}

	return kv
}

// InitConsole creates a console for fb that records up to historySize bytes,
// applies the font and logo settings from cmdLine and initializes the console
// driver. Driver output is written to w with a "[hal] name(version): " prefix
// on every line.
func InitConsole(fb *console.Framebuffer, cmdLine map[string]string, historySize int, w io.Writer) (*console.FbConsole, *kernel.Error) {
	cons := console.NewFbConsole(fb, fontHeight(cmdLine), kfmt.NewRingBuffer(historySize))
	cons.SetFont(selectFont(fb, cmdLine))

	fg, bg := cons.DefaultColors()
	cons.SetDefaultColors(hexColor(cmdLine, CmdLineFg, fg), hexColor(cmdLine, CmdLineBg, bg))

	pw := &kfmt.PrefixWriter{
		Sink:   w,
		Prefix: []byte("[hal] " + device.Describe(cons) + ": "),
	}

	if err := cons.DriverInit(pw); err != nil {
		fmt.Fprintf(pw, "init failed: %s\n", err.Message)
		return nil, err
	}

	fmt.Fprintf(pw, "initialized\n")
	devices.activeConsole = cons
	devices.activeDrivers = append(devices.activeDrivers, cons)

	if cmdLine[CmdLineLogo] != "off" {
		drawLogo(cons)
	}

	return cons, nil
}

// fontHeight returns the requested cell size or 0 if the command line does
// not contain a valid one.
func fontHeight(cmdLine map[string]string) uint32 {
	v, ok := cmdLine[CmdLineFontHeight]
	if !ok {
		return 0
	}

	height, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}

	return uint32(height)
}

// hexColor returns the RRGGBB color stored under key or def if the key is
// missing or malformed.
func hexColor(cmdLine map[string]string, key string, def uint32) uint32 {
	v, ok := cmdLine[key]
	if !ok || len(v) != 6 {
		return def
	}

	rgb, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return def
	}

	return uint32(rgb)
}

// selectFont returns the font requested on the command line or the best fit
// for the framebuffer dimensions.
func selectFont(fb *console.Framebuffer, cmdLine map[string]string) *font.Font {
	if name, ok := cmdLine[CmdLineFont]; ok {
		if f := font.FindByName(name); f != nil {
			return f
		}
	}

	return font.BestFit(fb.Width, fb.Height)
}

// drawLogo draws the best fitting logo at the top of the console and moves
// the cursor below it.
func drawLogo(cons *console.FbConsole) {
	consW, consH := cons.Dimensions(console.Pixels)
	l := logo.BestFit(consW, consH)
	if l == nil {
		return
	}

	l.Draw(cons)

	cellSize := cons.FontHeight()
	for rows := (l.Height + cellSize - 1) / cellSize; rows > 0; rows-- {
		cons.WriteByte('\n')
	}
}
