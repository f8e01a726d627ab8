package console

import "math"

// ansiState defines the states of the ANSI escape sequence parser.
type ansiState uint8

const (
	// stateNormal passes bytes through as text.
	stateNormal ansiState = iota

	// stateEscape is entered after ESC (0x1b).
	stateEscape

	// stateCSI is entered after ESC '['. Digits accumulate into the
	// parser's numeric parameter.
	stateCSI
)

const (
	asciiEsc = 0x1b

	// tabStop is the column multiple that tabs advance to.
	tabStop = 4
)

// ansiParser holds the incremental parser state. It is part of the console
// state so that escape sequences split across writes are handled.
type ansiParser struct {
	state ansiState
	param uint8
}

// reset returns the parser to its initial state.
func (p *ansiParser) reset() {
	p.state = stateNormal
	p.param = 0
}

// accumulate appends a decimal digit to the current parameter, saturating at
// math.MaxUint8.
func (p *ansiParser) accumulate(digit byte) {
	if next := uint16(p.param)*10 + uint16(digit-'0'); next <= math.MaxUint8 {
		p.param = uint8(next)
		return
	}
	p.param = math.MaxUint8
}

// interpret feeds b through the ANSI state machine. It is shared by the live
// write path and by history replay and never touches the history buffer.
func (cons *FbConsole) interpret(b byte) {
	switch cons.parser.state {
	case stateNormal:
		switch b {
		case asciiEsc:
			cons.parser.state = stateEscape
		case '\n':
			cons.lf()
		case '\r':
			cons.cursorX = 0
		case '\t':
			for spaces := tabStop - cons.cursorX%tabStop; spaces > 0; spaces-- {
				cons.emit(' ')
			}
		default:
			cons.emit(b)
		}
	case stateEscape:
		if b == '[' {
			cons.parser.state = stateCSI
			cons.parser.param = 0
			return
		}

		// Unsupported escape; the byte is dropped.
		cons.parser.state = stateNormal
	case stateCSI:
		switch {
		case b >= '0' && b <= '9':
			cons.parser.accumulate(b)
		case b == ';':
			cons.applySGR(cons.parser.param)
			cons.parser.param = 0
		case b == 'm':
			cons.applySGR(cons.parser.param)
			cons.parser.reset()
		default:
			// Only SGR sequences are supported. Any other final
			// byte aborts the sequence.
			cons.parser.reset()
		}
	}
}

// applySGR applies a single Select Graphic Rendition parameter. Unsupported
// parameters are ignored.
func (cons *FbConsole) applySGR(code uint8) {
	switch code {
	case 0:
		cons.fg, cons.bg = cons.defaultFg, cons.defaultBg
	case 1:
		// bold; accepted but currently rendered with the normal color
	case 39:
		cons.fg = cons.defaultFg
	case 49:
		cons.bg = cons.defaultBg
	default:
		rgb, ok := SGRColor(code)
		if !ok {
			return
		}

		if isForegroundSGR(code) {
			cons.fg = rgb
		} else {
			cons.bg = rgb
		}
	}
}
