package font

func init() {
	availableFonts = append(availableFonts, &Font8x8Basic)
}

// Font8x8Basic is an 8x8 public domain font covering the ASCII range. Control
// characters and DEL map to blank glyphs.
var Font8x8Basic = Font{
	Name:              "font8x8-basic",
	GlyphWidth:        8,
	GlyphHeight:       8,
	RecommendedWidth:  640,
	RecommendedHeight: 480,
	Priority:          0,
	BytesPerRow:       1,
	LSBFirst:          true,
	Data: []byte{
		// 0x00 - 0x1f: control characters
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x20 ' '
		0x18, 0x3c, 0x3c, 0x18, 0x18, 0x00, 0x18, 0x00, // 0x21 '!'
		0x36, 0x36, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x22 '"'
		0x36, 0x36, 0x7f, 0x36, 0x7f, 0x36, 0x36, 0x00, // 0x23 '#'
		0x0c, 0x3e, 0x03, 0x1e, 0x30, 0x1f, 0x0c, 0x00, // 0x24 '$'
		0x00, 0x63, 0x33, 0x18, 0x0c, 0x66, 0x63, 0x00, // 0x25 '%'
		0x1c, 0x36, 0x1c, 0x6e, 0x3b, 0x33, 0x6e, 0x00, // 0x26 '&'
		0x06, 0x06, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x27 '\''
		0x18, 0x0c, 0x06, 0x06, 0x06, 0x0c, 0x18, 0x00, // 0x28 '('
		0x06, 0x0c, 0x18, 0x18, 0x18, 0x0c, 0x06, 0x00, // 0x29 ')'
		0x00, 0x66, 0x3c, 0xff, 0x3c, 0x66, 0x00, 0x00, // 0x2a '*'
		0x00, 0x0c, 0x0c, 0x3f, 0x0c, 0x0c, 0x00, 0x00, // 0x2b '+'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x0c, 0x06, // 0x2c ','
		0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x00, 0x00, // 0x2d '-'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00, // 0x2e '.'
		0x60, 0x30, 0x18, 0x0c, 0x06, 0x03, 0x01, 0x00, // 0x2f '/'
		0x3e, 0x63, 0x73, 0x7b, 0x6f, 0x67, 0x3e, 0x00, // 0x30 '0'
		0x0c, 0x0e, 0x0c, 0x0c, 0x0c, 0x0c, 0x3f, 0x00, // 0x31 '1'
		0x1e, 0x33, 0x30, 0x1c, 0x06, 0x33, 0x3f, 0x00, // 0x32 '2'
		0x1e, 0x33, 0x30, 0x1c, 0x30, 0x33, 0x1e, 0x00, // 0x33 '3'
		0x38, 0x3c, 0x36, 0x33, 0x7f, 0x30, 0x78, 0x00, // 0x34 '4'
		0x3f, 0x03, 0x1f, 0x30, 0x30, 0x33, 0x1e, 0x00, // 0x35 '5'
		0x1c, 0x06, 0x03, 0x1f, 0x33, 0x33, 0x1e, 0x00, // 0x36 '6'
		0x3f, 0x33, 0x30, 0x18, 0x0c, 0x0c, 0x0c, 0x00, // 0x37 '7'
		0x1e, 0x33, 0x33, 0x1e, 0x33, 0x33, 0x1e, 0x00, // 0x38 '8'
		0x1e, 0x33, 0x33, 0x3e, 0x30, 0x18, 0x0e, 0x00, // 0x39 '9'
		0x00, 0x0c, 0x0c, 0x00, 0x00, 0x0c, 0x0c, 0x00, // 0x3a ':'
		0x00, 0x0c, 0x0c, 0x00, 0x00, 0x0c, 0x0c, 0x06, // 0x3b ';'
		0x18, 0x0c, 0x06, 0x03, 0x06, 0x0c, 0x18, 0x00, // 0x3c '<'
		0x00, 0x00, 0x3f, 0x00, 0x00, 0x3f, 0x00, 0x00, // 0x3d '='
		0x06, 0x0c, 0x18, 0x30, 0x18, 0x0c, 0x06, 0x00, // 0x3e '>'
		0x1e, 0x33, 0x30, 0x18, 0x0c, 0x00, 0x0c, 0x00, // 0x3f '?'
		0x3e, 0x63, 0x7b, 0x7b, 0x7b, 0x03, 0x1e, 0x00, // 0x40 '@'
		0x0c, 0x1e, 0x33, 0x33, 0x3f, 0x33, 0x33, 0x00, // 0x41 'A'
		0x3f, 0x66, 0x66, 0x3e, 0x66, 0x66, 0x3f, 0x00, // 0x42 'B'
		0x3c, 0x66, 0x03, 0x03, 0x03, 0x66, 0x3c, 0x00, // 0x43 'C'
		0x1f, 0x36, 0x66, 0x66, 0x66, 0x36, 0x1f, 0x00, // 0x44 'D'
		0x7f, 0x46, 0x16, 0x1e, 0x16, 0x46, 0x7f, 0x00, // 0x45 'E'
		0x7f, 0x46, 0x16, 0x1e, 0x16, 0x06, 0x0f, 0x00, // 0x46 'F'
		0x3c, 0x66, 0x03, 0x03, 0x73, 0x66, 0x7c, 0x00, // 0x47 'G'
		0x33, 0x33, 0x33, 0x3f, 0x33, 0x33, 0x33, 0x00, // 0x48 'H'
		0x1e, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x1e, 0x00, // 0x49 'I'
		0x78, 0x30, 0x30, 0x30, 0x33, 0x33, 0x1e, 0x00, // 0x4a 'J'
		0x67, 0x66, 0x36, 0x1e, 0x36, 0x66, 0x67, 0x00, // 0x4b 'K'
		0x0f, 0x06, 0x06, 0x06, 0x46, 0x66, 0x7f, 0x00, // 0x4c 'L'
		0x63, 0x77, 0x7f, 0x7f, 0x6b, 0x63, 0x63, 0x00, // 0x4d 'M'
		0x63, 0x67, 0x6f, 0x7b, 0x73, 0x63, 0x63, 0x00, // 0x4e 'N'
		0x1c, 0x36, 0x63, 0x63, 0x63, 0x36, 0x1c, 0x00, // 0x4f 'O'
		0x3f, 0x66, 0x66, 0x3e, 0x06, 0x06, 0x0f, 0x00, // 0x50 'P'
		0x1e, 0x33, 0x33, 0x33, 0x3b, 0x1e, 0x38, 0x00, // 0x51 'Q'
		0x3f, 0x66, 0x66, 0x3e, 0x36, 0x66, 0x67, 0x00, // 0x52 'R'
		0x1e, 0x33, 0x07, 0x0e, 0x38, 0x33, 0x1e, 0x00, // 0x53 'S'
		0x3f, 0x2d, 0x0c, 0x0c, 0x0c, 0x0c, 0x1e, 0x00, // 0x54 'T'
		0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0x3f, 0x00, // 0x55 'U'
		0x33, 0x33, 0x33, 0x33, 0x33, 0x1e, 0x0c, 0x00, // 0x56 'V'
		0x63, 0x63, 0x63, 0x6b, 0x7f, 0x77, 0x63, 0x00, // 0x57 'W'
		0x63, 0x63, 0x36, 0x1c, 0x1c, 0x36, 0x63, 0x00, // 0x58 'X'
		0x33, 0x33, 0x33, 0x1e, 0x0c, 0x0c, 0x1e, 0x00, // 0x59 'Y'
		0x7f, 0x63, 0x31, 0x18, 0x4c, 0x66, 0x7f, 0x00, // 0x5a 'Z'
		0x1e, 0x06, 0x06, 0x06, 0x06, 0x06, 0x1e, 0x00, // 0x5b '['
		0x03, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x40, 0x00, // 0x5c '\\'
		0x1e, 0x18, 0x18, 0x18, 0x18, 0x18, 0x1e, 0x00, // 0x5d ']'
		0x08, 0x1c, 0x36, 0x63, 0x00, 0x00, 0x00, 0x00, // 0x5e '^'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, // 0x5f '_'
		0x0c, 0x0c, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x60 '`'
		0x00, 0x00, 0x1e, 0x30, 0x3e, 0x33, 0x6e, 0x00, // 0x61 'a'
		0x07, 0x06, 0x06, 0x3e, 0x66, 0x66, 0x3b, 0x00, // 0x62 'b'
		0x00, 0x00, 0x1e, 0x33, 0x03, 0x33, 0x1e, 0x00, // 0x63 'c'
		0x38, 0x30, 0x30, 0x3e, 0x33, 0x33, 0x6e, 0x00, // 0x64 'd'
		0x00, 0x00, 0x1e, 0x33, 0x3f, 0x03, 0x1e, 0x00, // 0x65 'e'
		0x1c, 0x36, 0x06, 0x0f, 0x06, 0x06, 0x0f, 0x00, // 0x66 'f'
		0x00, 0x00, 0x6e, 0x33, 0x33, 0x3e, 0x30, 0x1f, // 0x67 'g'
		0x07, 0x06, 0x36, 0x6e, 0x66, 0x66, 0x67, 0x00, // 0x68 'h'
		0x0c, 0x00, 0x0e, 0x0c, 0x0c, 0x0c, 0x1e, 0x00, // 0x69 'i'
		0x30, 0x00, 0x30, 0x30, 0x30, 0x33, 0x33, 0x1e, // 0x6a 'j'
		0x07, 0x06, 0x66, 0x36, 0x1e, 0x36, 0x67, 0x00, // 0x6b 'k'
		0x0e, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x1e, 0x00, // 0x6c 'l'
		0x00, 0x00, 0x33, 0x7f, 0x7f, 0x6b, 0x63, 0x00, // 0x6d 'm'
		0x00, 0x00, 0x1f, 0x33, 0x33, 0x33, 0x33, 0x00, // 0x6e 'n'
		0x00, 0x00, 0x1e, 0x33, 0x33, 0x33, 0x1e, 0x00, // 0x6f 'o'
		0x00, 0x00, 0x3b, 0x66, 0x66, 0x3e, 0x06, 0x0f, // 0x70 'p'
		0x00, 0x00, 0x6e, 0x33, 0x33, 0x3e, 0x30, 0x78, // 0x71 'q'
		0x00, 0x00, 0x3b, 0x6e, 0x66, 0x06, 0x0f, 0x00, // 0x72 'r'
		0x00, 0x00, 0x3e, 0x03, 0x1e, 0x30, 0x1f, 0x00, // 0x73 's'
		0x08, 0x0c, 0x3e, 0x0c, 0x0c, 0x2c, 0x18, 0x00, // 0x74 't'
		0x00, 0x00, 0x33, 0x33, 0x33, 0x33, 0x6e, 0x00, // 0x75 'u'
		0x00, 0x00, 0x33, 0x33, 0x33, 0x1e, 0x0c, 0x00, // 0x76 'v'
		0x00, 0x00, 0x63, 0x6b, 0x7f, 0x7f, 0x36, 0x00, // 0x77 'w'
		0x00, 0x00, 0x63, 0x36, 0x1c, 0x36, 0x63, 0x00, // 0x78 'x'
		0x00, 0x00, 0x33, 0x33, 0x33, 0x3e, 0x30, 0x1f, // 0x79 'y'
		0x00, 0x00, 0x3f, 0x19, 0x0c, 0x26, 0x3f, 0x00, // 0x7a 'z'
		0x38, 0x0c, 0x0c, 0x07, 0x0c, 0x0c, 0x38, 0x00, // 0x7b '{'
		0x18, 0x18, 0x18, 0x00, 0x18, 0x18, 0x18, 0x00, // 0x7c '|'
		0x07, 0x0c, 0x0c, 0x38, 0x0c, 0x0c, 0x07, 0x00, // 0x7d '}'
		0x6e, 0x3b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x7e '~'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x7f DEL
	},
}
