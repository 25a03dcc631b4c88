package font6x8

// glyphData holds 128 glyphs of 6 column bytes each, indexed by ASCII code.
// Bit 0 of each byte is the top row of the cell.
var glyphData = [glyphCount * glyphWidth]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x00
	0x3c, 0x6a, 0x52, 0x6a, 0x3c, 0x00, // 0x01
	0x3c, 0x6a, 0x4e, 0x6a, 0x3c, 0x00, // 0x02
	0x18, 0x3c, 0x78, 0x3c, 0x18, 0x00, // 0x03
	0x10, 0x38, 0x7c, 0x38, 0x10, 0x00, // 0x04
	0x18, 0x5e, 0x6e, 0x5e, 0x18, 0x00, // 0x05
	0x30, 0x38, 0x5c, 0x38, 0x30, 0x00, // 0x06
	0x00, 0x18, 0x3c, 0x3c, 0x18, 0x00, // 0x07
	0xff, 0xe7, 0xc3, 0xc3, 0xe7, 0xff, // 0x08
	0x38, 0x44, 0x44, 0x44, 0x38, 0x00, // 0x09
	0xc7, 0xbb, 0xbb, 0xbb, 0xc7, 0xff, // 0x0a
	0x0c, 0x22, 0x72, 0x22, 0x0c, 0x00, // 0x0b
	0x30, 0x4a, 0x46, 0x4e, 0x30, 0x00, // 0x0c
	0x30, 0x4a, 0xe6, 0x4e, 0x30, 0x00, // 0x0d
	0x60, 0x7c, 0x0c, 0x6c, 0x7c, 0x00, // 0x0e
	0x54, 0x38, 0x6c, 0x38, 0x54, 0x00, // 0x0f
	0x7c, 0x7c, 0x38, 0x10, 0x00, 0x00, // 0x10
	0x00, 0x10, 0x38, 0x7c, 0x7c, 0x00, // 0x11
	0x24, 0x66, 0xff, 0x66, 0x24, 0x00, // 0x12
	0x00, 0x5e, 0x00, 0x5e, 0x00, 0x00, // 0x13
	0x0c, 0x12, 0x7e, 0x02, 0x7e, 0x00, // 0x14
	0x1c, 0x5a, 0x5a, 0x5a, 0x38, 0x00, // 0x15
	0x60, 0x60, 0x60, 0x60, 0x60, 0x00, // 0x16
	0x94, 0xb6, 0xff, 0xb6, 0x94, 0x00, // 0x17
	0x08, 0x7c, 0x7e, 0x7c, 0x08, 0x00, // 0x18
	0x10, 0x3e, 0x7e, 0x3e, 0x10, 0x00, // 0x19
	0x38, 0x38, 0x7c, 0x38, 0x10, 0x00, // 0x1a
	0x10, 0x38, 0x7c, 0x38, 0x38, 0x00, // 0x1b
	0x38, 0x20, 0x20, 0x20, 0x20, 0x00, // 0x1c
	0x1c, 0x3e, 0x08, 0x3e, 0x1c, 0x00, // 0x1d
	0x60, 0x70, 0x78, 0x70, 0x60, 0x00, // 0x1e
	0x06, 0x0e, 0x1e, 0x0e, 0x06, 0x00, // 0x1f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // ' '
	0x00, 0x6e, 0x6e, 0x00, 0x00, 0x00, // '!'
	0x06, 0x0e, 0x00, 0x0e, 0x06, 0x00, // '"'
	0x14, 0x3e, 0x14, 0x3e, 0x14, 0x00, // '#'
	0x58, 0x54, 0x7e, 0x54, 0x34, 0x00, // '$'
	0x66, 0x36, 0x18, 0x6c, 0x66, 0x00, // '%'
	0x34, 0x4a, 0x5a, 0x34, 0x50, 0x00, // '&'
	0x00, 0x08, 0x0e, 0x06, 0x00, 0x00, // "'"
	0x00, 0x3c, 0x66, 0x42, 0x00, 0x00, // '('
	0x00, 0x42, 0x66, 0x3c, 0x00, 0x00, // ')'
	0x2a, 0x1c, 0x3e, 0x1c, 0x2a, 0x00, // '*'
	0x00, 0x08, 0x1c, 0x08, 0x00, 0x00, // '+'
	0x00, 0x80, 0xe0, 0x60, 0x00, 0x00, // ','
	0x08, 0x08, 0x08, 0x08, 0x08, 0x00, // '-'
	0x00, 0x00, 0x60, 0x60, 0x00, 0x00, // '.'
	0x60, 0x30, 0x18, 0x0c, 0x06, 0x00, // '/'
	0x38, 0x44, 0x44, 0x44, 0x38, 0x00, // '0'
	0x00, 0x44, 0x7c, 0x40, 0x00, 0x00, // '1'
	0x74, 0x54, 0x54, 0x54, 0x5c, 0x00, // '2'
	0x54, 0x54, 0x54, 0x54, 0x7c, 0x00, // '3'
	0x30, 0x28, 0x24, 0x7c, 0x20, 0x00, // '4'
	0x5c, 0x54, 0x54, 0x54, 0x74, 0x00, // '5'
	0x7c, 0x54, 0x54, 0x54, 0x74, 0x00, // '6'
	0x04, 0x44, 0x24, 0x14, 0x0c, 0x00, // '7'
	0x7c, 0x54, 0x54, 0x54, 0x7c, 0x00, // '8'
	0x5c, 0x54, 0x54, 0x54, 0x7c, 0x00, // '9'
	0x00, 0x00, 0x6c, 0x6c, 0x00, 0x00, // ':'
	0x00, 0x80, 0xec, 0x6c, 0x00, 0x00, // ';'
	0x10, 0x38, 0x6c, 0x44, 0x00, 0x00, // '<'
	0x28, 0x28, 0x28, 0x28, 0x28, 0x00, // '='
	0x00, 0x44, 0x6c, 0x38, 0x10, 0x00, // '>'
	0x04, 0x02, 0x52, 0x12, 0x0c, 0x00, // '?'
	0x3c, 0x42, 0x5a, 0x5a, 0x1c, 0x00, // '@'
	0x7c, 0x14, 0x14, 0x14, 0x7c, 0x00, // 'A'
	0x7c, 0x54, 0x54, 0x54, 0x38, 0x00, // 'B'
	0x7c, 0x44, 0x44, 0x44, 0x44, 0x00, // 'C'
	0x7c, 0x44, 0x44, 0x44, 0x38, 0x00, // 'D'
	0x7c, 0x54, 0x54, 0x54, 0x54, 0x00, // 'E'
	0x7c, 0x14, 0x14, 0x14, 0x14, 0x00, // 'F'
	0x7c, 0x44, 0x54, 0x54, 0x74, 0x00, // 'G'
	0x7c, 0x10, 0x10, 0x10, 0x7c, 0x00, // 'H'
	0x00, 0x44, 0x7c, 0x44, 0x00, 0x20, // 'I'
	0x40, 0x44, 0x44, 0x3c, 0x00, 0x00, // 'J'
	0x7c, 0x10, 0x10, 0x28, 0x44, 0x00, // 'K'
	0x7c, 0x40, 0x40, 0x40, 0x40, 0x00, // 'L'
	0x7c, 0x08, 0x10, 0x08, 0x7c, 0x00, // 'M'
	0x7c, 0x08, 0x10, 0x20, 0x7c, 0x00, // 'N'
	0x7c, 0x44, 0x44, 0x44, 0x7c, 0x00, // 'O'
	0x7c, 0x14, 0x14, 0x14, 0x1c, 0x00, // 'P'
	0x7c, 0x44, 0x44, 0x64, 0x7c, 0x00, // 'Q'
	0x7c, 0x14, 0x14, 0x74, 0x5c, 0x00, // 'R'
	0x5c, 0x54, 0x54, 0x54, 0x74, 0x00, // 'S'
	0x04, 0x04, 0x7c, 0x04, 0x04, 0x00, // 'T'
	0x7c, 0x40, 0x40, 0x40, 0x7c, 0x00, // 'U'
	0x1c, 0x20, 0x40, 0x20, 0x1c, 0x00, // 'V'
	0x3c, 0x40, 0x3c, 0x40, 0x3c, 0x00, // 'W'
	0x44, 0x28, 0x10, 0x28, 0x44, 0x00, // 'X'
	0x0c, 0x10, 0x60, 0x10, 0x0c, 0x00, // 'Y'
	0x44, 0x64, 0x54, 0x4c, 0x44, 0x00, // 'Z'
	0x00, 0x7e, 0x42, 0x42, 0x00, 0x00, // '['
	0x06, 0x0c, 0x18, 0x30, 0x60, 0x00, // '\\'
	0x00, 0x42, 0x42, 0x7e, 0x00, 0x00, // ']'
	0x04, 0x06, 0x03, 0x06, 0x04, 0x00, // '^'
	0x40, 0x40, 0x40, 0x40, 0x40, 0x00, // '_'
	0x00, 0x03, 0x07, 0x04, 0x00, 0x00, // '`'
	0x7c, 0x14, 0x14, 0x14, 0x7c, 0x00, // 'a'
	0x7c, 0x54, 0x54, 0x54, 0x38, 0x00, // 'b'
	0x7c, 0x44, 0x44, 0x44, 0x44, 0x00, // 'c'
	0x7c, 0x44, 0x44, 0x44, 0x38, 0x00, // 'd'
	0x7c, 0x54, 0x54, 0x54, 0x54, 0x00, // 'e'
	0x7c, 0x14, 0x14, 0x14, 0x14, 0x00, // 'f'
	0x7c, 0x44, 0x54, 0x54, 0x74, 0x00, // 'g'
	0x7c, 0x10, 0x10, 0x10, 0x7c, 0x00, // 'h'
	0x00, 0x44, 0x7c, 0x44, 0x00, 0x20, // 'i'
	0x40, 0x44, 0x44, 0x3c, 0x00, 0x00, // 'j'
	0x7c, 0x10, 0x10, 0x28, 0x44, 0x00, // 'k'
	0x7c, 0x40, 0x40, 0x40, 0x40, 0x00, // 'l'
	0x7c, 0x08, 0x10, 0x08, 0x7c, 0x00, // 'm'
	0x7c, 0x08, 0x10, 0x20, 0x7c, 0x00, // 'n'
	0x7c, 0x44, 0x44, 0x44, 0x7c, 0x00, // 'o'
	0x7c, 0x14, 0x14, 0x14, 0x1c, 0x00, // 'p'
	0x7c, 0x44, 0x44, 0x64, 0x7c, 0x00, // 'q'
	0x7c, 0x14, 0x14, 0x74, 0x5c, 0x00, // 'r'
	0x5c, 0x54, 0x54, 0x54, 0x74, 0x00, // 's'
	0x04, 0x04, 0x7c, 0x04, 0x04, 0x00, // 't'
	0x7c, 0x40, 0x40, 0x40, 0x7c, 0x00, // 'u'
	0x1c, 0x20, 0x40, 0x20, 0x1c, 0x00, // 'v'
	0x3c, 0x40, 0x3c, 0x40, 0x3c, 0x00, // 'w'
	0x44, 0x28, 0x10, 0x28, 0x44, 0x00, // 'x'
	0x0c, 0x10, 0x60, 0x10, 0x0c, 0x00, // 'y'
	0x44, 0x64, 0x54, 0x4c, 0x44, 0x00, // 'z'
	0x00, 0x18, 0x66, 0x42, 0x00, 0x00, // '{'
	0x00, 0x00, 0x66, 0x00, 0x00, 0x00, // '|'
	0x00, 0x42, 0x66, 0x18, 0x00, 0x00, // '}'
	0x0c, 0x06, 0x06, 0x0c, 0x06, 0x00, // '~'
	0x70, 0x48, 0x44, 0x48, 0x70, 0x00, // 0x7f
}
