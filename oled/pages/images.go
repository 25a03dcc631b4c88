package pages

import "oledkb/oled/fb"

// Logo is the 64×48 startup splash.
var Logo = fb.Bitmap{
	Width:  64,
	Height: 48,
	Bytes: []byte{
		0xf8, 0xff, 0xff, 0xff, 0xff, 0x1f,
		0xfc, 0xff, 0xff, 0xff, 0xff, 0x3f,
		0x02, 0x00, 0x00, 0x00, 0x00, 0x40,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0xfe, 0x07, 0x00, 0x00, 0xc0,
		0x03, 0xfe, 0x07, 0x00, 0x00, 0xc0,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0xfe, 0x07, 0x00, 0x00, 0xc4,
		0x03, 0xfe, 0x07, 0x00, 0x00, 0xc4,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc4,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc4,
		0x03, 0xfe, 0x07, 0xf0, 0x3f, 0xc4,
		0x03, 0xfe, 0x07, 0xf0, 0x3f, 0xc4,
		0x03, 0x00, 0x06, 0x00, 0x03, 0xc4,
		0x03, 0x00, 0x06, 0x00, 0x03, 0xc4,
		0x03, 0x00, 0x06, 0x00, 0x03, 0xc4,
		0x03, 0x00, 0x06, 0x00, 0x03, 0xc4,
		0x03, 0x00, 0x06, 0xc0, 0x0c, 0xc4,
		0x03, 0x00, 0x06, 0xc0, 0x0c, 0xc4,
		0x03, 0x00, 0x06, 0x30, 0x30, 0xc4,
		0x03, 0x00, 0x06, 0x30, 0x30, 0xc4,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc4,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc4,
		0x03, 0xfe, 0x07, 0xf0, 0x3f, 0xc4,
		0x03, 0xfe, 0x07, 0xf0, 0x3f, 0xc4,
		0x03, 0x66, 0x06, 0x30, 0x33, 0xc4,
		0x03, 0x66, 0x06, 0x30, 0x33, 0xc4,
		0x03, 0x66, 0x06, 0x30, 0x33, 0xc4,
		0x03, 0x66, 0x06, 0x30, 0x33, 0xc4,
		0x03, 0x66, 0x06, 0x30, 0x33, 0xc4,
		0x03, 0x66, 0x06, 0x30, 0x33, 0xc4,
		0x03, 0x66, 0x06, 0xc0, 0x0f, 0xc4,
		0x03, 0x66, 0x06, 0xc0, 0x0f, 0xc4,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc4,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc4,
		0x03, 0xfe, 0x07, 0x00, 0x00, 0xc4,
		0x03, 0xfe, 0x07, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0x06, 0x06, 0x00, 0x00, 0xc4,
		0x03, 0xf8, 0x01, 0x00, 0x00, 0xc4,
		0x03, 0xf8, 0x01, 0x00, 0x00, 0xc4,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x03, 0x00, 0x00, 0x00, 0x00, 0xc0,
		0x02, 0x00, 0x00, 0x00, 0x00, 0x40,
		0xfc, 0xff, 0xff, 0xff, 0xff, 0x3f,
		0xf8, 0xff, 0xff, 0xff, 0xff, 0x1f,
	},
}

// rightArrow points right; leftArrow is its mirror.
var rightArrow = fb.Bitmap{
	Width:  5,
	Height: 7,
	Bytes: []byte{
		0x7f,
		0x3e,
		0x1c,
		0x08,
		0x00,
	},
}

var leftArrow = fb.Bitmap{
	Width:  5,
	Height: 7,
	Bytes: []byte{
		0x00,
		0x08,
		0x1c,
		0x3e,
		0x7f,
	},
}
