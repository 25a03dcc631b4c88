package hal

// HID keyboard usage codes delivered in KeyEvent.Code.
const (
	KeyA         uint16 = 0x04
	Key1         uint16 = 0x1E
	Key0         uint16 = 0x27
	KeyEscape    uint16 = 0x29
	KeyBackspace uint16 = 0x2A
	KeyTab       uint16 = 0x2B
	KeyF1        uint16 = 0x3A
)
