//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"
	"time"

	"oledkb/oled/input"

	"tinygo.org/x/drivers/ssd1306"
)

const oledAddress = 0x3C

// New returns the keyboard controller HAL (RP2040/RP2350).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// OLED: I2C1 on GP14 (SDA) / GP15 (SCL), 400 kHz.
// Encoders: A/B/button on GP2/GP3/GP4 and GP5/GP6/GP7.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var disp Display
	oled, err := newOLED(machine.I2C1, machine.GP14, machine.GP15)
	if err == nil {
		disp = oled
	} else {
		logger.WriteLineString(fmt.Sprintf("hal: oled: %v", err))
		disp = nullDisplay{}
	}

	return &tinyGoHAL{
		logger: logger,
		disp:   disp,
		in: newPinInput([]*encoderPins{
			{a: machine.GP2, b: machine.GP3, button: machine.GP4, keycode: input.KeyEncoder0},
			{a: machine.GP5, b: machine.GP6, button: machine.GP7, keycode: input.KeyEncoder1},
		}, pollPeriod),
		t:     newTinyGoTime(framePeriod),
		flash: boardFlash(),
		sys:   boardSystem{},
	}
}

// oledDisplay hands frames to the panel controller. The driver's buffer uses
// the same page-major layout as the UI framebuffer.
type oledDisplay struct {
	dev *ssd1306.Device
}

func newOLED(bus *machine.I2C, sda, scl machine.Pin) (*oledDisplay, error) {
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       sda,
		SCL:       scl,
	}); err != nil {
		return nil, fmt.Errorf("i2c: %w", err)
	}
	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: oledAddress,
		Width:   oledWidth,
		Height:  oledHeight,
	})
	dev.ClearDisplay()
	return &oledDisplay{dev: dev}, nil
}

func (d *oledDisplay) Size() (int, int) { return oledWidth, oledHeight }

func (d *oledDisplay) Present(buf []byte) error {
	if err := d.dev.SetBuffer(buf); err != nil {
		return err
	}
	return d.dev.Display()
}
