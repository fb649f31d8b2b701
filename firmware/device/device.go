//go:build tinygo

package device

import (
	"errors"
	"machine"
	"time"

	"github.com/calvinmclean/pushpull"
	"github.com/calvinmclean/pushpull/firmware/hal"
)

// resetBit is the countdown port bit that reads the reset button while it is an input
const resetBit = 3

// Device implements hal.Hardware on the board's pins
type Device struct {
	motor     [4]machine.Pin
	lcdRS     machine.Pin
	lcdEN     machine.Pin
	lcdData   [8]machine.Pin
	button1   machine.Pin
	button2   machine.Pin
	countdown [8]machine.Pin

	// direction is the countdown port direction mask, 1 is an input
	direction byte
}

var _ hal.Hardware = &Device{}

// New configures the motor, LCD and button pins. The countdown port is left as inputs until
// the first SetCountdownDirection
func New(cfg PinConfig) (*Device, error) {
	err := validate(cfg)
	if err != nil {
		return nil, errors.New("invalid pin config: " + err.Error())
	}

	d := &Device{
		motor:     cfg.Motor,
		lcdRS:     cfg.LCDRS,
		lcdEN:     cfg.LCDEN,
		lcdData:   cfg.LCDData,
		button1:   cfg.Button1,
		button2:   cfg.Button2,
		countdown: cfg.Countdown,
		direction: 0xFF,
	}

	outputs := append([]machine.Pin{d.lcdRS, d.lcdEN}, d.motor[:]...)
	outputs = append(outputs, d.lcdData[:]...)
	for _, p := range outputs {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	d.button1.Configure(machine.PinConfig{Mode: machine.PinInput})
	d.button2.Configure(machine.PinConfig{Mode: machine.PinInput})
	for _, p := range d.countdown {
		p.Configure(machine.PinConfig{Mode: machine.PinInput})
	}

	return d, nil
}

func validate(cfg PinConfig) error {
	pins := []machine.Pin{cfg.LCDRS, cfg.LCDEN, cfg.Button1, cfg.Button2}
	pins = append(pins, cfg.Motor[:]...)
	pins = append(pins, cfg.LCDData[:]...)
	pins = append(pins, cfg.Countdown[:]...)

	seen := map[machine.Pin]bool{}
	for _, p := range pins {
		if p == machine.NoPin {
			return errors.New("missing pin")
		}
		if seen[p] {
			return errors.New("pin used twice")
		}
		seen[p] = true
	}
	return nil
}

// SetMotorPins implements hal.MotorPort
func (d *Device) SetMotorPins(p pushpull.MotorPins) {
	for i := range 4 {
		d.motor[i].Set(p[i])
	}
}

// SetLCDPins implements hal.LCDPort. EN is written last so RS and the bus are stable first
func (d *Device) SetLCDPins(p hal.LCDPins) {
	d.lcdRS.Set(p.RS)
	for i := range 8 {
		d.lcdData[i].Set(p.Data&(1<<i) != 0)
	}
	d.lcdEN.Set(p.EN)
}

// SetCountdownPort implements hal.SegmentPort. Bits that are inputs are not driven
func (d *Device) SetCountdownPort(b byte) {
	for i := range 8 {
		if d.direction&(1<<i) != 0 {
			continue
		}
		d.countdown[i].Set(b&(1<<i) != 0)
	}
}

// SetCountdownDirection implements hal.SegmentPort
func (d *Device) SetCountdownDirection(mask byte) {
	for i := range 8 {
		mode := machine.PinOutput
		if mask&(1<<i) != 0 {
			mode = machine.PinInput
		}
		d.countdown[i].Configure(machine.PinConfig{Mode: mode})
	}
	d.direction = mask
}

// ReadButtons implements hal.Inputs
func (d *Device) ReadButtons() pushpull.Buttons {
	return pushpull.Buttons{
		Button1: d.button1.Get(),
		Button2: d.button2.Get(),
		Reset:   d.direction&hal.DirectionResetInput != 0 && d.countdown[resetBit].Get(),
	}
}

// Sleep implements hal.Sleeper
func (d *Device) Sleep(t time.Duration) {
	time.Sleep(t)
}
