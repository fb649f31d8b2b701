// Package hal describes the pins and delays the firmware needs from the board. The TinyGo
// device implements it on real pins and the sim package implements it for tests.
package hal

import (
	"time"

	"github.com/calvinmclean/pushpull"
)

// LCDPins are the levels of the LCD's control lines and 8-bit data bus
type LCDPins struct {
	RS   bool
	EN   bool
	Data byte
}

// Direction masks for the countdown port. A set bit is an input
const (
	DirectionAllOutput byte = 0x00
	// DirectionResetInput keeps bit 3 of the countdown port readable as the reset button
	DirectionResetInput byte = 0x08
)

type MotorPort interface {
	// SetMotorPins writes all four coil lines at once
	SetMotorPins(pushpull.MotorPins)
}

type LCDPort interface {
	SetLCDPins(LCDPins)
}

type SegmentPort interface {
	SetCountdownPort(byte)
	SetCountdownDirection(byte)
}

type Inputs interface {
	ReadButtons() pushpull.Buttons
}

// Sleeper blocks for a duration. All delays go through this so tests can use logical time
type Sleeper interface {
	Sleep(time.Duration)
}

// Hardware is everything the control loop touches
type Hardware interface {
	MotorPort
	LCDPort
	SegmentPort
	Inputs
	Sleeper
}
