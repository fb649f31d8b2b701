//go:build tinygo

package device

import "machine"

// PinConfig maps the panel's signals to board pins
type PinConfig struct {
	// Motor is coil A1, A2, B1, B2
	Motor [4]machine.Pin

	LCDRS   machine.Pin
	LCDEN   machine.Pin
	LCDData [8]machine.Pin

	Button1 machine.Pin
	Button2 machine.Pin

	// Countdown is the 7-segment port, bit 0 first. Bit 3 doubles as the reset button input
	Countdown [8]machine.Pin
}
