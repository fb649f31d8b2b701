//go:build arduino_mega2560

package main

import (
	"machine"

	"github.com/calvinmclean/pushpull/firmware/device"
)

var pinConfig = device.PinConfig{
	Motor: [4]machine.Pin{machine.D22, machine.D23, machine.D24, machine.D25},

	LCDRS: machine.D26,
	LCDEN: machine.D27,
	LCDData: [8]machine.Pin{
		machine.D37, machine.D36, machine.D35, machine.D34,
		machine.D33, machine.D32, machine.D31, machine.D30,
	},

	Button1: machine.D28,
	Button2: machine.D29,

	// D42-D49 are all of PORTL so the countdown stays on one port
	Countdown: [8]machine.Pin{
		machine.D49, machine.D48, machine.D47, machine.D46,
		machine.D45, machine.D44, machine.D43, machine.D42,
	},
}
