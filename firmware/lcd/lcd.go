package lcd

import (
	"time"

	"github.com/calvinmclean/pushpull/firmware/hal"
)

// Commands used by the panel
const (
	CommandClear       byte = 0x01
	CommandFunctionSet byte = 0x38 // 8-bit bus, 2 lines, 5x7 font
	CommandDisplayOn   byte = 0x0C // display on, cursor off
	CommandEntryMode   byte = 0x06 // increment after each character
	CommandLine1       byte = 0x80
	CommandLine2       byte = 0xC0
)

const (
	strobeDelay        = 2 * time.Millisecond
	powerUpDelay       = 20 * time.Millisecond
	clearSettlingDelay = 2 * time.Millisecond
)

// Display drives a character LCD over an 8-bit parallel bus
type Display struct {
	port  hal.LCDPort
	sleep hal.Sleeper
}

func New(port hal.LCDPort, sleep hal.Sleeper) *Display {
	return &Display{port: port, sleep: sleep}
}

// Initialize runs the power-up sequence. It must be called once before anything else
func (d *Display) Initialize() {
	d.sleep.Sleep(powerUpDelay)
	d.Command(CommandFunctionSet)
	d.Command(CommandDisplayOn)
	d.Command(CommandEntryMode)
	d.Command(CommandClear)
	d.sleep.Sleep(clearSettlingDelay)
}

// Command sends a command byte
func (d *Display) Command(b byte) {
	d.write(false, b)
}

// WriteChar sends a character byte to the current cursor position
func (d *Display) WriteChar(b byte) {
	d.write(true, b)
}

// Print writes each byte of text in order. A NUL byte ends the text
func (d *Display) Print(text string) {
	for i := 0; i < len(text); i++ {
		if text[i] == 0 {
			return
		}
		d.WriteChar(text[i])
	}
}

// Clear empties the display and moves the cursor home
func (d *Display) Clear() {
	d.Command(CommandClear)
}

// SetCursor moves the cursor to a column of the first (row 0) or second (row 1) line
func (d *Display) SetCursor(row, col byte) {
	base := CommandLine1
	if row > 0 {
		base = CommandLine2
	}
	d.Command(base | col)
}

// write selects the register, puts b on the bus and strobes EN high then low
func (d *Display) write(rs bool, b byte) {
	d.port.SetLCDPins(hal.LCDPins{RS: rs, EN: false, Data: b})
	d.port.SetLCDPins(hal.LCDPins{RS: rs, EN: true, Data: b})
	d.sleep.Sleep(strobeDelay)
	d.port.SetLCDPins(hal.LCDPins{RS: rs, EN: false, Data: b})
	d.sleep.Sleep(strobeDelay)
}
