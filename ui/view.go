package ui

import (
	"fmt"
	"time"

	"github.com/calvinmclean/pushpull/firmware/countdown"
	"github.com/calvinmclean/pushpull/firmware/hal"
	"github.com/calvinmclean/pushpull/firmware/motor"
	"github.com/calvinmclean/pushpull/firmware/sim"
)

// view is the text shown for one Snapshot
type view struct {
	line1  string
	line2  string
	digit  string
	motor  string
	uptime string
}

func newView(s sim.Snapshot) view {
	return view{
		line1:  s.Lines[0],
		line2:  s.Lines[1],
		digit:  digitText(s.Segment, s.Direction),
		motor:  motorText(s),
		uptime: uptimeText(s.Now),
	}
}

// digitText is blank unless the port is driving a countdown pattern
func digitText(segment, direction byte) string {
	if direction != hal.DirectionAllOutput {
		return " "
	}
	d, ok := countdown.Digit(segment)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%d", d)
}

func motorText(s sim.Snapshot) string {
	state, ok := motor.StateOf(s.Motor)
	if !ok {
		return fmt.Sprintf("Invalid %v", s.Motor)
	}
	return state.String()
}

func uptimeText(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
