// Package countdown shows 9 down to 0 on the 7-segment port, one digit per second
package countdown

import (
	"time"

	"github.com/calvinmclean/pushpull/firmware/hal"
)

// Step is one digit of the countdown
type Step struct {
	Pattern byte
	Digit   int
	Hold    time.Duration
}

// Steps is the full countdown, 9 first
var Steps = [10]Step{
	{0x6F, 9, time.Second},
	{0x7F, 8, time.Second},
	{0x07, 7, time.Second},
	{0x7D, 6, time.Second},
	{0x6D, 5, time.Second},
	{0x66, 4, time.Second},
	{0x4F, 3, time.Second},
	{0x5B, 2, time.Second},
	{0x06, 1, time.Second},
	{0x3F, 0, time.Second},
}

// Indicator runs the countdown on a port it shares with the reset button
type Indicator struct {
	port  hal.SegmentPort
	sleep hal.Sleeper
}

func New(port hal.SegmentPort, sleep hal.Sleeper) *Indicator {
	return &Indicator{port: port, sleep: sleep}
}

// Run blocks for the whole countdown. The port is switched to all outputs while it runs and
// then back to DirectionResetInput, otherwise the reset button can no longer be read
func (i *Indicator) Run() {
	i.port.SetCountdownDirection(hal.DirectionAllOutput)

	for _, s := range Steps {
		i.port.SetCountdownPort(s.Pattern)
		i.sleep.Sleep(s.Hold)
	}

	i.port.SetCountdownDirection(hal.DirectionResetInput)
}

// Duration is the total time Run blocks for
func Duration() time.Duration {
	var total time.Duration
	for _, s := range Steps {
		total += s.Hold
	}
	return total
}

// Digit decodes a countdown pattern
func Digit(pattern byte) (int, bool) {
	for _, s := range Steps {
		if s.Pattern == pattern {
			return s.Digit, true
		}
	}
	return 0, false
}
