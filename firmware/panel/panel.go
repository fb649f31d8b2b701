// Package panel is the firmware's control loop. Each pass samples the buttons once, handles
// reset, then either runs the motor through a full countdown or stops it.
package panel

import (
	"time"

	"github.com/calvinmclean/pushpull"
	"github.com/calvinmclean/pushpull/firmware/countdown"
	"github.com/calvinmclean/pushpull/firmware/hal"
	"github.com/calvinmclean/pushpull/firmware/lcd"
	"github.com/calvinmclean/pushpull/firmware/motor"
)

const (
	textReady = "System Ready"
	textReset = "Reset"
	textMotor = "Motor"
	textDone  = "Done..!"

	// messages are indented three columns
	messageColumn = 3

	resetHold    = 500 * time.Millisecond
	startupDelay = 10 * time.Millisecond
)

var runs = map[pushpull.MotorState]struct {
	text  string
	start pushpull.Event
	done  pushpull.Event
}{
	pushpull.MotorPulling: {"Pulling", pushpull.EventPullStart, pushpull.EventPullDone},
	pushpull.MotorPushing: {"Pushing", pushpull.EventPushStart, pushpull.EventPushDone},
}

// Config has the panel's runtime options
type Config struct {
	// Verbose prints every change in the sampled buttons
	Verbose bool
}

// Panel owns the drivers for one board
type Panel struct {
	hw        hal.Hardware
	display   *lcd.Display
	motor     *motor.Motor
	countdown *countdown.Indicator

	// traceButtons is called with each sample that differs from the last one. Nil unless
	// Verbose is set
	traceButtons func(pushpull.Buttons)
	lastButtons  pushpull.Buttons
}

func printButtons(b pushpull.Buttons) {
	println("buttons", b.Button1, b.Button2, b.Reset)
}

// New creates the drivers on top of hw. Nothing is written until Start
func New(hw hal.Hardware, cfg Config) *Panel {
	p := &Panel{
		hw:        hw,
		display:   lcd.New(hw, hw),
		motor:     motor.New(hw),
		countdown: countdown.New(hw, hw),
	}
	if cfg.Verbose {
		p.traceButtons = printButtons
	}
	return p
}

// Run starts the panel and loops forever
func (p *Panel) Run() {
	p.Start()
	for {
		p.Step()
	}
}

// Start sets the port directions, drives every output low, initializes the LCD and shows
// the ready banner
func (p *Panel) Start() {
	p.hw.SetCountdownDirection(hal.DirectionResetInput)
	p.hw.SetCountdownPort(0x00)
	p.hw.SetLCDPins(hal.LCDPins{})
	p.motor.Stop()

	p.display.Initialize()
	p.hw.Sleep(startupDelay)
	p.showReady()
}

// Step runs one pass of the loop. A motor run blocks for the whole countdown and the buttons
// are not sampled again until it is done
func (p *Panel) Step() {
	b := p.hw.ReadButtons()
	if p.traceButtons != nil && b != p.lastButtons {
		p.traceButtons(b)
	}
	p.lastButtons = b

	// reset does not end the pass
	if b.Reset {
		p.reset()
	}

	switch {
	case b.Button1 && !b.Button2:
		p.run(pushpull.MotorPulling)
	case !b.Button1 && b.Button2:
		p.run(pushpull.MotorPushing)
	default:
		p.stop()
	}
}

func (p *Panel) reset() {
	println(pushpull.EventReset.String())

	p.showMessage(textReset)
	p.hw.Sleep(resetHold)
	p.showReady()
}

func (p *Panel) run(state pushpull.MotorState) {
	r := runs[state]

	p.motor.Drive(state)
	println(r.start.String())

	p.display.Clear()
	p.display.SetCursor(0, messageColumn)
	p.display.Print(textMotor)
	p.display.SetCursor(1, messageColumn)
	p.display.Print(r.text)

	p.countdown.Run()

	p.showMessage(textDone)
	println(r.done.String())

	p.showReady()
}

// stop leaves the display alone
func (p *Panel) stop() {
	if p.motor.State() != pushpull.MotorStopped {
		println(pushpull.EventStop.String())
	}
	p.motor.Stop()
}

func (p *Panel) showMessage(text string) {
	p.display.Clear()
	p.display.SetCursor(0, messageColumn)
	p.display.Print(text)
}

func (p *Panel) showReady() {
	p.display.Clear()
	p.display.SetCursor(0, 0)
	p.display.Print(textReady)
	println(pushpull.EventReady.String())
}
