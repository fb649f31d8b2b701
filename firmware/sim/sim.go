// Package sim is a simulated board for the firmware. It records every pin write and delay
// against a logical clock and models the LCD so tests and the desktop simulator can see what
// the panel would show.
package sim

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/calvinmclean/pushpull"
	"github.com/calvinmclean/pushpull/firmware/hal"
)

type Kind int

const (
	KindMotor Kind = iota
	KindCommand
	KindData
	KindSegment
	KindDirection
	KindSleep
)

func (k Kind) String() string {
	switch k {
	case KindMotor:
		return "motor"
	case KindCommand:
		return "command"
	case KindData:
		return "data"
	case KindSegment:
		return "segment"
	case KindDirection:
		return "direction"
	case KindSleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// Event is one recorded write or delay
type Event struct {
	// At is the logical time when the event happened
	At       time.Duration
	Kind     Kind
	Motor    pushpull.MotorPins
	Value    byte
	Duration time.Duration
}

// Snapshot is the current state of all outputs
type Snapshot struct {
	Now       time.Duration
	Lines     [2]string
	Motor     pushpull.MotorPins
	Segment   byte
	Direction byte
	Buttons   pushpull.Buttons
}

// Hardware implements hal.Hardware in memory. It is safe for concurrent use
type Hardware struct {
	mtx sync.Mutex

	// realTime makes Sleep block for the duration as well as advancing the logical clock
	realTime bool

	now    time.Duration
	events []Event

	motor     pushpull.MotorPins
	lcd       hal.LCDPins
	segment   byte
	direction byte
	display   *display

	held   pushpull.Buttons
	script []pushpull.Buttons
}

var _ hal.Hardware = &Hardware{}

// New creates a simulated board in its power-on state: all countdown port bits are inputs
func New() *Hardware {
	return &Hardware{
		direction: 0xFF,
		display:   newDisplay(),
	}
}

// NewRealTime creates a simulated board whose Sleep really waits
func NewRealTime() *Hardware {
	h := New()
	h.realTime = true
	return h
}

func (h *Hardware) record(e Event) {
	e.At = h.now
	h.events = append(h.events, e)
}

// SetMotorPins implements hal.MotorPort
func (h *Hardware) SetMotorPins(p pushpull.MotorPins) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.motor = p
	h.record(Event{Kind: KindMotor, Motor: p})
}

// SetLCDPins implements hal.LCDPort. The LCD latches the bus on the falling edge of EN
func (h *Hardware) SetLCDPins(p hal.LCDPins) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	latch := h.lcd.EN && !p.EN
	h.lcd = p
	if !latch {
		return
	}

	if p.RS {
		h.display.data(p.Data)
		h.record(Event{Kind: KindData, Value: p.Data})
		return
	}
	h.display.command(p.Data)
	h.record(Event{Kind: KindCommand, Value: p.Data})
}

// SetCountdownPort implements hal.SegmentPort
func (h *Hardware) SetCountdownPort(b byte) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.segment = b
	h.record(Event{Kind: KindSegment, Value: b})
}

// SetCountdownDirection implements hal.SegmentPort
func (h *Hardware) SetCountdownDirection(b byte) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.direction = b
	h.record(Event{Kind: KindDirection, Value: b})
}

// ReadButtons implements hal.Inputs. Queued samples are used first, then the held levels.
// Reset reads low while its port bit is an output
func (h *Hardware) ReadButtons() pushpull.Buttons {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	b := h.held
	if len(h.script) > 0 {
		b = h.script[0]
		h.script = h.script[1:]
	}
	if h.direction&hal.DirectionResetInput == 0 {
		b.Reset = false
	}
	return b
}

// Sleep implements hal.Sleeper
func (h *Hardware) Sleep(d time.Duration) {
	h.mtx.Lock()
	h.record(Event{Kind: KindSleep, Duration: d})
	h.now += d
	realTime := h.realTime
	h.mtx.Unlock()

	if realTime {
		time.Sleep(d)
	}
}

// Hold sets the button levels returned once the queued samples run out
func (h *Hardware) Hold(b pushpull.Buttons) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.held = b
}

// Queue adds samples that are returned by the next reads, one per read
func (h *Hardware) Queue(samples ...pushpull.Buttons) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.script = append(h.script, samples...)
}

// ClearTrace forgets the recorded events. Output levels and the clock are kept
func (h *Hardware) ClearTrace() {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.events = nil
}

// Events returns a copy of the recorded events
func (h *Hardware) Events() []Event {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return append([]Event(nil), h.events...)
}

// EventsOf returns the recorded events of one kind
func (h *Hardware) EventsOf(k Kind) []Event {
	var result []Event
	for _, e := range h.Events() {
		if e.Kind == k {
			result = append(result, e)
		}
	}
	return result
}

// Now returns the logical time
func (h *Hardware) Now() time.Duration {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return h.now
}

// Snapshot returns the current output levels and LCD contents
func (h *Hardware) Snapshot() Snapshot {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return Snapshot{
		Now:       h.now,
		Lines:     h.display.lines(),
		Motor:     h.motor,
		Segment:   h.segment,
		Direction: h.direction,
		Buttons:   h.held,
	}
}

// DisplayTrace summarizes the LCD traffic: commands as "0x01" and runs of consecutive
// characters as one string. Other events do not split a run of characters
func (h *Hardware) DisplayTrace() []string {
	var (
		result []string
		text   strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			result = append(result, text.String())
			text.Reset()
		}
	}

	for _, e := range h.Events() {
		switch e.Kind {
		case KindCommand:
			flush()
			result = append(result, fmt.Sprintf("0x%02X", e.Value))
		case KindData:
			text.WriteByte(e.Value)
		}
	}
	flush()

	return result
}
