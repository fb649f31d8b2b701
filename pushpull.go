package pushpull

import (
	"errors"
	"strings"
	"time"
)

// MotorState is the drive state of the H-bridge
type MotorState int

const (
	MotorStopped MotorState = iota
	MotorPulling
	MotorPushing
)

func (ms MotorState) String() string {
	switch ms {
	case MotorPulling:
		return "Pulling"
	case MotorPushing:
		return "Pushing"
	default:
		fallthrough
	case MotorStopped:
		return "Stopped"
	}
}

// MarshalText writes the state's name
func (ms MotorState) MarshalText() ([]byte, error) {
	return []byte(ms.String()), nil
}

// UnmarshalText reads a state name written by MarshalText
func (ms *MotorState) UnmarshalText(text []byte) error {
	for _, s := range []MotorState{MotorStopped, MotorPulling, MotorPushing} {
		if strings.EqualFold(s.String(), string(text)) {
			*ms = s
			return nil
		}
	}
	return errors.New("unknown motor state: " + string(text))
}

// Run is one motor run from the start of its countdown until "Done..!"
type Run struct {
	Direction  MotorState `json:"direction"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}

// Duration of the Run
func (r Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// MotorPins are the coil output levels in the order A1, A2, B1, B2
type MotorPins [4]bool

// Buttons is a single sample of the panel inputs
type Buttons struct {
	Button1 bool
	Button2 bool
	Reset   bool
}

// Event is a state change that the firmware reports on its console
type Event int

const (
	EventUnknown Event = iota
	EventReady
	EventReset
	EventPullStart
	EventPullDone
	EventPushStart
	EventPushDone
	EventStop
)

const eventPrefix = "event="

var eventNames = map[Event]string{
	EventReady:     "ready",
	EventReset:     "reset",
	EventPullStart: "pull.start",
	EventPullDone:  "pull.done",
	EventPushStart: "push.start",
	EventPushDone:  "push.done",
	EventStop:      "stop",
}

// String formats the Event as the line printed by the firmware, like "event=pull.start"
func (e Event) String() string {
	name, ok := eventNames[e]
	if !ok {
		name = "unknown"
	}
	return eventPrefix + name
}

// Direction returns the motor state that the Event starts or finishes
func (e Event) Direction() MotorState {
	switch e {
	case EventPullStart, EventPullDone:
		return MotorPulling
	case EventPushStart, EventPushDone:
		return MotorPushing
	default:
		return MotorStopped
	}
}

// IsStart is true for the events that begin a motor run
func (e Event) IsStart() bool {
	return e == EventPullStart || e == EventPushStart
}

// IsDone is true for the events that end a motor run's countdown
func (e Event) IsDone() bool {
	return e == EventPullDone || e == EventPushDone
}

// ParseEvent reads an Event from a console line. Lines that are not events return false
func ParseEvent(line string) (Event, bool) {
	line = strings.TrimSpace(line)
	name, ok := strings.CutPrefix(line, eventPrefix)
	if !ok {
		return EventUnknown, false
	}
	for e, n := range eventNames {
		if n == name {
			return e, true
		}
	}
	return EventUnknown, false
}
