package motor

import (
	"github.com/calvinmclean/pushpull"
	"github.com/calvinmclean/pushpull/firmware/hal"
)

// coil levels for each drive state in the order A1, A2, B1, B2
var driveTable = map[pushpull.MotorState]pushpull.MotorPins{
	pushpull.MotorStopped: {false, false, false, false},
	pushpull.MotorPulling: {false, true, true, false},
	pushpull.MotorPushing: {true, false, false, true},
}

// Motor drives the H-bridge. It has no interlock: the last call wins
type Motor struct {
	port  hal.MotorPort
	state pushpull.MotorState
}

// New creates a Motor. It does not write the pins until the first call
func New(port hal.MotorPort) *Motor {
	return &Motor{port: port, state: pushpull.MotorStopped}
}

// DriveForward pushes
func (m *Motor) DriveForward() {
	m.Drive(pushpull.MotorPushing)
}

// DriveReverse pulls
func (m *Motor) DriveReverse() {
	m.Drive(pushpull.MotorPulling)
}

// Stop sets all four outputs low
func (m *Motor) Stop() {
	m.Drive(pushpull.MotorStopped)
}

// Drive writes the coil pattern for the state. Unknown states stop the motor
func (m *Motor) Drive(state pushpull.MotorState) {
	pins, ok := driveTable[state]
	if !ok {
		state = pushpull.MotorStopped
		pins = driveTable[state]
	}

	m.port.SetMotorPins(pins)
	m.state = state
}

// State is the last state written
func (m *Motor) State() pushpull.MotorState {
	return m.state
}

// StateOf decodes coil levels. Levels that are not one of the drive patterns return false
func StateOf(pins pushpull.MotorPins) (pushpull.MotorState, bool) {
	for state, p := range driveTable {
		if p == pins {
			return state, true
		}
	}
	return pushpull.MotorStopped, false
}
