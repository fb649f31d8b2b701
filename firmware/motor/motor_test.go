package motor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinmclean/pushpull"
	"github.com/calvinmclean/pushpull/firmware/sim"
)

func TestDrive(t *testing.T) {
	tests := []struct {
		name     string
		drive    func(*Motor)
		expected pushpull.MotorPins
		state    pushpull.MotorState
	}{
		{"Forward", (*Motor).DriveForward, pushpull.MotorPins{true, false, false, true}, pushpull.MotorPushing},
		{"Reverse", (*Motor).DriveReverse, pushpull.MotorPins{false, true, true, false}, pushpull.MotorPulling},
		{"Stop", (*Motor).Stop, pushpull.MotorPins{false, false, false, false}, pushpull.MotorStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hw := sim.New()
			m := New(hw)

			tt.drive(m)

			writes := hw.EventsOf(sim.KindMotor)
			require.Len(t, writes, 1)
			require.Equal(t, tt.expected, writes[0].Motor)
			require.Equal(t, tt.state, m.State())
		})
	}
}

func TestStopIsIdempotent(t *testing.T) {
	for _, before := range []func(*Motor){(*Motor).DriveForward, (*Motor).DriveReverse, (*Motor).Stop} {
		hw := sim.New()
		m := New(hw)
		before(m)

		for range 3 {
			m.Stop()
			require.Equal(t, pushpull.MotorPins{}, hw.Snapshot().Motor)
			require.Equal(t, pushpull.MotorStopped, m.State())
		}
	}
}

func TestDriveUnknownStateStops(t *testing.T) {
	hw := sim.New()
	m := New(hw)
	m.DriveForward()

	m.Drive(pushpull.MotorState(7))

	require.Equal(t, pushpull.MotorPins{}, hw.Snapshot().Motor)
	require.Equal(t, pushpull.MotorStopped, m.State())
}

func TestLastWriteWins(t *testing.T) {
	hw := sim.New()
	m := New(hw)

	m.DriveForward()
	m.DriveReverse()

	require.Equal(t, pushpull.MotorPins{false, true, true, false}, hw.Snapshot().Motor)
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name     string
		pins     pushpull.MotorPins
		expected pushpull.MotorState
		ok       bool
	}{
		{"Pulling", pushpull.MotorPins{false, true, true, false}, pushpull.MotorPulling, true},
		{"Pushing", pushpull.MotorPins{true, false, false, true}, pushpull.MotorPushing, true},
		{"Stopped", pushpull.MotorPins{}, pushpull.MotorStopped, true},
		{"ShootThrough", pushpull.MotorPins{true, true, false, false}, pushpull.MotorStopped, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := StateOf(tt.pins)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, state)
		})
	}
}
