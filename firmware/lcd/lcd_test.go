package lcd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/calvinmclean/pushpull/firmware/hal"
	"github.com/calvinmclean/pushpull/firmware/sim"
)

// recordingPort keeps every pin write so the strobe order can be checked
type recordingPort struct {
	writes []hal.LCDPins
}

func (p *recordingPort) SetLCDPins(pins hal.LCDPins) {
	p.writes = append(p.writes, pins)
}

type recordingSleeper struct {
	sleeps []time.Duration
}

func (s *recordingSleeper) Sleep(d time.Duration) {
	s.sleeps = append(s.sleeps, d)
}

func TestCommandStrobe(t *testing.T) {
	tests := []struct {
		name  string
		write func(*Display, byte)
		rs    bool
	}{
		{"Command", (*Display).Command, false},
		{"WriteChar", (*Display).WriteChar, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := &recordingPort{}
			sleeper := &recordingSleeper{}
			d := New(port, sleeper)

			tt.write(d, 0x41)

			require.Equal(t, []hal.LCDPins{
				{RS: tt.rs, EN: false, Data: 0x41},
				{RS: tt.rs, EN: true, Data: 0x41},
				{RS: tt.rs, EN: false, Data: 0x41},
			}, port.writes)
			require.Equal(t, []time.Duration{2 * time.Millisecond, 2 * time.Millisecond}, sleeper.sleeps)
		})
	}
}

func TestInitialize(t *testing.T) {
	hw := sim.New()
	d := New(hw, hw)

	d.Initialize()

	require.Equal(t, []string{"0x38", "0x0C", "0x06", "0x01"}, hw.DisplayTrace())

	events := hw.Events()
	require.Equal(t, sim.KindSleep, events[0].Kind)
	require.Equal(t, 20*time.Millisecond, events[0].Duration)
	last := events[len(events)-1]
	require.Equal(t, sim.KindSleep, last.Kind)
	require.Equal(t, 2*time.Millisecond, last.Duration)

	// 20ms power up, 4 commands at 4ms each, 2ms after clear
	require.Equal(t, 38*time.Millisecond, hw.Now())
}

func TestPrint(t *testing.T) {
	t.Run("WritesEachCharacter", func(t *testing.T) {
		hw := sim.New()
		d := New(hw, hw)

		d.Command(CommandLine1)
		d.Print("System Ready")

		require.Equal(t, []string{"0x80", "System Ready"}, hw.DisplayTrace())
		require.Equal(t, "System Ready    ", hw.Snapshot().Lines[0])
	})

	t.Run("StopsAtNUL", func(t *testing.T) {
		hw := sim.New()
		d := New(hw, hw)

		d.Print("Done\x00ignored")

		require.Equal(t, []string{"Done"}, hw.DisplayTrace())
	})

	t.Run("Empty", func(t *testing.T) {
		hw := sim.New()
		d := New(hw, hw)

		d.Print("")

		require.Empty(t, hw.Events())
	})
}

func TestSetCursor(t *testing.T) {
	hw := sim.New()
	d := New(hw, hw)

	d.Clear()
	d.SetCursor(0, 3)
	d.Print("Motor")
	d.SetCursor(1, 3)
	d.Print("Pulling")

	require.Equal(t, []string{"0x01", "0x83", "Motor", "0xC3", "Pulling"}, hw.DisplayTrace())

	lines := hw.Snapshot().Lines
	require.Equal(t, "   Motor        ", lines[0])
	require.Equal(t, "   Pulling      ", lines[1])
}
