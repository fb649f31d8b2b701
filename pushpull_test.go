package pushpull

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Event
		ok       bool
	}{
		{"PullStart", "event=pull.start", EventPullStart, true},
		{"PushDoneWithCRLF", "event=push.done\r\n", EventPushDone, true},
		{"Ready", "  event=ready", EventReady, true},
		{"UnknownName", "event=jump", EventUnknown, false},
		{"NotAnEvent", "motor A1=0 A2=1", EventUnknown, false},
		{"Empty", "", EventUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := ParseEvent(tt.line)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, e)
		})
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	for e := EventReady; e <= EventStop; e++ {
		parsed, ok := ParseEvent(e.String())
		require.True(t, ok, e.String())
		require.Equal(t, e, parsed)
	}
	require.Equal(t, "event=unknown", EventUnknown.String())
}

func TestEventDirection(t *testing.T) {
	require.Equal(t, MotorPulling, EventPullStart.Direction())
	require.Equal(t, MotorPulling, EventPullDone.Direction())
	require.Equal(t, MotorPushing, EventPushStart.Direction())
	require.Equal(t, MotorStopped, EventReset.Direction())

	require.True(t, EventPushStart.IsStart())
	require.False(t, EventPushStart.IsDone())
	require.True(t, EventPullDone.IsDone())
}

func TestMotorStateString(t *testing.T) {
	require.Equal(t, "Pulling", MotorPulling.String())
	require.Equal(t, "Pushing", MotorPushing.String())
	require.Equal(t, "Stopped", MotorStopped.String())
	require.Equal(t, "Stopped", MotorState(42).String())
}

func TestMotorStateJSON(t *testing.T) {
	run := Run{
		Direction:  MotorPushing,
		StartedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		FinishedAt: time.Date(2025, 1, 2, 3, 4, 15, 0, time.UTC),
	}

	data, err := json.Marshal(run)
	require.NoError(t, err)
	require.Contains(t, string(data), `"direction":"Pushing"`)

	var decoded Run
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, run, decoded)
	require.Equal(t, 10*time.Second, decoded.Duration())

	var ms MotorState
	require.Error(t, ms.UnmarshalText([]byte("sideways")))
	require.NoError(t, ms.UnmarshalText([]byte("pulling")))
	require.Equal(t, MotorPulling, ms)
}
