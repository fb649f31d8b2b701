package runlog

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/calvinmclean/pushpull"
)

func TestRecordAndGet(t *testing.T) {
	server := httptest.NewServer(NewAPI().Router())
	defer server.Close()

	client := NewClient(server.URL)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		run       pushpull.Run
		expectErr bool
	}{
		{
			"Pull",
			pushpull.Run{Direction: pushpull.MotorPulling, StartedAt: start, FinishedAt: start.Add(10 * time.Second)},
			false,
		},
		{
			"Push",
			pushpull.Run{Direction: pushpull.MotorPushing, StartedAt: start, FinishedAt: start.Add(10 * time.Second)},
			false,
		},
		{
			"StoppedIsNotARun",
			pushpull.Run{Direction: pushpull.MotorStopped, StartedAt: start, FinishedAt: start},
			true,
		},
		{
			"FinishedBeforeStarted",
			pushpull.Run{Direction: pushpull.MotorPulling, StartedAt: start, FinishedAt: start.Add(-time.Second)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := client.Record(context.Background(), tt.run)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, id)

			got, err := client.Get(context.Background(), id)
			require.NoError(t, err)
			require.Equal(t, tt.run.Direction, got.Direction)
			require.True(t, tt.run.StartedAt.Equal(got.StartedAt))
			require.Equal(t, 10*time.Second, got.Duration())
		})
	}
}
