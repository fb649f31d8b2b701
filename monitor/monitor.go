// Package monitor follows the firmware's console output and turns its events into runs
package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/calvinmclean/pushpull"
)

// Recorder stores completed runs
type Recorder interface {
	Record(ctx context.Context, run pushpull.Run) (string, error)
}

type noopRecorder struct{}

var _ Recorder = noopRecorder{}

// Record implements Recorder.
func (noopRecorder) Record(context.Context, pushpull.Run) (string, error) {
	return "", nil
}

// Monitor echoes console lines with a timestamp and records each run from its start event to
// its done event
type Monitor struct {
	out      io.Writer
	recorder Recorder
	now      func() time.Time

	current *pushpull.Run
	runs    int
}

// New creates a Monitor. A nil recorder drops runs
func New(out io.Writer, recorder Recorder) *Monitor {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Monitor{
		out:      out,
		recorder: recorder,
		now:      time.Now,
	}
}

// Run reads lines until the reader is done or ctx is cancelled
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errs <- nil
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-errs:
				case <-ctx.Done():
				}
				if err != nil {
					return fmt.Errorf("error reading console: %w", err)
				}
				return nil
			}
			m.handleLine(ctx, line)
		}
	}
}

// Runs is the number of runs recorded
func (m *Monitor) Runs() int {
	return m.runs
}

func (m *Monitor) handleLine(ctx context.Context, line string) {
	now := m.now()
	fmt.Fprintf(m.out, "[%s] %s\n", now.Format(time.TimeOnly), line)

	e, ok := pushpull.ParseEvent(line)
	if !ok {
		return
	}

	switch {
	case e.IsStart():
		m.current = &pushpull.Run{Direction: e.Direction(), StartedAt: now}
	case e.IsDone():
		if m.current == nil || m.current.Direction != e.Direction() {
			// started before the monitor was attached
			m.current = nil
			return
		}
		m.current.FinishedAt = now
		m.record(ctx, *m.current)
		m.current = nil
	case e == pushpull.EventReady && m.current != nil:
		// the board restarted in the middle of a run
		fmt.Fprintf(m.out, "run interrupted: %s\n", m.current.Direction)
		m.current = nil
	}
}

func (m *Monitor) record(ctx context.Context, run pushpull.Run) {
	id, err := m.recorder.Record(ctx, run)
	if err != nil {
		fmt.Fprintf(m.out, "error recording run: %v\n", err)
		return
	}
	m.runs++

	fmt.Fprintf(m.out, "run %s took %s", run.Direction, run.Duration().Round(time.Millisecond))
	if id != "" {
		fmt.Fprintf(m.out, " id=%s", id)
	}
	fmt.Fprintln(m.out)
}
