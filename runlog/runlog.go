// Package runlog keeps a history of motor runs behind a small REST API
package runlog

import (
	"errors"
	"net/http"

	"github.com/calvinmclean/babyapi"

	"github.com/calvinmclean/pushpull"
)

// Run is a motor run stored by the API
type Run struct {
	babyapi.DefaultResource
	pushpull.Run
}

// Bind validates a Run received by the API
func (r *Run) Bind(req *http.Request) error {
	err := r.DefaultResource.Bind(req)
	if err != nil {
		return err
	}

	switch req.Method {
	case http.MethodPost, http.MethodPut:
	default:
		return nil
	}

	if r.Direction != pushpull.MotorPulling && r.Direction != pushpull.MotorPushing {
		return errors.New("direction must be Pulling or Pushing")
	}
	if r.FinishedAt.Before(r.StartedAt) {
		return errors.New("finished_at is before started_at")
	}

	return nil
}

// NewAPI creates the run log API at /runs. It uses in-memory storage
func NewAPI() *babyapi.API[*Run] {
	return babyapi.NewAPI("Runs", "/runs", func() *Run { return &Run{} })
}
