// internal/poller/runner.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// Run polls once immediately, then on every tick, and emits each PollResult.
// One goroutine per group; the session keeps the line serialized. No retries.
func (r *Reader) Run(ctx context.Context, interval time.Duration, out chan<- PollResult) {
	log := r.sess.log.WithField("group", r.group.Name)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res := r.PollOnce()
		logCycle(log, res)

		select {
		case <-ctx.Done():
			return
		case out <- res:
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func logCycle(log logrus.FieldLogger, res PollResult) {
	switch {
	case res.Err == nil:
		log.WithField("readings", len(res.Result.Readings)).Debug("poll ok")
	case errors.Is(res.Err, ErrSchemaMismatch):
		log.WithError(res.Err).Error("register map drift")
	case errors.Is(res.Err, ErrSessionState):
		log.WithError(res.Err).Debug("poll skipped")
	default:
		log.WithError(res.Err).Warn("poll failed")
	}
}
