// cmd/tracer/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/tracer-bridge/internal/config"
	"github.com/tamzrod/tracer-bridge/internal/poller"
	"github.com/tamzrod/tracer-bridge/internal/status"
	"github.com/tamzrod/tracer-bridge/internal/writer"
)

func main() {
	cfgPath := flag.String("config", "", "path to config.yaml")
	simulate := flag.Bool("simulate", false, "poll a built-in simulated controller instead of the serial port")
	once := flag.Bool("once", false, "poll every configured group once and exit")
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg := &config.Config{}
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}

	if err := config.Validate(cfg, *simulate); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	if err := setupLogging(cfg.Log); err != nil {
		log.Fatalf("logging setup failed: %v", err)
	}

	// --------------------
	// Session, readers, outputs
	// --------------------

	sess, schedules, err := poller.Build(cfg, *simulate, log.StandardLogger())
	if err != nil {
		log.Fatalf("poller build failed: %v", err)
	}

	data, statusWriter, closeOutput, err := writer.Build(cfg.Output)
	if err != nil {
		_ = sess.Close()
		log.Fatalf("writer build failed: %v", err)
	}

	log.WithFields(log.Fields{
		"port":     cfg.Serial.Port,
		"simulate": *simulate,
		"groups":   len(schedules),
	}).Info("session ready")

	if *once {
		failed := pollOnce(schedules, data)
		_ = sess.Close()
		_ = closeOutput()
		if failed {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, schedules, data, statusWriter)

	// Session is released on every exit path out of run.
	if err := sess.Close(); err != nil {
		log.WithError(err).Warn("session close failed")
	}
	if err := closeOutput(); err != nil {
		log.WithError(err).Warn("output close failed")
	}
	log.Info("stopped")
}

// run fans in every reader and owns per-group health until ctx ends.
func run(ctx context.Context, schedules []poller.Schedule, data writer.Writer, sw writer.StatusWriter) {
	out := make(chan poller.PollResult)

	trackers := make(map[string]*status.Tracker, len(schedules))
	for _, s := range schedules {
		g := s.Reader.Group()
		trackers[g] = status.NewTracker()

		// Initial record so consumers see every group from the start.
		writeStatus(sw, g, trackers[g].Snapshot())

		go s.Reader.Run(ctx, s.Interval, out)
	}

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-out:
			// --- data delivery ---
			if err := data.Write(res); err != nil {
				log.WithError(err).WithField("group", res.Group).Warn("writer error")
			}

			// --- health ---
			tr := trackers[res.Group]
			if snap, changed := tr.Observe(res.Err); changed {
				log.WithFields(log.Fields{
					"group":  res.Group,
					"health": status.HealthName(snap.Health),
					"code":   snap.LastErrorCode,
				}).Info("health changed")
				writeStatus(sw, res.Group, snap)
			}

		case <-secTicker.C:
			for g, tr := range trackers {
				if snap, changed := tr.Tick(); changed {
					writeStatus(sw, g, snap)
				}
			}
		}
	}
}

func writeStatus(sw writer.StatusWriter, group string, snap status.Snapshot) {
	if sw == nil {
		return
	}
	if err := sw.WriteStatus(group, snap); err != nil {
		log.WithError(err).WithField("group", group).Warn("status write failed")
	}
}

// pollOnce reads each group in order and reports whether any failed.
func pollOnce(schedules []poller.Schedule, data writer.Writer) bool {
	failed := false
	for _, s := range schedules {
		res := s.Reader.PollOnce()
		if res.Err != nil {
			failed = true
			log.WithError(res.Err).WithFields(log.Fields{
				"group": res.Group,
				"code":  status.ErrorCode(res.Err),
			}).Error("poll failed")
			continue
		}
		if err := data.Write(res); err != nil {
			failed = true
			log.WithError(err).WithField("group", res.Group).Error("writer error")
		}
	}
	return failed
}

func setupLogging(c config.LogConfig) error {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if c.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
