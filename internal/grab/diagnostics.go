package grab

import (
	log "github.com/sirupsen/logrus"
)

// Diagnostics receives notable controller events. It replaces on-screen debug
// messages and is optional.
type Diagnostics interface {
	Attached(id BodyID, directions int, holdDistance float32)
	AttachFailed(id BodyID, err error)
	Detached(id BodyID, forced bool)
	TickFailed(id BodyID, err error)
}

// NopDiagnostics discards every event.
type NopDiagnostics struct{}

func (NopDiagnostics) Attached(BodyID, int, float32) {}
func (NopDiagnostics) AttachFailed(BodyID, error)    {}
func (NopDiagnostics) Detached(BodyID, bool)         {}
func (NopDiagnostics) TickFailed(BodyID, error)      {}

// LogDiagnostics writes events to a logrus logger.
type LogDiagnostics struct {
	log log.FieldLogger
}

func NewLogDiagnostics(logger log.FieldLogger) *LogDiagnostics {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogDiagnostics{log: logger.WithField("system", "grab")}
}

func (d *LogDiagnostics) Attached(id BodyID, directions int, holdDistance float32) {
	d.log.WithFields(log.Fields{
		"body":       id,
		"directions": directions,
		"distance":   holdDistance,
	}).Debug("attached object")
}

func (d *LogDiagnostics) AttachFailed(id BodyID, err error) {
	d.log.WithField("body", id).WithError(err).Debug("attach failed")
}

func (d *LogDiagnostics) Detached(id BodyID, forced bool) {
	entry := d.log.WithField("body", id)
	if forced {
		entry.Warn("held object vanished, forcing detach")
		return
	}
	entry.Debug("detached object")
}

func (d *LogDiagnostics) TickFailed(id BodyID, err error) {
	d.log.WithField("body", id).WithError(err).Error("placement update failed")
}
