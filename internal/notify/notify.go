// Package notify delivers user-facing notices for completed or failed
// operations. Every successful mutation produces a confirmation notice and
// every failure produces an error notice; persistence trouble surfaces here
// as a warning rather than blocking the operation.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier receives user-facing notices.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warn(message string)
}

// logNotifier writes notices to the structured log.
type logNotifier struct {
	log *zap.SugaredLogger
}

// NewLog returns a Notifier backed by the given logger.
func NewLog(log *zap.SugaredLogger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Success(message string) { n.log.Infow("notice", "level", "success", "message", message) }
func (n *logNotifier) Error(message string)   { n.log.Errorw("notice", "level", "error", "message", message) }
func (n *logNotifier) Warn(message string)    { n.log.Warnw("notice", "level", "warn", "message", message) }

// Recorder captures notices for inspection in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
	Warnings  []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}

func (r *Recorder) Warn(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, message)
}
