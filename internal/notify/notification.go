// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers user-facing notifications and translates the
// message keys they are built from.
package notify

import (
	"sync"
	"time"
)

// Level is the severity of a [Notification].
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single delivered message.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Recorder is a [Notifier] that queues notifications in memory until they
// are drained. The TUI drains it to render toasts.
type Recorder struct {
	mu    sync.Mutex
	queue []Notification
	limit int
}

// NewRecorder returns a Recorder keeping at most limit undrained
// notifications (oldest dropped first). limit <= 0 means unbounded.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) Info(message string)    { r.push(LevelInfo, message) }
func (r *Recorder) Success(message string) { r.push(LevelSuccess, message) }
func (r *Recorder) Warning(message string) { r.push(LevelWarning, message) }
func (r *Recorder) Error(message string)   { r.push(LevelError, message) }

func (r *Recorder) push(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queue = append(r.queue, Notification{Level: level, Message: message, At: time.Now()})
	if r.limit > 0 && len(r.queue) > r.limit {
		r.queue = r.queue[len(r.queue)-r.limit:]
	}
}

// Drain returns the queued notifications in delivery order and empties the queue.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.queue
	r.queue = nil
	return out
}

// Snapshot returns a copy of the queue without draining it.
func (r *Recorder) Snapshot() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.queue))
	copy(out, r.queue)
	return out
}

// Fanout delivers every notification to each of its notifiers in order.
type Fanout []Notifier

func (f Fanout) Info(message string) {
	for _, n := range f {
		n.Info(message)
	}
}

func (f Fanout) Success(message string) {
	for _, n := range f {
		n.Success(message)
	}
}

func (f Fanout) Warning(message string) {
	for _, n := range f {
		n.Warning(message)
	}
}

func (f Fanout) Error(message string) {
	for _, n := range f {
		n.Error(message)
	}
}
