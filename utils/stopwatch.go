package utils

import (
	"sync"
	"time"
)

// Watch times solver phases. Paused time is excluded from Elapsed, and Lap reports the
// time since the previous lap (or since Start).
type Watch struct {
	mu           sync.RWMutex
	paused       bool
	pauseTime    time.Time
	startTime    time.Time
	adjustedTime time.Time
	lapTime      time.Time
}

func (w *Watch) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.paused {
		panic("watch cant start because paused")
	}
	w.startTime = time.Now()
	w.adjustedTime = w.startTime
	w.lapTime = w.startTime
}

func (w *Watch) Elapsed() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.paused {
		return w.pauseTime.Sub(w.adjustedTime)
	}
	return time.Since(w.adjustedTime)
}

func (w *Watch) AbsoluteElapsed() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return time.Since(w.startTime)
}

// Lap returns the time since the last lap and starts a new one.
func (w *Watch) Lap() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	lap := now.Sub(w.lapTime)
	w.lapTime = now
	return lap
}

func (w *Watch) Pause() time.Duration { // returns currently elapsed time
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.paused {
		panic("watch already paused")
	}
	w.pauseTime = time.Now()
	w.paused = true
	return w.pauseTime.Sub(w.adjustedTime)
}

func (w *Watch) UnPause() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.paused {
		panic("watch wasn't paused")
	}
	w.paused = false
	w.adjustedTime = w.adjustedTime.Add(time.Since(w.pauseTime))
}
