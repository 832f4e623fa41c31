//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package caret blinks the insertion mark.
// A Blinker is a cancellable repeating callback. Its timer runs on its own
// goroutine but every toggle is handed to the host's UI thread through a
// post function, so visibility is only read and written on that thread.
package caret

import (
	"sync"
	"sync/atomic"
	"time"
)

const DefaultInterval = 500 * time.Millisecond

type Blinker struct {
	interval time.Duration
	post     func(func())
	visible  bool

	started   atomic.Bool
	stopped   atomic.Bool
	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewBlinker returns a stopped blinker with a visible caret.
// post must run its argument on the UI thread.
func NewBlinker(interval time.Duration, post func(func())) *Blinker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Blinker{
		interval: interval,
		post:     post,
		visible:  true,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start toggles the caret every interval and then calls tick with the new
// visibility. Calling Start more than once has no effect.
func (b *Blinker) Start(tick func(visible bool)) {
	b.startOnce.Do(func() {
		b.started.Store(true)
		go b.run(tick)
	})
}

func (b *Blinker) run(tick func(bool)) {
	defer close(b.done)
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			b.post(func() {
				if b.stopped.Load() {
					return
				}
				b.visible = !b.visible
				tick(b.visible)
			})
		}
	}
}

// Stop cancels the blinker and waits for its timer to exit.
// Toggles that were posted but not yet run are dropped.
func (b *Blinker) Stop() {
	b.stopOnce.Do(func() {
		b.stopped.Store(true)
		close(b.stop)
	})
	if b.started.Load() {
		<-b.done
	}
}

func (b *Blinker) Visible() bool {
	return b.visible
}

// Show makes the caret visible until the next toggle.
func (b *Blinker) Show() {
	b.visible = true
}
