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

// Package dispatch connects asynchronous work to the editor's event loop.
package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aretw0/lifecycle"
)

// A Queue runs work on goroutines and collects completions for the event
// loop. Wake is called after each Post so that a blocked loop can return
// to drain the queue.
type Queue struct {
	ctx     context.Context
	mu      sync.Mutex
	pending []func()
	wake    func()
}

func NewQueue(ctx context.Context, wake func()) *Queue {
	return &Queue{ctx: ctx, wake: wake}
}

// Go runs work on a tracked goroutine. A panic in work is logged and does
// not stop the editor.
func (q *Queue) Go(work func()) {
	lifecycle.Go(q.ctx, func(ctx context.Context) error {
		work()
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		slog.Error("background work failed", "error", err)
	}))
}

func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
	if q.wake != nil {
		q.wake()
	}
}

// Drain runs the completions posted so far and returns how many ran.
// It must be called from the event loop.
func (q *Queue) Drain() int {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// A Manual dispatcher runs nothing until Flush is called. It is used to
// drive asynchronous paths step by step.
type Manual struct {
	work   []func()
	posted []func()
}

func (m *Manual) Go(work func()) {
	m.work = append(m.work, work)
}

func (m *Manual) Post(fn func()) {
	m.posted = append(m.posted, fn)
}

// Pending reports the number of queued work items and completions.
func (m *Manual) Pending() int {
	return len(m.work) + len(m.posted)
}

// Flush runs queued work and completions until none remain.
func (m *Manual) Flush() {
	for len(m.work) > 0 || len(m.posted) > 0 {
		if len(m.work) > 0 {
			w := m.work[0]
			m.work = m.work[1:]
			w()
			continue
		}
		fn := m.posted[0]
		m.posted = m.posted[1:]
		fn()
	}
}
