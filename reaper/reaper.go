// =================================================================================
//
//			fox-mixer - https://www.foxhollow.cc/projects/fox-audio/
//
//		 Fox Mixer is a simple keyboard driven terminal control panel for
//	  the volume, mute and source selection controls of an audio mixer
//
//		 Copyright (c) 2024 Steve Cross <flip@foxhollow.cc>
//
//			Licensed under the Apache License, Version 2.0 (the "License");
//			you may not use this file except in compliance with the License.
//			You may obtain a copy of the License at
//
//			     http://www.apache.org/licenses/LICENSE-2.0
//
//			Unless required by applicable law or agreed to in writing, software
//			distributed under the License is distributed on an "AS IS" BASIS,
//			WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//			See the License for the specific language governing permissions and
//			limitations under the License.
//
// =================================================================================
package reaper

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

type callback struct {
	name         string
	callbackFunc func()
}

// Reaper coordinates an orderly shutdown. Components register while they
// run and mark themselves done when they stop; shutdown callbacks run in
// reverse registration order exactly once.
type Reaper struct {
	lock          sync.Mutex
	reaped        bool
	callbacks     []callback
	registrations []string
	waitGroup     sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

func NewReaper() *Reaper {
	ctx, cancel := context.WithCancel(context.Background())

	return &Reaper{
		callbacks:     make([]callback, 0),
		registrations: make([]string, 0),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Context is cancelled as soon as Reap is called.
func (reaper *Reaper) Context() context.Context {
	return reaper.ctx
}

func (reaper *Reaper) Reaped() bool {
	reaper.lock.Lock()
	defer reaper.lock.Unlock()

	return reaper.reaped
}

func (reaper *Reaper) Reap() {
	reaper.lock.Lock()
	if reaper.reaped {
		reaper.lock.Unlock()
		return
	}

	reaper.reaped = true
	callbacksReversed := slices.Clone(reaper.callbacks)
	reaper.lock.Unlock()

	reaper.cancel()
	slices.Reverse(callbacksReversed)

	for _, callback := range callbacksReversed {
		slog.Info("reaper: calling reap callback for '" + callback.name + "'")
		callback.callbackFunc()
	}
}

func (reaper *Reaper) Callback(name string, callbackFunc func()) {
	reaper.lock.Lock()
	defer reaper.lock.Unlock()

	reaper.callbacks = append(reaper.callbacks, callback{
		name:         name,
		callbackFunc: callbackFunc,
	})
}

func (reaper *Reaper) Register(name string) {
	reaper.lock.Lock()
	defer reaper.lock.Unlock()

	if slices.Contains(reaper.registrations, name) {
		slog.Warn("reaper: already registered '" + name + "'")
		return
	}

	reaper.registrations = append(reaper.registrations, name)
	reaper.waitGroup.Add(1)
	slog.Debug("reaper: registered '" + name + "'")
}

func (reaper *Reaper) Done(name string) {
	reaper.lock.Lock()
	defer reaper.lock.Unlock()

	if !slices.Contains(reaper.registrations, name) {
		slog.Warn("reaper: already done or doesn't exist: '" + name + "'")
		return
	}

	reaper.registrations = slices.DeleteFunc(reaper.registrations, func(test string) bool {
		return test == name
	})

	slog.Debug("reaper: done: '" + name + "'")
	reaper.waitGroup.Done()
}

// Wait blocks until every registered component has called Done.
func (reaper *Reaper) Wait() {
	reaper.waitGroup.Wait()
}
