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
package display

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"fox-mixer/mixer"
	"fox-mixer/reaper"

	"code.rocketnine.space/tslocum/cview"
	"github.com/gdamore/tcell/v2"
)

var newScreen = tcell.NewScreen

//
// types
//

type Tui struct {
	app             *cview.Application
	view            *MixerView
	shutdownChannel chan bool
	started         atomic.Bool

	panel  *mixer.Panel
	keymap *Keymap
	reaper *reaper.Reaper
}

//
// constructor
//

func NewTui(panel *mixer.Panel, keymap *Keymap, reaper *reaper.Reaper) *Tui {
	tui := &Tui{
		shutdownChannel: make(chan bool, 1),
		panel:           panel,
		keymap:          keymap,
		reaper:          reaper,
	}

	return tui
}

//
// lifecycle managment
//

func (tui *Tui) Initialize() error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}

	tui.app = cview.NewApplication()
	tui.app.SetScreen(screen)

	tui.view = NewMixerView(tui.panel)
	tui.view.SetBorder(false)

	tui.app.SetRoot(tui.view, true)

	return nil
}

func (tui *Tui) Start() {
	tui.reaper.Register("tui")

	go func() {
		defer tui.app.HandlePanic()

		// Capture user input
		tui.app.SetInputCapture(tui.eventHandler)

		tui.started.Store(true)
		if err := tui.app.Run(); err != nil {
			slog.Error("TUI stopped with error: " + err.Error())
		}

		tui.shutdownChannel <- true
		tui.reaper.Done("tui")

		// the terminal may have been lost without a quit key being pressed
		go tui.reaper.Reap()
	}()
}

func (tui *Tui) Shutdown() {
	if tui.IsShutdown() || !tui.started.Load() {
		return
	}

	slog.Debug("Shutting down TUI")
	tui.app.Stop()

	slog.Debug("Waiting for TUI to shut down")
	tui.WaitForShutdown()
}

func (tui *Tui) IsShutdown() bool {
	return len(tui.shutdownChannel) > 0
}

func (tui *Tui) WaitForShutdown() {
	<-tui.shutdownChannel
	tui.shutdownChannel <- true
}

//
// logging
//

func (tui *Tui) WriteLevelLog(level slog.Level, message string) {
	if tui.view == nil {
		return
	}

	if level >= slog.LevelError {
		tui.view.IncrementErrorCount()
	}

	tui.view.SetMessage(fmt.Sprintf("[%s] %s", level.String(), message))

	if tui.started.Load() && !tui.IsShutdown() {
		go tui.app.QueueUpdateDraw(func() {})
	}
}

//
// private functions
//

// eventHandler runs on the application's event goroutine, which is also the
// only goroutine that draws, so the panel needs no locking.
func (tui *Tui) eventHandler(event *tcell.EventKey) *tcell.EventKey {
	mixerEvent := tui.keymap.Resolve(event)
	if mixerEvent == mixer.EventNone {
		return event
	}

	if tui.panel.Handle(mixerEvent) {
		go tui.reaper.Reap()
	}

	return nil
}
