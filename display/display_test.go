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
	"strings"
	"testing"
	"time"

	"fox-mixer/display/custom"
	"fox-mixer/mixer"
	"fox-mixer/reaper"

	"github.com/gdamore/tcell/v2"
)

func newSimulationScreen(t *testing.T, width int, height int) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)

	screen.SetSize(width, height)

	return screen
}

func screenRow(screen tcell.SimulationScreen, row int) string {
	cells, width, _ := screen.GetContents()

	var text strings.Builder
	for col := 0; col < width; col++ {
		runes := cells[row*width+col].Runes
		if len(runes) == 0 {
			text.WriteRune(' ')
			continue
		}

		text.WriteRune(runes[0])
	}

	return text.String()
}

func TestRender_HeaderAndFooter(t *testing.T) {
	screen := newSimulationScreen(t, 80, 25)
	panel := newTestPanel()

	Render(custom.NewScreenSurface(screen, 0, 0, 80, 25), panel, Status{})
	screen.Show()

	if header := screenRow(screen, 0); !strings.Contains(header, "fox-mixer") || !strings.Contains(header, "Playback") {
		t.Fatalf("unexpected header row %q", header)
	}

	if footer := screenRow(screen, 24); !strings.Contains(footer, "Outside") {
		t.Fatalf("unexpected footer row %q", footer)
	}

	if title := screenRow(screen, 1); !strings.Contains(title, "Master") {
		t.Fatalf("expected first widget title on row 1, got %q", title)
	}

	panel.Handle(mixer.EventEnter)
	Render(custom.NewScreenSurface(screen, 0, 0, 80, 25), panel, Status{Message: "[WARN] card busy", ErrorCount: 2})
	screen.Show()

	footer := screenRow(screen, 24)
	if !strings.Contains(footer, "Inside") || !strings.Contains(footer, "card busy") || !strings.Contains(footer, "2") {
		t.Fatalf("unexpected footer row %q", footer)
	}
}

func TestRender_ScrollsToCurrentWidget(t *testing.T) {
	screen := newSimulationScreen(t, 80, 12)
	panel := newTestPanel()
	panel.Next()

	Render(custom.NewScreenSurface(screen, 0, 0, 80, 12), panel, Status{})
	screen.Show()

	// the options widget ends on the last body row
	if title := screenRow(screen, 6); !strings.Contains(title, "Output") {
		t.Fatalf("expected the options widget scrolled into view, got %q", title)
	}

	if last := screenRow(screen, 10); !strings.Contains(last, string(tcell.RuneLLCorner)) {
		t.Fatalf("expected the bottom border on the last body row, got %q", last)
	}
}

func TestRender_TinySurface(t *testing.T) {
	screen := newSimulationScreen(t, 1, 1)

	Render(custom.NewScreenSurface(screen, 0, 0, 0, 0), newTestPanel(), Status{})
	Render(custom.NewScreenSurface(screen, 0, 0, 1, 1), newTestPanel(), Status{})
}

func TestMixerView_Draw(t *testing.T) {
	screen := newSimulationScreen(t, 80, 25)
	view := NewMixerView(newTestPanel())
	view.SetRect(0, 0, 80, 25)
	view.SetMessage("hello")
	view.IncrementErrorCount()

	view.Draw(screen)
	screen.Show()

	if status := view.Status(); status.Message != "hello" || status.ErrorCount != 1 {
		t.Fatalf("unexpected status %+v", status)
	}

	if footer := screenRow(screen, 24); !strings.Contains(footer, "hello") {
		t.Fatalf("unexpected footer row %q", footer)
	}
}

func TestTui_EventHandler(t *testing.T) {
	keymap, err := NewKeymap(nil)
	if err != nil {
		t.Fatalf("NewKeymap: %v", err)
	}

	panel := newTestPanel()
	testReaper := reaper.NewReaper()
	tui := NewTui(panel, keymap, testReaper)

	if got := tui.eventHandler(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)); got != nil {
		t.Fatalf("bound key should be consumed")
	}

	if panel.CurrentIndex() != 1 {
		t.Fatalf("expected right to move to widget 1, got %d", panel.CurrentIndex())
	}

	unbound := tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone)
	if got := tui.eventHandler(unbound); got != unbound {
		t.Fatalf("unbound key should be passed through")
	}

	if testReaper.Reaped() {
		t.Fatalf("reaped before quit")
	}

	tui.eventHandler(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	select {
	case <-testReaper.Context().Done():
	case <-time.After(time.Second):
		t.Fatalf("quit key did not reap")
	}

	// not started, so nothing to stop
	tui.Shutdown()
	tui.WriteLevelLog(0, "ignored before initialize")
}
