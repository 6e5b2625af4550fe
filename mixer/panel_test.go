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
package mixer

import (
	"errors"
	"testing"
)

func highlightedCount(panel *Panel) int {
	count := 0

	for _, widget := range panel.Widgets() {
		if widget.Highlighted() {
			count++
		}
	}

	return count
}

func newScenarioPanel(listener Listener) *Panel {
	panel := NewPanel(ViewPlayback)
	panel.AddChannels("Master", "master", []ChannelSpec{
		{MaxLevel: 100, Mutable: true},
		{MaxLevel: 100, Mutable: true},
	}, listener)
	panel.AddOptions("Output", "output", []string{"Speakers", "Headphones", "HDMI"}, 0, listener)

	return panel
}

func TestPanel_Scenario(t *testing.T) {
	panel := newScenarioPanel(nil)

	if panel.Mode() != ModeOutside || panel.CurrentIndex() != 0 {
		t.Fatalf("unexpected initial state: mode=%v current=%d", panel.Mode(), panel.CurrentIndex())
	}

	panel.Handle(EventEnter)
	if panel.Mode() != ModeInside {
		t.Fatalf("expected inside after enter")
	}

	for i := 0; i < 5; i++ {
		panel.Handle(EventUp)
	}

	panel.Handle(EventExit)
	if panel.Mode() != ModeOutside {
		t.Fatalf("expected outside after exit")
	}

	panel.Handle(EventNext)

	w0 := panel.Widget(0)
	w1 := panel.Widget(1)

	if panel.CurrentIndex() != 1 || w0.Highlighted() || !w1.Highlighted() {
		t.Fatalf("highlight did not follow the current widget")
	}

	panel.Handle(EventEnter)
	panel.Handle(EventDown)

	if level := w0.Channels().Channel(0).Level(); level != 5 {
		t.Fatalf("expected W0 channel 0 at level 5, got %d", level)
	}

	if w1.Options().HighlightIndex() != 0 {
		t.Fatalf("expected W1 highlight 0, got %d", w1.Options().HighlightIndex())
	}

	if panel.Mode() != ModeInside || panel.CurrentIndex() != 1 {
		t.Fatalf("expected inside on widget 1, got %v on %d", panel.Mode(), panel.CurrentIndex())
	}
}

func TestPanel_HighlightInvariant(t *testing.T) {
	panel := NewPanel(ViewPlayback)

	if highlightedCount(panel) != 0 {
		t.Fatalf("an empty panel must not highlight anything")
	}

	events := []Event{EventNext, EventPrevious, EventEnter, EventUp, EventExit, EventMute}

	for _, event := range events {
		panel.Handle(event)
	}

	for i := 0; i < 4; i++ {
		panel.AddChannels("g", "g", []ChannelSpec{{MaxLevel: 10, Mutable: true}}, nil)

		for _, event := range append(events, EventNext, EventNext, EventPrevious) {
			panel.Handle(event)

			if highlightedCount(panel) != 1 {
				t.Fatalf("expected exactly one highlighted widget after %v, got %d", event, highlightedCount(panel))
			}

			if !panel.Current().Highlighted() {
				t.Fatalf("the current widget is not the highlighted one")
			}
		}
	}
}

func TestPanel_NavigationClamps(t *testing.T) {
	panel := newScenarioPanel(nil)

	for i := 0; i < 5; i++ {
		panel.Handle(EventNext)
	}

	if panel.CurrentIndex() != 1 {
		t.Fatalf("expected current 1, got %d", panel.CurrentIndex())
	}

	for i := 0; i < 5; i++ {
		panel.Handle(EventPrevious)
	}

	if panel.CurrentIndex() != 0 {
		t.Fatalf("expected current 0, got %d", panel.CurrentIndex())
	}
}

func TestPanel_UpDownOutsideAreIgnored(t *testing.T) {
	listener := &recordingListener{}
	panel := newScenarioPanel(listener)

	panel.Handle(EventUp)
	panel.Handle(EventUpMore)
	panel.Handle(EventDown)

	if level := panel.Widget(0).Channels().Channel(0).Level(); level != 0 {
		t.Fatalf("outside mode changed the level to %d", level)
	}

	if len(listener.channels) != 0 {
		t.Fatalf("outside mode notified the listener: %+v", listener.channels)
	}
}

func TestPanel_EmptyPanel(t *testing.T) {
	panel := NewPanel(ViewRecording)

	if quit := panel.Handle(EventEnter); quit || panel.Mode() != ModeInside {
		t.Fatalf("expected inside after enter on an empty panel, got %s", panel.Mode())
	}

	for _, event := range []Event{EventUp, EventDown, EventUpMore, EventDownMore, EventNext, EventPrevious, EventMute} {
		panel.Handle(event)

		if panel.Current() != nil || panel.Mode() != ModeInside || panel.Height() != 1 {
			t.Fatalf("%s changed an empty panel", event)
		}
	}

	if panel.Enter() {
		t.Fatalf("enter while inside should report false")
	}

	panel.Handle(EventExit)

	if panel.Mode() != ModeOutside {
		t.Fatalf("expected outside after exit, got %s", panel.Mode())
	}

	if err := panel.SetCurrent(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestPanel_InsideNextSelectsChannel(t *testing.T) {
	panel := newScenarioPanel(nil)

	panel.Handle(EventEnter)
	panel.Handle(EventNext)
	panel.Handle(EventUpMore)

	group := panel.Widget(0).Channels()

	if panel.CurrentIndex() != 0 {
		t.Fatalf("next inside must not change the widget")
	}

	if group.ActiveIndex() != 1 || group.Channel(1).Level() != DefaultLargeStep {
		t.Fatalf("expected channel 1 at %d, got active=%d level=%d", DefaultLargeStep, group.ActiveIndex(), group.Channel(1).Level())
	}
}

func TestPanel_MuteCurrent(t *testing.T) {
	listener := &recordingListener{}
	panel := newScenarioPanel(listener)

	panel.Handle(EventMute)

	group := panel.Widget(0).Channels()
	if group.AnyUnmuted() {
		t.Fatalf("expected the whole group to be muted")
	}

	panel.Handle(EventMute)
	if group.Channel(0).Muted() || group.Channel(1).Muted() {
		t.Fatalf("a second mute should unmute the group")
	}

	if len(listener.channels) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(listener.channels))
	}
}

func TestPanel_MuteOnOptionsIsNoop(t *testing.T) {
	listener := &recordingListener{}
	panel := newScenarioPanel(listener)

	if err := panel.SetCurrent(1); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}

	before := panel.State()
	panel.Handle(EventMute)
	after := panel.State()

	if before.Widgets[1].Selected == nil || *before.Widgets[1].Selected != *after.Widgets[1].Selected {
		t.Fatalf("mute changed the option list")
	}

	if len(listener.channels) != 0 || len(listener.options) != 0 {
		t.Fatalf("mute on an option list notified the listener")
	}
}

func TestPanel_QuitIsReported(t *testing.T) {
	panel := newScenarioPanel(nil)

	if panel.Handle(EventEnter) {
		t.Fatalf("enter must not quit")
	}

	if !panel.Handle(EventQuit) {
		t.Fatalf("quit must be reported")
	}

	if panel.Mode() != ModeInside {
		t.Fatalf("quit must not change the mode")
	}
}

func TestPanel_LayoutChainsEndPositions(t *testing.T) {
	panel := newScenarioPanel(nil)
	panel.AddChannels("Capture", "capture", make([]ChannelSpec, 3), nil)

	widgets := panel.Widgets()

	if widgets[0].Position() != HeaderHeight {
		t.Fatalf("first widget should start below the header, got %d", widgets[0].Position())
	}

	for i := 1; i < len(widgets); i++ {
		if widgets[i].Position() != widgets[i-1].EndPosition() {
			t.Fatalf("widget %d starts at %d, want %d", i, widgets[i].Position(), widgets[i-1].EndPosition())
		}
	}

	if widgets[1].Height() != 5 {
		t.Fatalf("expected option widget height 5, got %d", widgets[1].Height())
	}

	if panel.Height() != widgets[2].EndPosition() {
		t.Fatalf("panel height %d does not match last end position %d", panel.Height(), widgets[2].EndPosition())
	}
}

func TestPanel_ExitOutsideReportsFalse(t *testing.T) {
	panel := newScenarioPanel(nil)

	if panel.Exit() {
		t.Fatalf("exit while outside should report false")
	}

	panel.Enter()

	if !panel.Exit() {
		t.Fatalf("exit while inside should report true")
	}
}

func TestParseEvent(t *testing.T) {
	for _, event := range Events() {
		parsed, err := ParseEvent(" " + event.String() + "\n")
		if err != nil || parsed != event {
			t.Fatalf("ParseEvent(%q) = %v, %v", event.String(), parsed, err)
		}
	}

	if _, err := ParseEvent("jump"); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestParseView(t *testing.T) {
	view, err := ParseView("recording")
	if err != nil || view != ViewRecording {
		t.Fatalf("ParseView(recording) = %v, %v", view, err)
	}

	if _, err := ParseView("mixing"); !errors.Is(err, ErrUnknownView) {
		t.Fatalf("expected ErrUnknownView, got %v", err)
	}
}

func TestStatusProjections(t *testing.T) {
	panel := NewPanel(ViewOutputs)

	if got := panel.Header().Text(); got != " Playback    Recording   [Outputs]   Inputs " {
		t.Fatalf("unexpected header %q", got)
	}

	if got := panel.Footer().Text(); got != "Outside" {
		t.Fatalf("unexpected footer %q", got)
	}
}
