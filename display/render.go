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
	"fox-mixer/display/custom"
	"fox-mixer/mixer"
)

// Status is the state drawn by the footer that does not belong to the panel.
type Status struct {
	Message    string
	ErrorCount int
}

// Render draws the whole panel: the header on the first row, the footer on
// the last row and the widgets in between. When the widgets do not fit, the
// body scrolls so that the current widget stays visible. Render only reads
// the panel.
func Render(surface *custom.ScreenSurface, panel *mixer.Panel, status Status) {
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return
	}

	custom.DrawHeader(surface, 0, panel.Header())

	bodyHeight := height - mixer.HeaderHeight - mixer.FooterHeight
	body := surface.Region(mixer.HeaderHeight, 0, width, bodyHeight)
	offset := scrollOffset(panel, bodyHeight)
	inside := panel.Mode() == mixer.ModeInside

	for _, widget := range panel.Widgets() {
		row := widget.Position() - mixer.HeaderHeight - offset
		if row+widget.Height() <= 0 || row >= bodyHeight {
			continue
		}

		drawWidget(body, row, widget, inside)
	}

	if height > mixer.HeaderHeight {
		custom.DrawFooter(surface, height-1, panel.Footer(), status.Message, status.ErrorCount)
	}
}

func drawWidget(surface custom.Surface, row int, widget *mixer.Widget, inside bool) {
	style := custom.BorderStyle(widget.Highlighted(), inside)
	custom.DrawBox(surface, row, 0, widget.Width(), widget.Height(), widget.Name(), style)

	switch widget.Kind() {
	case mixer.ControlChannels:
		custom.DrawChannelGroup(surface, row, 0, widget.Channels(), widget.Highlighted())
	case mixer.ControlOptions:
		custom.DrawOptionList(surface, row, 0, widget.Width(), widget.Options(), widget.Highlighted())
	}
}

// scrollOffset returns how many body rows to skip so that the current widget
// ends inside the visible body.
func scrollOffset(panel *mixer.Panel, bodyHeight int) int {
	current := panel.Current()
	if current == nil || bodyHeight <= 0 {
		return 0
	}

	end := current.EndPosition() - mixer.HeaderHeight
	if end <= bodyHeight {
		return 0
	}

	return min(end-bodyHeight, current.Position()-mixer.HeaderHeight)
}
