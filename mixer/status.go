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
	"fmt"
	"strings"
)

// Mode is the focus mode of the panel.
type Mode int

const (
	// ModeOutside moves the selection between widgets.
	ModeOutside Mode = iota
	// ModeInside operates the control of the selected widget.
	ModeInside
)

func (mode Mode) String() string {
	if mode == ModeInside {
		return "Inside"
	}

	return "Outside"
}

// View classifies which kind of controls the panel shows. It only affects
// the header.
type View int

const (
	ViewPlayback View = iota
	ViewRecording
	ViewOutputs
	ViewInputs
)

var viewNames = []string{"Playback", "Recording", "Outputs", "Inputs"}

func (view View) String() string {
	if view < 0 || int(view) >= len(viewNames) {
		return "Unknown"
	}

	return viewNames[view]
}

func ParseView(name string) (View, error) {
	for i, viewName := range viewNames {
		if strings.EqualFold(viewName, strings.TrimSpace(name)) {
			return View(i), nil
		}
	}

	return ViewPlayback, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

//
// status lines
//

// StatusHeader projects the active view of a panel.
type StatusHeader struct {
	View View
}

func (header StatusHeader) Text() string {
	text := ""

	for i, name := range viewNames {
		if i > 0 {
			text += "  "
		}

		if View(i) == header.View {
			text += "[" + name + "]"
		} else {
			text += " " + name + " "
		}
	}

	return text
}

// StatusFooter projects the focus mode of a panel.
type StatusFooter struct {
	Mode Mode
}

func (footer StatusFooter) Text() string {
	return footer.Mode.String()
}

func (footer StatusFooter) Hint() string {
	if footer.Mode == ModeInside {
		return "up/down level  left/right channel  m mute  esc leave  q quit"
	}

	return "left/right widget  enter select  m mute  q quit"
}
