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
package custom

import (
	"fox-mixer/display/theme"
	"fox-mixer/mixer"

	"github.com/gdamore/tcell/v2"
)

// DrawOptionList draws the options of a list inside the widget box that
// starts at row, col. The first option is at the bottom, so moving down
// moves the highlight down the screen.
func DrawOptionList(surface Surface, row int, col int, width int, list *mixer.OptionList, highlighted bool) {
	options := list.Options()
	count := len(options)

	for i, option := range options {
		optionRow := row + count - i
		style := tcell.StyleDefault
		marker := "  "

		if i == list.HighlightIndex() {
			marker = string(theme.RuneSelected) + " "
			style = style.Bold(true)

			if highlighted {
				style = style.Reverse(true)
			}
		}

		Fill(surface, optionRow, col+1, width-2, ' ', tcell.StyleDefault)
		surface.DrawText(optionRow, col+2, marker+option, style)
	}
}
