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

	"github.com/gdamore/tcell/v2"
)

// DrawBox draws a single line border with the title set into the top edge.
func DrawBox(surface Surface, row int, col int, width int, height int, title string, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}

	right := col + width - 1
	bottom := row + height - 1

	surface.DrawText(row, col, string(tcell.RuneULCorner), style)
	surface.DrawText(row, right, string(tcell.RuneURCorner), style)
	surface.DrawText(bottom, col, string(tcell.RuneLLCorner), style)
	surface.DrawText(bottom, right, string(tcell.RuneLRCorner), style)

	Fill(surface, row, col+1, width-2, tcell.RuneHLine, style)
	Fill(surface, bottom, col+1, width-2, tcell.RuneHLine, style)

	for y := row + 1; y < bottom; y++ {
		surface.DrawText(y, col, string(tcell.RuneVLine), style)
		surface.DrawText(y, right, string(tcell.RuneVLine), style)
	}

	if title != "" && width > 4 {
		titleText := []rune(" " + title + " ")
		if len(titleText) > width-2 {
			titleText = titleText[:width-2]
		}

		surface.DrawText(row, col+1, string(titleText), style.Bold(true))
	}
}

// BorderStyle picks the border colour from the focus state of a widget.
func BorderStyle(highlighted bool, inside bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(theme.BorderColor)

	if highlighted && inside {
		return style.Foreground(theme.InsideBorderColor).Bold(true)
	} else if highlighted {
		return style.Foreground(theme.HighlightBorderColor).Bold(true)
	}

	return style
}
