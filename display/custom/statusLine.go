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
	"fmt"

	"fox-mixer/display/theme"
	"fox-mixer/mixer"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const appTitle = "fox-mixer"

// DrawHeader draws the view header on the given row.
func DrawHeader(surface Surface, row int, header mixer.StatusHeader) {
	width, _ := surface.Size()
	base := tcell.StyleDefault.Background(theme.StatusBackground)

	Fill(surface, row, 0, width, ' ', base)

	col := 1
	col += surface.DrawText(row, col, appTitle, base.Bold(true))
	col += 2

	for i := mixer.ViewPlayback; i <= mixer.ViewInputs; i++ {
		style := base.Foreground(theme.Gray)
		if i == header.View {
			style = base.Foreground(theme.Yellow).Bold(true)
		}

		col += surface.DrawText(row, col, " "+i.String()+" ", style)
	}
}

// DrawFooter draws the focus mode, the key hints and, if there is one, the
// latest log message on the given row.
func DrawFooter(surface Surface, row int, footer mixer.StatusFooter, message string, errorCount int) {
	width, _ := surface.Size()
	base := tcell.StyleDefault.Background(theme.StatusBackground)

	Fill(surface, row, 0, width, ' ', base)

	modeColor := theme.Blue
	if footer.Mode == mixer.ModeInside {
		modeColor = theme.Green
	}

	col := 1
	col += surface.DrawText(row, col, " "+footer.Text()+" ", base.Background(modeColor).Bold(true))
	col += 1

	if message == "" {
		surface.DrawText(row, col, footer.Hint(), base.Foreground(theme.Gray))
	} else {
		surface.DrawText(row, col, message, base.Foreground(theme.Yellow))
	}

	if errorCount > 0 {
		errors := fmt.Sprintf(" %c %d ", theme.RuneFailed, errorCount)
		surface.DrawText(row, width-runewidth.StringWidth(errors)-1, errors, base.Foreground(theme.Red).Bold(true))
	}
}
