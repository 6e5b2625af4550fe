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
	"sort"
	"strings"

	"fox-mixer/display/theme"
	"fox-mixer/mixer"

	"github.com/gdamore/tcell/v2"
)

// DrawChannelGroup draws one vertical strip per channel inside the widget
// box that starts at row, col: the level bar, the level value and the mute
// glyph.
func DrawChannelGroup(surface Surface, row int, col int, group *mixer.ChannelGroup, highlighted bool) {
	for i, state := range group.State() {
		stripCol := col + 1 + i*mixer.ChannelWidth
		drawChannelStrip(surface, row+1, stripCol, state, highlighted && state.Active)
	}
}

func drawChannelStrip(surface Surface, row int, col int, channel mixer.ChannelState, active bool) {
	meterWidth := mixer.ChannelWidth - 2
	percent := channel.Percent()

	for step := 0; step < mixer.BarHeight; step++ {
		stepLevel := (mixer.BarHeight - step - 1) * 100 / mixer.BarHeight
		foregroundColor := getLevelColor(theme.LevelColors, stepLevel)
		style := tcell.StyleDefault.Foreground(foregroundColor)

		if !channel.Mutable {
			style = style.Foreground(theme.FixedChannelColor)
		}

		if channel.MaxLevel > 0 && percent > stepLevel {
			Fill(surface, row+step, col+1, meterWidth, theme.RuneBarFilled, style.Dim(channel.DisplayMuted))
		} else {
			Fill(surface, row+step, col+1, meterWidth, theme.RuneBarEmpty, style.Foreground(theme.EmptyBarColor))
		}
	}

	row += mixer.BarHeight

	// level value, or a marker for channels without a level
	valueStyle := tcell.StyleDefault.Bold(active).Reverse(active)
	value := fmt.Sprintf("%*d", meterWidth, channel.Level)
	if channel.MaxLevel == 0 {
		value = strings.Repeat(string(theme.RuneFixed), meterWidth)
	}
	surface.DrawText(row, col+1, value, valueStyle)

	muteRune := theme.RuneUnmuted
	muteStyle := tcell.StyleDefault.Foreground(theme.UnmutedColor)
	if channel.DisplayMuted {
		muteRune = theme.RuneMuted
		muteStyle = muteStyle.Foreground(theme.MutedColor).Bold(true)
	}
	surface.DrawText(row+1, col+1+meterWidth/2-1, string([]rune{muteRune, muteRune}), muteStyle)
}

func getLevelColor(colorMap map[int]tcell.Color, currentLevel int) tcell.Color {
	keys := make([]int, 0, len(colorMap))

	for k := range colorMap {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	for _, mapLevel := range keys {
		if currentLevel >= mapLevel {
			return colorMap[mapLevel]
		}
	}

	return tcell.ColorPurple
}
