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
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is a character cell drawing target. Rows and columns are relative
// to the surface and anything outside of it is clipped.
type Surface interface {
	DrawText(row int, col int, text string, style tcell.Style) int
	Size() (width int, height int)
}

// ScreenSurface draws into a rectangle of a tcell screen. The owner of the
// screen is responsible for calling Show.
type ScreenSurface struct {
	screen tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func NewScreenSurface(screen tcell.Screen, x int, y int, width int, height int) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		x:      x,
		y:      y,
		width:  max(width, 0),
		height: max(height, 0),
	}
}

// Region returns a surface covering part of this one, clipped to its bounds.
func (surface *ScreenSurface) Region(row int, col int, width int, height int) *ScreenSurface {
	row = min(max(row, 0), surface.height)
	col = min(max(col, 0), surface.width)

	return NewScreenSurface(
		surface.screen,
		surface.x+col,
		surface.y+row,
		min(width, surface.width-col),
		min(height, surface.height-row),
	)
}

func (surface *ScreenSurface) Size() (int, int) {
	return surface.width, surface.height
}

// DrawText draws text starting at row, col and returns the number of cells
// used. Wide runes take two cells; text running off the right edge is cut.
func (surface *ScreenSurface) DrawText(row int, col int, text string, style tcell.Style) int {
	if row < 0 || row >= surface.height {
		return 0
	}

	start := col

	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}

		if col+width > surface.width {
			break
		}

		if col >= 0 {
			surface.screen.SetContent(surface.x+col, surface.y+row, r, nil, style)
		}

		col += width
	}

	return col - start
}

// Fill paints count cells of a row with r.
func Fill(surface Surface, row int, col int, count int, r rune, style tcell.Style) {
	if count <= 0 {
		return
	}

	text := make([]rune, count)
	for i := range text {
		text[i] = r
	}

	surface.DrawText(row, col, string(text), style)
}
