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
package theme

import (
	"github.com/gdamore/tcell/v2"
)

const (
	Blue      = tcell.ColorBlue
	Green     = tcell.Color71
	Pink      = tcell.Color131
	Red       = tcell.Color124
	SoftGreen = tcell.Color72
	Yellow    = tcell.Color142
	Gray      = tcell.ColorGray

	BorderColor          = tcell.Color243
	HighlightBorderColor = tcell.Color142
	InsideBorderColor    = tcell.Color71

	FixedChannelColor = tcell.Color242
	EmptyBarColor     = tcell.Color237
	MutedColor        = Red
	UnmutedColor      = Green
	StatusBackground  = tcell.Color236
)

// level percentage to bar colour, the highest key not above the level wins
var LevelColors = map[int]tcell.Color{
	90: Red,
	80: Pink,
	60: Yellow,
	30: Green,
	0:  SoftGreen,
}

const (
	RuneBarFilled = rune(9607)  // ▇
	RuneBarEmpty  = rune(9617)  // ░
	RuneMuted     = rune(10008) // ✘
	RuneUnmuted   = rune(10004) // ✔
	RuneSelected  = rune(9654)  // ▶
	RuneFixed     = rune(9472)  // ─
	RuneFailed    = rune(9932)  // ⛌
)
