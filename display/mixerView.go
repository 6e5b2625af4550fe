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
	"sync"

	"fox-mixer/display/custom"
	"fox-mixer/mixer"

	"code.rocketnine.space/tslocum/cview"
	"github.com/gdamore/tcell/v2"
)

// MixerView draws a panel filling its whole rectangle: header, widgets and
// footer.
type MixerView struct {
	*cview.Box

	panel  *mixer.Panel
	status Status

	sync.RWMutex
}

func NewMixerView(panel *mixer.Panel) *MixerView {
	view := &MixerView{
		Box:   cview.NewBox(),
		panel: panel,
	}
	view.SetBackgroundColor(cview.Styles.PrimitiveBackgroundColor)

	return view
}

// SetMessage replaces the footer message.
func (view *MixerView) SetMessage(message string) {
	view.Lock()
	defer view.Unlock()

	view.status.Message = message
}

func (view *MixerView) IncrementErrorCount() {
	view.Lock()
	defer view.Unlock()

	view.status.ErrorCount++
}

func (view *MixerView) Status() Status {
	view.RLock()
	defer view.RUnlock()

	return view.status
}

// Draw draws this primitive onto the screen.
func (view *MixerView) Draw(screen tcell.Screen) {
	view.Box.Draw(screen)

	x, y, width, height := view.GetInnerRect()
	Render(custom.NewScreenSurface(screen, x, y, width, height), view.panel, view.Status())
}
