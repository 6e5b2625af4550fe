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

// Listener receives every state change made by the panel so that it can be
// applied to the real device. Calls are fire-and-forget; a listener must
// tolerate duplicate notifications.
type Listener interface {
	ChannelChanged(groupID string, index int, level int, muted bool)
	OptionSelected(listID string, index int)
}

type nopListener struct{}

func (nopListener) ChannelChanged(string, int, int, bool) {}

func (nopListener) OptionSelected(string, int) {}

func listenerOrNop(listener Listener) Listener {
	if listener == nil {
		return nopListener{}
	}

	return listener
}
