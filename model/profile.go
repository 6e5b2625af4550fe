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
package model

// Profile describes a mixer without real hardware behind it: the view it
// belongs to and the widgets to show, top to bottom.
type Profile struct {
	Name    string          `yaml:"name"`
	View    string          `yaml:"view"`
	Widgets []ProfileWidget `yaml:"widgets"`
}

// ProfileWidget holds either channels or options, never both.
type ProfileWidget struct {
	Name     string           `yaml:"name"`
	ID       string           `yaml:"id"`
	Channels []ProfileChannel `yaml:"channels,omitempty"`
	Options  []string         `yaml:"options,omitempty"`
	Selected int              `yaml:"selected,omitempty"`
}

type ProfileChannel struct {
	MaxLevel  int   `yaml:"max_level"`
	Level     int   `yaml:"level"`
	Muted     bool  `yaml:"muted"`
	Mutable   *bool `yaml:"mutable,omitempty"`
	ShowMuted bool  `yaml:"show_muted"`
}

// IsMutable defaults to true when the profile does not say.
func (channel ProfileChannel) IsMutable() bool {
	return channel.Mutable == nil || *channel.Mutable
}
