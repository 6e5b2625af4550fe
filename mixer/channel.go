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

// ChannelSpec describes a single channel as discovered by a backend.
type ChannelSpec struct {
	MaxLevel  int
	Level     int
	Muted     bool
	Mutable   bool
	ShowMuted bool
}

// ChannelState is a read-only snapshot of a channel, used for rendering
// and for the json output.
type ChannelState struct {
	Index        int  `json:"index"`
	Level        int  `json:"level"`
	MaxLevel     int  `json:"max_level"`
	Muted        bool `json:"muted"`
	Mutable      bool `json:"mutable"`
	DisplayMuted bool `json:"display_muted"`
	Active       bool `json:"active"`
}

// Percent returns the level as a percentage of the maximum level.
func (state ChannelState) Percent() int {
	if state.MaxLevel == 0 {
		return 0
	}

	return state.Level * 100 / state.MaxLevel
}

// Channel is a single volume and mute control. The level is always kept
// within [0, maxLevel].
type Channel struct {
	index               int
	level               int
	maxLevel            int
	muted               bool
	mutable             bool
	displayMuteOverride bool
}

func NewChannel(index int, spec ChannelSpec) *Channel {
	maxLevel := max(spec.MaxLevel, 0)

	return &Channel{
		index:               index,
		level:               min(max(spec.Level, 0), maxLevel),
		maxLevel:            maxLevel,
		muted:               spec.Muted,
		mutable:             spec.Mutable,
		displayMuteOverride: spec.ShowMuted,
	}
}

func (channel *Channel) Index() int {
	return channel.index
}

func (channel *Channel) Level() int {
	return channel.level
}

func (channel *Channel) MaxLevel() int {
	return channel.maxLevel
}

func (channel *Channel) Muted() bool {
	return channel.muted
}

func (channel *Channel) Mutable() bool {
	return channel.mutable
}

// DisplayMuted reports whether the mute glyph should be drawn, which is the
// case when the channel is muted or its mute display is forced.
func (channel *Channel) DisplayMuted() bool {
	return channel.muted || channel.displayMuteOverride
}

// AddLevel moves the level by delta, clamped to [0, maxLevel]. Channels that
// are not mutable ignore the call. It returns true if the level changed.
func (channel *Channel) AddLevel(delta int) bool {
	target := channel.level

	if delta > channel.maxLevel-channel.level {
		target = channel.maxLevel
	} else if delta < -channel.level {
		target = 0
	} else {
		target += delta
	}

	return channel.SetLevel(target)
}

// SetLevel sets an absolute level, clamped to [0, maxLevel]. Channels that
// are not mutable ignore the call. It returns true if the level changed.
func (channel *Channel) SetLevel(level int) bool {
	if !channel.mutable {
		return false
	}

	level = min(max(level, 0), channel.maxLevel)

	if level == channel.level {
		return false
	}

	channel.level = level

	return true
}

func (channel *Channel) Up(step int) bool {
	return channel.AddLevel(step)
}

func (channel *Channel) Down(step int) bool {
	return channel.AddLevel(-step)
}

// SetMute sets the mute state and returns true if it changed.
func (channel *Channel) SetMute(muted bool) bool {
	if channel.muted == muted {
		return false
	}

	channel.muted = muted

	return true
}

func (channel *Channel) ToggleMute() {
	channel.muted = !channel.muted
}

func (channel *Channel) state(active bool) ChannelState {
	return ChannelState{
		Index:        channel.index,
		Level:        channel.level,
		MaxLevel:     channel.maxLevel,
		Muted:        channel.muted,
		Mutable:      channel.mutable,
		DisplayMuted: channel.DisplayMuted(),
		Active:       active,
	}
}
