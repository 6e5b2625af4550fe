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

const (
	DefaultStep      = 1
	DefaultLargeStep = 5
)

// ChannelGroup is an ordered set of channels that are drawn and navigated
// together. Exactly one channel is active whenever the group is not empty.
type ChannelGroup struct {
	id        string
	channels  []*Channel
	active    int
	step      int
	largeStep int
	listener  Listener
}

func NewChannelGroup(id string, specs []ChannelSpec, listener Listener) *ChannelGroup {
	group := &ChannelGroup{
		id:        id,
		channels:  make([]*Channel, len(specs)),
		active:    0,
		step:      DefaultStep,
		largeStep: DefaultLargeStep,
		listener:  listenerOrNop(listener),
	}

	for i, spec := range specs {
		group.channels[i] = NewChannel(i, spec)
	}

	return group
}

// SetSteps changes the amount a single up/down (and upMore/downMore) moves
// the level. Values below 1 leave the current step untouched.
func (group *ChannelGroup) SetSteps(step int, largeStep int) {
	if step >= 1 {
		group.step = step
	}

	if largeStep >= 1 {
		group.largeStep = largeStep
	}
}

func (group *ChannelGroup) ID() string {
	return group.id
}

func (group *ChannelGroup) Count() int {
	return len(group.channels)
}

func (group *ChannelGroup) ActiveIndex() int {
	return group.active
}

// Channel returns the channel at index, or nil when out of range.
func (group *ChannelGroup) Channel(index int) *Channel {
	if index < 0 || index >= len(group.channels) {
		return nil
	}

	return group.channels[index]
}

func (group *ChannelGroup) State() []ChannelState {
	states := make([]ChannelState, len(group.channels))

	for i, channel := range group.channels {
		states[i] = channel.state(i == group.active)
	}

	return states
}

//
// level
//

func (group *ChannelGroup) Up() {
	group.adjust(group.step)
}

func (group *ChannelGroup) Down() {
	group.adjust(-group.step)
}

func (group *ChannelGroup) UpMore() {
	group.adjust(group.largeStep)
}

func (group *ChannelGroup) DownMore() {
	group.adjust(-group.largeStep)
}

// SetLevel sets the same absolute level on every channel of the group.
func (group *ChannelGroup) SetLevel(level int) {
	for _, channel := range group.channels {
		if channel.SetLevel(level) {
			group.notify(channel)
		}
	}
}

func (group *ChannelGroup) SetLevelFor(index int, level int) error {
	if index < 0 || index >= len(group.channels) {
		return indexError("channel", index, len(group.channels))
	}

	channel := group.channels[index]
	if channel.SetLevel(level) {
		group.notify(channel)
	}

	return nil
}

func (group *ChannelGroup) adjust(delta int) {
	if len(group.channels) == 0 {
		return
	}

	channel := group.channels[group.active]
	if channel.AddLevel(delta) {
		group.notify(channel)
	}
}

//
// mute
//

// SetMute sets the mute state of every channel in the group.
func (group *ChannelGroup) SetMute(muted bool) {
	for _, channel := range group.channels {
		if channel.SetMute(muted) {
			group.notify(channel)
		}
	}
}

func (group *ChannelGroup) SetMuteFor(index int, muted bool) error {
	if index < 0 || index >= len(group.channels) {
		return indexError("channel", index, len(group.channels))
	}

	channel := group.channels[index]
	if channel.SetMute(muted) {
		group.notify(channel)
	}

	return nil
}

// ToggleMute flips the mute state of the active channel only.
func (group *ChannelGroup) ToggleMute() {
	if len(group.channels) == 0 {
		return
	}

	channel := group.channels[group.active]
	channel.ToggleMute()
	group.notify(channel)
}

// AnyUnmuted reports whether at least one channel is currently audible.
func (group *ChannelGroup) AnyUnmuted() bool {
	for _, channel := range group.channels {
		if !channel.Muted() {
			return true
		}
	}

	return false
}

//
// selection
//

func (group *ChannelGroup) SelectNext() {
	if group.active < len(group.channels)-1 {
		group.active++
	}
}

func (group *ChannelGroup) SelectPrevious() {
	if group.active > 0 {
		group.active--
	}
}

func (group *ChannelGroup) Select(index int) error {
	if index < 0 || index >= len(group.channels) {
		return indexError("channel", index, len(group.channels))
	}

	group.active = index

	return nil
}

func (group *ChannelGroup) notify(channel *Channel) {
	group.listener.ChannelChanged(group.id, channel.Index(), channel.Level(), channel.Muted())
}
