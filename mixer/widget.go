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

import (
	"slices"

	"github.com/mattn/go-runewidth"
)

//
// layout constants
//

const (
	HeaderHeight = 1
	FooterHeight = 1

	// rows between the top border and the level/mute row of a channel strip
	BarHeight    = 10
	ChannelWidth = 6

	borderSize      = 2
	optionPadding   = 6
	namePadding     = 4
	channelRowExtra = 2
)

// ControlKind tags which control a widget holds.
type ControlKind int

const (
	ControlChannels ControlKind = iota
	ControlOptions
)

func (kind ControlKind) String() string {
	switch kind {
	case ControlChannels:
		return "channels"
	case ControlOptions:
		return "options"
	}

	return "unknown"
}

// Widget is a named, positioned container for exactly one control, either a
// channel group or an option list.
type Widget struct {
	name        string
	position    int
	height      int
	width       int
	highlighted bool

	kind     ControlKind
	channels *ChannelGroup
	options  *OptionList
}

func NewChannelWidget(name string, position int, group *ChannelGroup) *Widget {
	widget := &Widget{
		name:     name,
		position: position,
		kind:     ControlChannels,
		channels: group,
	}

	widget.height = borderSize + BarHeight + channelRowExtra
	widget.width = max(group.Count()*ChannelWidth+borderSize, runewidth.StringWidth(name)+namePadding)

	return widget
}

func NewOptionWidget(name string, position int, list *OptionList) *Widget {
	widget := &Widget{
		name:     name,
		position: position,
		kind:     ControlOptions,
		options:  list,
	}

	widest := 0
	for _, option := range list.options {
		widest = max(widest, runewidth.StringWidth(option))
	}

	widget.height = borderSize + list.Count()
	widget.width = max(widest+optionPadding, runewidth.StringWidth(name)+namePadding)

	return widget
}

func (widget *Widget) Name() string {
	return widget.name
}

func (widget *Widget) Position() int {
	return widget.position
}

func (widget *Widget) Height() int {
	return widget.height
}

func (widget *Widget) Width() int {
	return widget.width
}

// EndPosition is the first row below this widget, where the next widget
// starts.
func (widget *Widget) EndPosition() int {
	return widget.position + widget.height
}

func (widget *Widget) Kind() ControlKind {
	return widget.kind
}

// Channels returns the channel group, or nil for an option widget.
func (widget *Widget) Channels() *ChannelGroup {
	return widget.channels
}

// Options returns the option list, or nil for a channel widget.
func (widget *Widget) Options() *OptionList {
	return widget.options
}

func (widget *Widget) Highlighted() bool {
	return widget.highlighted
}

func (widget *Widget) SetHighlight(highlighted bool) {
	widget.highlighted = highlighted
}

//
// delegation
//

func (widget *Widget) Up() {
	switch widget.kind {
	case ControlChannels:
		widget.channels.Up()
	case ControlOptions:
		widget.options.Up()
	}
}

func (widget *Widget) Down() {
	switch widget.kind {
	case ControlChannels:
		widget.channels.Down()
	case ControlOptions:
		widget.options.Down()
	}
}

func (widget *Widget) UpMore() {
	switch widget.kind {
	case ControlChannels:
		widget.channels.UpMore()
	case ControlOptions:
		widget.options.Up()
	}
}

func (widget *Widget) DownMore() {
	switch widget.kind {
	case ControlChannels:
		widget.channels.DownMore()
	case ControlOptions:
		widget.options.Down()
	}
}

// Next moves to the next channel of a channel group. Option lists ignore it.
func (widget *Widget) Next() {
	switch widget.kind {
	case ControlChannels:
		widget.channels.SelectNext()
	case ControlOptions:
	}
}

func (widget *Widget) Previous() {
	switch widget.kind {
	case ControlChannels:
		widget.channels.SelectPrevious()
	case ControlOptions:
	}
}

// Mute mutes every channel of the group, or unmutes them all if they are
// already muted. Option lists have no mute.
func (widget *Widget) Mute() {
	switch widget.kind {
	case ControlChannels:
		widget.channels.SetMute(widget.channels.AnyUnmuted())
	case ControlOptions:
	}
}

// WidgetState is a snapshot of a widget for the json output.
type WidgetState struct {
	Name        string         `json:"name"`
	Kind        string         `json:"kind"`
	Position    int            `json:"position"`
	Height      int            `json:"height"`
	Width       int            `json:"width"`
	Highlighted bool           `json:"highlighted"`
	Channels    []ChannelState `json:"channels,omitempty"`
	Options     []string       `json:"options,omitempty"`
	Selected    *int           `json:"selected,omitempty"`
}

func (widget *Widget) State() WidgetState {
	state := WidgetState{
		Name:        widget.name,
		Kind:        widget.kind.String(),
		Position:    widget.position,
		Height:      widget.height,
		Width:       widget.width,
		Highlighted: widget.highlighted,
	}

	switch widget.kind {
	case ControlChannels:
		state.Channels = widget.channels.State()
	case ControlOptions:
		selected := widget.options.HighlightIndex()
		state.Options = slices.Clone(widget.options.options)
		state.Selected = &selected
	}

	return state
}
