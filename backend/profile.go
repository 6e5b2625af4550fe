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
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"fox-mixer/mixer"
	"fox-mixer/model"
)

// ProfileBackend serves the controls described in a profile. Changes are
// kept in memory for the lifetime of the process.
type ProfileBackend struct {
	profile  *model.Profile
	view     mixer.View
	controls []Control

	lock sync.Mutex
}

// NewProfileBackend uses the view named in the profile, falling back to
// view when the profile does not name one.
func NewProfileBackend(profile *model.Profile, view mixer.View) (*ProfileBackend, error) {
	if profile.View != "" {
		profileView, err := mixer.ParseView(profile.View)
		if err != nil {
			return nil, err
		}

		view = profileView
	}

	return &ProfileBackend{
		profile: profile,
		view:    view,
	}, nil
}

func (backend *ProfileBackend) Name() string {
	if backend.profile.Name != "" {
		return "profile " + backend.profile.Name
	}

	return "profile"
}

func (backend *ProfileBackend) Open(ctx context.Context) error {
	backend.lock.Lock()
	defer backend.lock.Unlock()

	backend.controls = make([]Control, len(backend.profile.Widgets))

	for i, widget := range backend.profile.Widgets {
		id := widget.ID
		if id == "" {
			id = widget.Name
		}

		control := Control{
			ID:       id,
			Name:     widget.Name,
			Options:  slices.Clone(widget.Options),
			Selected: widget.Selected,
		}

		if len(widget.Channels) > 0 {
			control.Channels = make([]mixer.ChannelSpec, len(widget.Channels))

			for c, channel := range widget.Channels {
				control.Channels[c] = mixer.ChannelSpec{
					MaxLevel:  channel.MaxLevel,
					Level:     channel.Level,
					Muted:     channel.Muted,
					Mutable:   channel.IsMutable(),
					ShowMuted: channel.ShowMuted,
				}
			}
		}

		backend.controls[i] = control
	}

	return nil
}

func (backend *ProfileBackend) View() mixer.View {
	return backend.view
}

// Controls reflects every change reported so far.
func (backend *ProfileBackend) Controls() []Control {
	backend.lock.Lock()
	defer backend.lock.Unlock()

	controls := make([]Control, len(backend.controls))
	for i, control := range backend.controls {
		control.Channels = slices.Clone(control.Channels)
		control.Options = slices.Clone(control.Options)
		controls[i] = control
	}

	return controls
}

func (backend *ProfileBackend) Close() {}

func (backend *ProfileBackend) ChannelChanged(groupID string, index int, level int, muted bool) {
	backend.lock.Lock()
	defer backend.lock.Unlock()

	control := backend.find(groupID)
	if control == nil || index < 0 || index >= len(control.Channels) {
		slog.Warn(fmt.Sprintf("profile: change for unknown channel %s[%d]", groupID, index))
		return
	}

	control.Channels[index].Level = level
	control.Channels[index].Muted = muted
}

func (backend *ProfileBackend) OptionSelected(listID string, index int) {
	backend.lock.Lock()
	defer backend.lock.Unlock()

	control := backend.find(listID)
	if control == nil || index < 0 || index >= len(control.Options) {
		slog.Warn(fmt.Sprintf("profile: selection for unknown option %s[%d]", listID, index))
		return
	}

	control.Selected = index
}

func (backend *ProfileBackend) find(id string) *Control {
	for i := range backend.controls {
		if backend.controls[i].ID == id {
			return &backend.controls[i]
		}
	}

	return nil
}
