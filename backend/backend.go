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
	"errors"
	"fmt"
	"log/slog"

	"fox-mixer/mixer"
	"fox-mixer/model"
	"fox-mixer/util"
)

var ErrUnknownBackend = errors.New("unknown backend")

// Control is one mixer control as discovered by a backend. Exactly one of
// Channels and Options is set.
type Control struct {
	ID       string
	Name     string
	Channels []mixer.ChannelSpec
	Options  []string
	Selected int
}

func (control Control) IsOptions() bool {
	return len(control.Options) > 0
}

// Backend enumerates the controls of a mixer and applies changes made in the
// panel to it.
type Backend interface {
	mixer.Listener

	Name() string
	Open(ctx context.Context) error
	View() mixer.View
	Controls() []Control
	Close()
}

// New builds the backend selected by the configuration. It is not opened.
func New(config *model.Config) (Backend, error) {
	view, err := mixer.ParseView(config.View)
	if err != nil {
		return nil, err
	}

	switch config.Backend {
	case model.BackendSimulation:
		return NewSimulation(config.Simulation, view), nil

	case model.BackendProfile:
		profile, err := util.ReadProfile(config.Profile)
		if err != nil {
			return nil, err
		}

		return NewProfileBackend(profile, view)

	case model.BackendAmixer:
		return NewAmixer(config.Amixer, view, nil), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.Backend)
}

// Populate adds a widget to the panel for every control of the backend, in
// discovery order, and sets the panel view. Changes are reported back to the
// backend.
func Populate(panel *mixer.Panel, backend Backend) {
	panel.SetView(backend.View())

	for _, control := range backend.Controls() {
		if control.IsOptions() {
			panel.AddOptions(control.Name, control.ID, control.Options, control.Selected, backend)
		} else {
			panel.AddChannels(control.Name, control.ID, control.Channels, backend)
		}
	}

	slog.Info(fmt.Sprintf("Loaded %d controls from the %s backend", panel.Count(), backend.Name()))
}
