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
	"math/rand/v2"
	"sync"
	"time"

	"fox-mixer/mixer"
	"fox-mixer/model"
)

const simulationMaxLevel = 100

var simulationOutputs = []string{"Speakers", "Headphones", "HDMI", "S/PDIF"}

// Simulation makes up a mixer: a number of channel groups with random
// levels and one output selector.
type Simulation struct {
	options  model.SimulationOptions
	view     mixer.View
	controls []Control

	lock    sync.Mutex
	changes int
}

func NewSimulation(options model.SimulationOptions, view mixer.View) *Simulation {
	return &Simulation{
		options: options,
		view:    view,
	}
}

func (simulation *Simulation) Name() string {
	return "simulation"
}

func (simulation *Simulation) Open(ctx context.Context) error {
	seed := uint64(simulation.options.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	random := rand.New(rand.NewPCG(seed, seed>>1))

	groupCount := max(simulation.options.GroupCount, 0)
	channelCount := max(simulation.options.ChannelCount, 1)

	simulation.controls = make([]Control, 0, groupCount+1)

	for group := range groupCount {
		specs := make([]mixer.ChannelSpec, channelCount)

		for channel := range channelCount {
			specs[channel] = mixer.ChannelSpec{
				MaxLevel: simulationMaxLevel,
				Level:    random.IntN(simulationMaxLevel + 1),
				Muted:    random.IntN(4) == 0,
				Mutable:  true,
			}
		}

		// the last group is a fixed switch, like a digital output
		if group == groupCount-1 && groupCount > 1 {
			for channel := range specs {
				specs[channel].MaxLevel = 0
				specs[channel].Level = 0
				specs[channel].Mutable = false
			}
		}

		simulation.controls = append(simulation.controls, Control{
			ID:       fmt.Sprintf("sim-%d", group+1),
			Name:     fmt.Sprintf("Channel %d", group+1),
			Channels: specs,
		})
	}

	simulation.controls = append(simulation.controls, Control{
		ID:       "sim-output",
		Name:     "Output",
		Options:  simulationOutputs,
		Selected: random.IntN(len(simulationOutputs)),
	})

	slog.Info(fmt.Sprintf("Simulating %d channel groups with %d channels each (seed %d)", groupCount, channelCount, seed))

	return nil
}

func (simulation *Simulation) View() mixer.View {
	return simulation.view
}

func (simulation *Simulation) Controls() []Control {
	return simulation.controls
}

func (simulation *Simulation) Changes() int {
	simulation.lock.Lock()
	defer simulation.lock.Unlock()

	return simulation.changes
}

func (simulation *Simulation) Close() {
	slog.Info(fmt.Sprintf("Simulation closed after %d changes", simulation.Changes()))
}

func (simulation *Simulation) ChannelChanged(groupID string, index int, level int, muted bool) {
	simulation.count()
	slog.Debug(fmt.Sprintf("simulation: %s[%d] level=%d muted=%t", groupID, index, level, muted))
}

func (simulation *Simulation) OptionSelected(listID string, index int) {
	simulation.count()
	slog.Debug(fmt.Sprintf("simulation: %s selected %d", listID, index))
}

func (simulation *Simulation) count() {
	simulation.lock.Lock()
	defer simulation.lock.Unlock()

	simulation.changes++
}
