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
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"slices"
	"strconv"
	"strings"
	"sync"

	"fox-mixer/mixer"
	"fox-mixer/model"
	"fox-mixer/shared"
)

const amixerQueueSize = 256

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, binary string, args ...string) ([]byte, error)

// amixerControl is the live state of a control shown in the panel.
type amixerControl struct {
	source    *simpleControl
	direction direction
	levels    []int
	on        []bool
}

// Amixer drives an ALSA card through the amixer command line tool.
// Playback and recording views show volume controls as channel groups, the
// outputs and inputs views show enumerated controls as option lists.
type Amixer struct {
	options model.AmixerOptions
	view    mixer.View
	run     Runner

	controls []Control
	state    map[string]*amixerControl

	lock     sync.Mutex
	closed   bool
	commands chan []string
	worker   sync.WaitGroup
}

// NewAmixer uses runner to execute amixer, or the real binary when runner
// is nil.
func NewAmixer(options model.AmixerOptions, view mixer.View, runner Runner) *Amixer {
	if runner == nil {
		runner = execRunner
	}

	if options.Binary == "" {
		options.Binary = "amixer"
	}

	return &Amixer{
		options:  options,
		view:     view,
		run:      runner,
		state:    make(map[string]*amixerControl),
		commands: make(chan []string, amixerQueueSize),
	}
}

func (amixer *Amixer) Name() string {
	return "amixer card " + amixer.options.Card
}

func (amixer *Amixer) Open(ctx context.Context) error {
	slog.Info("Reading controls of card " + amixer.options.Card)

	output, err := amixer.run(ctx, amixer.options.Binary, amixer.args("scontents")...)
	if err != nil {
		return fmt.Errorf("listing controls of card %s: %w", amixer.options.Card, err)
	}

	sources, err := parseScontents(bytes.NewReader(output))
	if err != nil {
		return err
	}

	for _, source := range sources {
		amixer.addControl(source)
	}

	amixer.worker.Add(1)
	go amixer.executeLoop(ctx)

	return nil
}

func (amixer *Amixer) View() mixer.View {
	return amixer.view
}

func (amixer *Amixer) Controls() []Control {
	return amixer.controls
}

// Close waits for queued commands to finish.
func (amixer *Amixer) Close() {
	amixer.lock.Lock()
	if amixer.closed {
		amixer.lock.Unlock()
		return
	}
	amixer.closed = true
	close(amixer.commands)
	amixer.lock.Unlock()

	amixer.worker.Wait()
}

func (amixer *Amixer) ChannelChanged(groupID string, index int, level int, muted bool) {
	amixer.lock.Lock()
	defer amixer.lock.Unlock()

	control, ok := amixer.state[groupID]
	if !ok || index < 0 || index >= len(control.levels) {
		slog.Warn(fmt.Sprintf("amixer: change for unknown channel %s[%d]", groupID, index))
		return
	}

	control.levels[index] = level
	control.on[index] = !muted

	// the direction keyword applies to the values after it
	args := []string{"sset", groupID, control.direction.String()}

	if control.hasVolume() {
		values := make([]string, len(control.levels))
		for i, level := range control.levels {
			values[i] = strconv.Itoa(level + control.source.limits[control.direction].min)
		}

		args = append(args, strings.Join(values, ","))
	}

	if control.hasSwitch() {
		onWord, offWord := "on", "off"
		if control.direction == capture {
			onWord, offWord = "cap", "nocap"
		}

		values := make([]string, len(control.on))
		for i, on := range control.on {
			values[i] = offWord
			if on {
				values[i] = onWord
			}
		}

		args = append(args, strings.Join(values, ","))
	}

	if len(args) > 3 {
		amixer.enqueue(args)
	}
}

func (amixer *Amixer) OptionSelected(listID string, index int) {
	amixer.lock.Lock()
	defer amixer.lock.Unlock()

	control, ok := amixer.state[listID]
	if !ok || index < 0 || index >= len(control.source.items) {
		slog.Warn(fmt.Sprintf("amixer: selection for unknown option %s[%d]", listID, index))
		return
	}

	amixer.enqueue([]string{"sset", listID, control.source.items[index]})
}

//
// private functions
//

func (amixer *Amixer) args(args ...string) []string {
	return append([]string{"-c", amixer.options.Card}, args...)
}

// enqueue must be called with the lock held. It never blocks the caller.
func (amixer *Amixer) enqueue(args []string) {
	if amixer.closed {
		return
	}

	select {
	case amixer.commands <- args:
	default:
		slog.Error("amixer: command queue full, dropping " + strings.Join(args, " "))
	}
}

func (amixer *Amixer) executeLoop(ctx context.Context) {
	defer amixer.worker.Done()

	for args := range amixer.commands {
		if ctx.Err() != nil {
			continue
		}

		slog.Debug("amixer: " + strings.Join(args, " "))

		if _, err := amixer.run(ctx, amixer.options.Binary, amixer.args(args...)...); err != nil {
			slog.Error("amixer: " + strings.Join(args, " ") + ": " + err.Error())
		}
	}
}

func (amixer *Amixer) addControl(source *simpleControl) {
	switch amixer.view {
	case mixer.ViewPlayback:
		if source.has("pvolume") || source.has("volume") || source.has("pswitch") || source.has("switch") {
			amixer.addChannels(source, playback)
		}
	case mixer.ViewRecording:
		if source.has("cvolume") || source.has("cswitch") {
			amixer.addChannels(source, capture)
		}
	case mixer.ViewOutputs:
		if source.has("enum") || source.has("penum") {
			amixer.addOptions(source)
		}
	case mixer.ViewInputs:
		if source.has("cenum") {
			amixer.addOptions(source)
		}
	}
}

func (amixer *Amixer) addChannels(source *simpleControl, dir direction) {
	values := source.values[dir]
	if len(values) == 0 {
		return
	}

	state := &amixerControl{
		source:    source,
		direction: dir,
		levels:    make([]int, len(values)),
		on:        make([]bool, len(values)),
	}

	limit := source.limits[dir]
	specs := make([]mixer.ChannelSpec, len(values))

	for i, value := range values {
		state.on[i] = !value.hasOn || value.on

		spec := mixer.ChannelSpec{
			Muted: !state.on[i],
		}

		if state.hasVolume() && limit.set {
			spec.MaxLevel = limit.max - limit.min
			spec.Level = value.level - limit.min
			spec.Mutable = true
		}

		state.levels[i] = spec.Level
		specs[i] = spec
	}

	amixer.state[source.id()] = state
	amixer.controls = append(amixer.controls, Control{
		ID:       source.id(),
		Name:     source.name,
		Channels: specs,
	})
}

func (amixer *Amixer) addOptions(source *simpleControl) {
	if len(source.items) == 0 {
		return
	}

	selected := max(slices.Index(source.items, source.item), 0)

	amixer.state[source.id()] = &amixerControl{source: source}
	amixer.controls = append(amixer.controls, Control{
		ID:       source.id(),
		Name:     source.name,
		Options:  slices.Clone(source.items),
		Selected: selected,
	})
}

func (control *amixerControl) hasVolume() bool {
	if control.direction == capture {
		return control.source.has("cvolume")
	}

	return control.source.has("pvolume") || control.source.has("volume")
}

func (control *amixerControl) hasSwitch() bool {
	if control.direction == capture {
		return control.source.has("cswitch")
	}

	return control.source.has("pswitch") || control.source.has("switch")
}

func execRunner(ctx context.Context, binary string, args ...string) ([]byte, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	shared.LogLines(stderr, slog.LevelWarn, "amixer: ")

	if err != nil {
		return nil, err
	}

	return stdout.Bytes(), nil
}
