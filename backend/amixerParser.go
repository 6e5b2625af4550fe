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
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrAmixerOutput = errors.New("unexpected amixer output")

	controlHeaderRegex = regexp.MustCompile(`^Simple mixer control '(.*)',(\d+)$`)
	quotedItemRegex    = regexp.MustCompile(`'([^']*)'`)
)

type direction int

const (
	playback direction = iota
	capture
)

func (dir direction) String() string {
	if dir == capture {
		return "capture"
	}

	return "playback"
}

type channelValue struct {
	name     string
	level    int
	hasLevel bool
	on       bool
	hasOn    bool
}

type limits struct {
	min int
	max int
	set bool
}

// simpleControl is one "Simple mixer control" block of amixer scontents.
type simpleControl struct {
	name         string
	index        int
	capabilities []string
	limits       [2]limits
	values       [2][]channelValue
	items        []string
	item         string
}

func (control *simpleControl) id() string {
	return control.name + "," + strconv.Itoa(control.index)
}

func (control *simpleControl) has(capability string) bool {
	return slices.Contains(control.capabilities, capability)
}

// parseScontents reads the output of `amixer scontents`.
func parseScontents(reader io.Reader) ([]*simpleControl, error) {
	controls := make([]*simpleControl, 0)
	var current *simpleControl

	scanner := bufio.NewScanner(reader)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if match := controlHeaderRegex.FindStringSubmatch(line); match != nil {
			index, _ := strconv.Atoi(match[2])
			current = &simpleControl{name: match[1], index: index}
			controls = append(controls, current)
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("%w: line %d outside of a control: %q", ErrAmixerOutput, lineNumber, line)
		}

		key, value, found := strings.Cut(strings.TrimSpace(line), ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case "Capabilities":
			current.capabilities = strings.Fields(value)
		case "Playback channels", "Capture channels":
			// channel names are repeated on the value lines
		case "Limits":
			parseLimits(current, value)
		case "Items":
			for _, match := range quotedItemRegex.FindAllStringSubmatch(value, -1) {
				current.items = append(current.items, match[1])
			}
		case "Item0":
			if match := quotedItemRegex.FindStringSubmatch(value); match != nil {
				current.item = match[1]
			}
		default:
			if strings.HasPrefix(key, "Item") {
				// multi channel enums follow Item0
				continue
			}

			parseChannelValues(current, key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return controls, nil
}

// parseLimits handles "Playback 0 - 87", "Capture 0 - 63" and the
// directionless "0 - 31".
func parseLimits(control *simpleControl, value string) {
	section := playback
	numbers := make([]int, 0, 2)

	flush := func() {
		if len(numbers) == 2 {
			control.limits[section] = limits{min: numbers[0], max: numbers[1], set: true}
		}
		numbers = numbers[:0]
	}

	for _, field := range strings.Fields(value) {
		switch field {
		case "Playback":
			flush()
			section = playback
		case "Capture":
			flush()
			section = capture
		case "-":
		default:
			if number, err := strconv.Atoi(field); err == nil {
				numbers = append(numbers, number)
			}
		}
	}

	flush()
}

// parseChannelValues handles a line such as
// "Front Left: Playback 40 [63%] [-30.00dB] [on]".
func parseChannelValues(control *simpleControl, name string, value string) {
	section := playback
	var current *channelValue

	flush := func() {
		if current != nil && (current.hasLevel || current.hasOn) {
			control.values[section] = append(control.values[section], *current)
		}
		current = &channelValue{name: name}
	}

	flush()

	for _, field := range strings.Fields(value) {
		switch {
		case field == "Playback":
			flush()
			section = playback
		case field == "Capture":
			flush()
			section = capture
		case field == "[on]":
			current.on, current.hasOn = true, true
		case field == "[off]":
			current.on, current.hasOn = false, true
		default:
			if level, err := strconv.Atoi(field); err == nil && !current.hasLevel {
				current.level, current.hasLevel = level, true
			}
		}
	}

	flush()
}
