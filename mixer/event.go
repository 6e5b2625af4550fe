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
	"fmt"
	"strings"
)

// Event is a named input event delivered to the panel.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventUpMore
	EventDownMore
	EventNext
	EventPrevious
	EventEnter
	EventExit
	EventMute
	EventQuit
)

var eventNames = map[Event]string{
	EventUp:       "up",
	EventDown:     "down",
	EventUpMore:   "upmore",
	EventDownMore: "downmore",
	EventNext:     "next",
	EventPrevious: "previous",
	EventEnter:    "enter",
	EventExit:     "exit",
	EventMute:     "mute",
	EventQuit:     "quit",
}

func (event Event) String() string {
	if name, ok := eventNames[event]; ok {
		return name
	}

	return "none"
}

// Events lists every named event in declaration order.
func Events() []Event {
	return []Event{
		EventUp, EventDown, EventUpMore, EventDownMore, EventNext,
		EventPrevious, EventEnter, EventExit, EventMute, EventQuit,
	}
}

func ParseEvent(name string) (Event, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for event, eventName := range eventNames {
		if eventName == name {
			return event, nil
		}
	}

	return EventNone, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}
