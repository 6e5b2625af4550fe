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
package display

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fox-mixer/mixer"

	"github.com/gdamore/tcell/v2"
)

var ErrUnknownKey = errors.New("unknown key name")

// DefaultBindings maps event names to the key names that trigger them. Key
// names are tcell key names ("Up", "PgDn", "Ctrl-C") or a single character.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"up":       {"Up", "k", "+"},
		"down":     {"Down", "j", "-"},
		"upmore":   {"PgUp", "K"},
		"downmore": {"PgDn", "J"},
		"next":     {"Right", "l", "Tab"},
		"previous": {"Left", "h", "Backtab"},
		"enter":    {"Enter", "i"},
		"exit":     {"Esc", "Backspace", "Backspace2"},
		"mute":     {"m", "M"},
		"quit":     {"q", "Q", "Ctrl-C"},
	}
}

// Keymap resolves terminal key events to panel events.
type Keymap struct {
	keys  map[tcell.Key]mixer.Event
	runes map[rune]mixer.Event
}

// NewKeymap builds a keymap from the default bindings. Every event present
// in overrides replaces its default keys.
func NewKeymap(overrides map[string][]string) (*Keymap, error) {
	bindings := DefaultBindings()
	for name, keys := range overrides {
		bindings[strings.ToLower(name)] = keys
	}

	keymap := &Keymap{
		keys:  make(map[tcell.Key]mixer.Event),
		runes: make(map[rune]mixer.Event),
	}

	keysByName := make(map[string]tcell.Key, len(tcell.KeyNames))
	for key, name := range tcell.KeyNames {
		keysByName[strings.ToLower(name)] = key
	}

	for name, keys := range bindings {
		event, err := mixer.ParseEvent(name)
		if err != nil {
			return nil, err
		}

		for _, keyName := range keys {
			if utf8.RuneCountInString(keyName) == 1 {
				r, _ := utf8.DecodeRuneInString(keyName)
				keymap.runes[r] = event
				continue
			}

			if strings.EqualFold(keyName, "space") {
				keymap.runes[' '] = event
				continue
			}

			key, ok := keysByName[strings.ToLower(keyName)]
			if !ok {
				return nil, fmt.Errorf("%w: %q bound to %s", ErrUnknownKey, keyName, name)
			}

			keymap.keys[key] = event
		}
	}

	return keymap, nil
}

// Resolve returns the event bound to a key press, or mixer.EventNone.
func (keymap *Keymap) Resolve(event *tcell.EventKey) mixer.Event {
	if event.Key() == tcell.KeyRune {
		return keymap.runes[event.Rune()]
	}

	return keymap.keys[event.Key()]
}
