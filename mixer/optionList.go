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

import "slices"

// OptionList is a single-select list of named options. Like a fader, up
// moves towards the last option and down towards the first; navigation
// clamps at both ends.
type OptionList struct {
	id        string
	options   []string
	highlight int
	listener  Listener
}

// NewOptionList creates a list with the given option selected. An out of
// range selection falls back to the first option.
func NewOptionList(id string, options []string, selected int, listener Listener) *OptionList {
	list := &OptionList{
		id:        id,
		options:   slices.Clone(options),
		highlight: selected,
		listener:  listenerOrNop(listener),
	}

	if selected < 0 || selected >= len(list.options) {
		list.highlight = 0
	}

	if len(list.options) == 0 {
		list.highlight = -1
	}

	return list
}

func (list *OptionList) ID() string {
	return list.id
}

func (list *OptionList) Count() int {
	return len(list.options)
}

func (list *OptionList) Options() []string {
	return slices.Clone(list.options)
}

func (list *OptionList) HighlightIndex() int {
	return list.highlight
}

// CurrentOption returns the highlighted label, or an empty string for an
// empty list.
func (list *OptionList) CurrentOption() string {
	if list.highlight < 0 {
		return ""
	}

	return list.options[list.highlight]
}

// Up moves the highlight towards the last option (index + 1), clamped.
func (list *OptionList) Up() {
	list.move(1)
}

// Down moves the highlight towards the first option (index - 1), clamped.
func (list *OptionList) Down() {
	list.move(-1)
}

func (list *OptionList) SetCurrent(index int) error {
	if index < 0 || index >= len(list.options) {
		return indexError("option", index, len(list.options))
	}

	list.selectIndex(index)

	return nil
}

func (list *OptionList) move(delta int) {
	if len(list.options) == 0 {
		return
	}

	list.selectIndex(min(max(list.highlight+delta, 0), len(list.options)-1))
}

func (list *OptionList) selectIndex(index int) {
	if index == list.highlight {
		return
	}

	list.highlight = index
	list.listener.OptionSelected(list.id, index)
}
