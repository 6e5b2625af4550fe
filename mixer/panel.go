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

// Panel is the top level controller. It owns the widgets, the index of the
// current widget and the focus mode, and routes every input event.
//
// Exactly one widget is highlighted whenever the panel has widgets, and it
// is always the current one.
type Panel struct {
	widgets   []*Widget
	current   int
	mode      Mode
	view      View
	step      int
	largeStep int
}

func NewPanel(view View) *Panel {
	return &Panel{
		widgets:   make([]*Widget, 0),
		current:   0,
		mode:      ModeOutside,
		view:      view,
		step:      DefaultStep,
		largeStep: DefaultLargeStep,
	}
}

// SetSteps sets the level steps used by channel groups added afterwards.
func (panel *Panel) SetSteps(step int, largeStep int) {
	if step >= 1 {
		panel.step = step
	}

	if largeStep >= 1 {
		panel.largeStep = largeStep
	}
}

//
// construction
//

func (panel *Panel) AddChannels(name string, id string, specs []ChannelSpec, listener Listener) *Widget {
	group := NewChannelGroup(id, specs, listener)
	group.SetSteps(panel.step, panel.largeStep)

	return panel.addWidget(NewChannelWidget(name, panel.Height(), group))
}

func (panel *Panel) AddOptions(name string, id string, options []string, selected int, listener Listener) *Widget {
	list := NewOptionList(id, options, selected, listener)

	return panel.addWidget(NewOptionWidget(name, panel.Height(), list))
}

func (panel *Panel) addWidget(widget *Widget) *Widget {
	panel.widgets = append(panel.widgets, widget)

	if len(panel.widgets) == 1 {
		panel.current = 0
		widget.SetHighlight(true)
	}

	return widget
}

//
// queries
//

// Height is the first row below the last widget. An empty panel starts right
// below the header.
func (panel *Panel) Height() int {
	if len(panel.widgets) == 0 {
		return HeaderHeight
	}

	return panel.widgets[len(panel.widgets)-1].EndPosition()
}

func (panel *Panel) Count() int {
	return len(panel.widgets)
}

func (panel *Panel) Widgets() []*Widget {
	return slices.Clone(panel.widgets)
}

func (panel *Panel) Widget(index int) *Widget {
	if index < 0 || index >= len(panel.widgets) {
		return nil
	}

	return panel.widgets[index]
}

// Current returns the current widget, or nil if the panel is empty.
func (panel *Panel) Current() *Widget {
	return panel.Widget(panel.current)
}

func (panel *Panel) CurrentIndex() int {
	return panel.current
}

func (panel *Panel) Mode() Mode {
	return panel.mode
}

func (panel *Panel) View() View {
	return panel.view
}

func (panel *Panel) SetView(view View) {
	panel.view = view
}

func (panel *Panel) Header() StatusHeader {
	return StatusHeader{View: panel.view}
}

func (panel *Panel) Footer() StatusFooter {
	return StatusFooter{Mode: panel.mode}
}

//
// widget selection
//

func (panel *Panel) Next() {
	if len(panel.widgets) == 0 {
		return
	}

	panel.moveTo(min(panel.current+1, len(panel.widgets)-1))
}

func (panel *Panel) Previous() {
	if len(panel.widgets) == 0 {
		return
	}

	panel.moveTo(max(panel.current-1, 0))
}

func (panel *Panel) SetCurrent(index int) error {
	if index < 0 || index >= len(panel.widgets) {
		return indexError("widget", index, len(panel.widgets))
	}

	panel.moveTo(index)

	return nil
}

func (panel *Panel) moveTo(index int) {
	if index == panel.current {
		return
	}

	panel.widgets[panel.current].SetHighlight(false)
	panel.current = index
	panel.widgets[panel.current].SetHighlight(true)
}

//
// focus mode
//

// Enter switches to inside mode. It returns false if the panel is already
// inside.
func (panel *Panel) Enter() bool {
	if panel.mode == ModeInside {
		return false
	}

	panel.mode = ModeInside

	return true
}

// Exit switches back to outside mode. It returns false if the panel was
// already outside.
func (panel *Panel) Exit() bool {
	if panel.mode == ModeOutside {
		return false
	}

	panel.mode = ModeOutside

	return true
}

//
// control operations
//

func (panel *Panel) Up() {
	if widget := panel.inside(); widget != nil {
		widget.Up()
	}
}

func (panel *Panel) Down() {
	if widget := panel.inside(); widget != nil {
		widget.Down()
	}
}

func (panel *Panel) UpMore() {
	if widget := panel.inside(); widget != nil {
		widget.UpMore()
	}
}

func (panel *Panel) DownMore() {
	if widget := panel.inside(); widget != nil {
		widget.DownMore()
	}
}

// Mute mutes the current widget in either mode.
func (panel *Panel) Mute() {
	if widget := panel.Current(); widget != nil {
		widget.Mute()
	}
}

// inside returns the current widget if the panel is in inside mode.
func (panel *Panel) inside() *Widget {
	if panel.mode != ModeInside {
		return nil
	}

	return panel.Current()
}

// Handle applies a single input event and reports whether it asked to quit.
func (panel *Panel) Handle(event Event) bool {
	switch event {
	case EventQuit:
		return true
	case EventNext:
		if widget := panel.inside(); widget != nil {
			widget.Next()
		} else {
			panel.Next()
		}
	case EventPrevious:
		if widget := panel.inside(); widget != nil {
			widget.Previous()
		} else {
			panel.Previous()
		}
	case EventEnter:
		panel.Enter()
	case EventExit:
		panel.Exit()
	case EventUp:
		panel.Up()
	case EventDown:
		panel.Down()
	case EventUpMore:
		panel.UpMore()
	case EventDownMore:
		panel.DownMore()
	case EventMute:
		panel.Mute()
	case EventNone:
	}

	return false
}

// PanelState is a snapshot of the whole panel for the json output.
type PanelState struct {
	View    string        `json:"view"`
	Mode    string        `json:"mode"`
	Current int           `json:"current"`
	Widgets []WidgetState `json:"widgets"`
}

func (panel *Panel) State() PanelState {
	state := PanelState{
		View:    panel.view.String(),
		Mode:    panel.mode.String(),
		Current: panel.current,
		Widgets: make([]WidgetState, len(panel.widgets)),
	}

	for i, widget := range panel.widgets {
		state.Widgets[i] = widget.State()
	}

	return state
}
