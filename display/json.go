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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"fox-mixer/mixer"
	"fox-mixer/reaper"
)

//
// types
//

// JsonUI drives a panel from event names read one per line and answers every
// line with a JSON document describing the panel.
type JsonUI struct {
	shutdownChannel chan bool

	input  io.Reader
	output io.Writer
	lock   sync.Mutex

	panel      *mixer.Panel
	reaper     *reaper.Reaper
	errorCount int

	ctx    context.Context
	cancel context.CancelFunc
}

//
// constructor
//

func NewJsonUI(panel *mixer.Panel, input io.Reader, output io.Writer, reaper *reaper.Reaper) *JsonUI {
	ctx, cancel := context.WithCancel(reaper.Context())

	jsonUi := &JsonUI{
		shutdownChannel: make(chan bool, 1),

		input:  input,
		output: output,

		panel:  panel,
		reaper: reaper,

		ctx:    ctx,
		cancel: cancel,
	}

	return jsonUi
}

func (j *JsonUI) Initialize() error {
	// nothing to do here
	return nil
}

func (j *JsonUI) Start() {
	j.reaper.Register("json")

	go func() {
		j.excecuteLoop()

		j.shutdownChannel <- true
		j.reaper.Done("json")
	}()
}

func (j *JsonUI) excecuteLoop() {
	slog.Debug("JSON loop started")

	source := NewLineEventSource(j.input)
	defer source.Close()

	j.printState()

	for {
		event, line, err := source.Next(j.ctx)

		if errors.Is(err, mixer.ErrUnknownEvent) {
			slog.Warn("Ignoring unknown event: " + line)
			j.printError(line, err)
			continue
		}

		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				slog.Error("Error reading events: " + err.Error())
			}

			slog.Info("JSON UI shutting down")
			go j.reaper.Reap()
			return
		}

		quit := j.panel.Handle(event)
		j.printState()

		if quit {
			slog.Info("JSON UI received quit")
			go j.reaper.Reap()
			return
		}
	}
}

func (j *JsonUI) Shutdown() {
	slog.Debug("Shutting down JSON UI")
	j.cancel()

	slog.Debug("Waiting for JSON UI to shut down")
	j.WaitForShutdown()
}

func (j *JsonUI) IsShutdown() bool {
	return len(j.shutdownChannel) > 0
}

func (j *JsonUI) WaitForShutdown() {
	<-j.shutdownChannel
	j.shutdownChannel <- true
}

func (j *JsonUI) WriteLevelLog(level slog.Level, message string) {
	j.lock.Lock()
	if level >= slog.LevelError {
		j.errorCount++
	}
	j.lock.Unlock()

	logObj := JsonLog{
		MessageType: "log",

		Date:    time.Now().Format(time.RFC3339),
		Level:   level.String(),
		Message: message,
	}

	j.printJson(logObj)
}

//
// private functions
//

func (j *JsonUI) printJson(v any) {
	jsonBytes, err := json.Marshal(v)

	if err != nil {
		slog.Error("Error marshalling to JSON: " + err.Error())
		return
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	fmt.Fprintln(j.output, string(jsonBytes))
}

func (j *JsonUI) printState() {
	j.lock.Lock()
	errorCount := j.errorCount
	j.lock.Unlock()

	j.printJson(&JsonState{
		MessageType: "state",

		Header:     j.panel.Header().Text(),
		Footer:     j.panel.Footer().Text(),
		ErrorCount: errorCount,

		PanelState: j.panel.State(),
	})
}

func (j *JsonUI) printError(input string, err error) {
	j.printJson(&JsonError{
		MessageType: "error",

		Input:   input,
		Message: err.Error(),
	})
}
