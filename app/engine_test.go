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
package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fox-mixer/display"
	"fox-mixer/model"
	"fox-mixer/shared"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()

	return &model.Config{
		Backend:    model.BackendSimulation,
		Output:     "json",
		OutputType: model.OutputJSON,
		View:       "playback",
		Step:       1,
		LargeStep:  5,
		LogFile:    filepath.Join(t.TempDir(), "fox-mixer.log"),
		LogLevel:   "debug",
		Simulation: model.SimulationOptions{GroupCount: 2, ChannelCount: 2, Seed: 7},
	}
}

func TestRunEngine_Json(t *testing.T) {
	config := testConfig(t)
	output := &bytes.Buffer{}

	if err := runEngine(config, strings.NewReader("next\nnext\nenter\nquit\n"), output); err != nil {
		t.Fatalf("runEngine: %v", err)
	}

	var last display.JsonState
	states := 0

	scanner := bufio.NewScanner(output)
	for scanner.Scan() {
		var state display.JsonState
		if err := json.Unmarshal(scanner.Bytes(), &state); err != nil {
			t.Fatalf("invalid json line %q: %v", scanner.Text(), err)
		}

		if state.MessageType == "state" {
			states++
			last = state
		}
	}

	if states != 5 {
		t.Fatalf("expected 5 state lines, got %d", states)
	}

	// two channel groups and the output selector; next stops at the last widget
	if len(last.Widgets) != 3 || last.Current != 2 || last.Mode != "Inside" {
		t.Fatalf("unexpected final state %+v", last.PanelState)
	}
}

func TestRunEngine_RestoresDefaultLogger(t *testing.T) {
	logOutput := &bytes.Buffer{}
	logger := slog.New(shared.NewWriterHandler(logOutput, slog.LevelInfo))

	previous := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(previous)

	config := testConfig(t)

	if err := runEngine(config, strings.NewReader("quit\n"), &bytes.Buffer{}); err != nil {
		t.Fatalf("runEngine: %v", err)
	}

	if slog.Default() != logger {
		t.Fatalf("expected the default logger to be restored")
	}

	slog.Info("after the engine")

	if !strings.Contains(logOutput.String(), "after the engine") {
		t.Fatalf("expected the restored logger to receive records, got %q", logOutput.String())
	}

	content, err := os.ReadFile(config.LogFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if !strings.Contains(string(content), "fox-mixer stopped") || strings.Contains(string(content), "after the engine") {
		t.Fatalf("unexpected log file content %q", content)
	}
}

func TestRunEngine_BadKeys(t *testing.T) {
	config := testConfig(t)
	config.OutputType = model.OutputTUI
	config.Keys = map[string][]string{"mute": {"NoSuchKey"}}

	if err := runEngine(config, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected an error for an unknown key name")
	}
}

func TestListControls(t *testing.T) {
	output := &bytes.Buffer{}

	if err := ListControls(testConfig(t), output); err != nil {
		t.Fatalf("ListControls: %v", err)
	}

	text := output.String()
	for _, expected := range []string{"simulation (Playback)", "sim-1", "Channel 2", "sim-output", "options"} {
		if !strings.Contains(text, expected) {
			t.Fatalf("expected %q in %q", expected, text)
		}
	}
}
