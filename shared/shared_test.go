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
package shared

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type recordingUi struct {
	levels   []slog.Level
	messages []string
}

func (ui *recordingUi) Initialize() error { return nil }
func (ui *recordingUi) Start()            {}
func (ui *recordingUi) Shutdown()         {}
func (ui *recordingUi) IsShutdown() bool  { return false }
func (ui *recordingUi) WaitForShutdown()  {}

func (ui *recordingUi) WriteLevelLog(level slog.Level, message string) {
	ui.levels = append(ui.levels, level)
	ui.messages = append(ui.messages, message)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
	}

	for name, want := range cases {
		got, err := ParseLevel(name)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v (%v)", name, want, got, err)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}

func TestUiLogHandler(t *testing.T) {
	ui := &recordingUi{}
	buffer := &bytes.Buffer{}
	logger := slog.New(NewUiLogHandler(ui, slog.LevelWarn, NewWriterHandler(buffer, slog.LevelInfo)))

	logger.Debug("too quiet")
	logger.Info("file only")
	logger.Warn("both places")
	logger.With("card", 0).Error("still both")

	if len(ui.messages) != 2 || ui.messages[0] != "both places" || ui.levels[1] != slog.LevelError {
		t.Fatalf("unexpected ui messages %v %v", ui.messages, ui.levels)
	}

	written := buffer.String()
	if strings.Contains(written, "too quiet") {
		t.Fatalf("debug record should be filtered, got %q", written)
	}

	for _, message := range []string{"file only", "both places", "still both", "card=0"} {
		if !strings.Contains(written, message) {
			t.Fatalf("expected %q in log output %q", message, written)
		}
	}
}

func TestNewFileHandler(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "fox-mixer.log")

	handler, closer, err := NewFileHandler(logFile, slog.LevelDebug)
	if err != nil {
		t.Fatalf("NewFileHandler: %v", err)
	}

	slog.New(handler).Debug("written to disk")
	closer.Close()

	contents, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	if !strings.Contains(string(contents), "written to disk") {
		t.Fatalf("unexpected log file contents %q", contents)
	}
}

func TestLogLines(t *testing.T) {
	buffer := &bytes.Buffer{}
	previous := slog.Default()
	slog.SetDefault(slog.New(NewWriterHandler(buffer, slog.LevelInfo)))
	defer slog.SetDefault(previous)

	LogLines(strings.NewReader("first\n\n  second  \n"), slog.LevelWarn, "amixer: ")

	written := buffer.String()
	if !strings.Contains(written, "amixer: first") || !strings.Contains(written, "amixer: second") {
		t.Fatalf("unexpected output %q", written)
	}

	if strings.Count(written, "amixer:") != 2 {
		t.Fatalf("blank lines should be skipped, got %q", written)
	}
}
