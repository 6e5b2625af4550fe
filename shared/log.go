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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

//------------------------------------------------------------------
// public functions
//------------------------------------------------------------------

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(name string) (slog.Level, error) {
	level, err := charmlog.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", name, err)
	}

	return slog.Level(level), nil
}

// NewFileHandler opens (or creates) the log file and returns a slog handler
// writing to it together with the file, which the caller closes on exit.
func NewFileHandler(logFile string, level slog.Level) (slog.Handler, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	return NewWriterHandler(file, level), file, nil
}

// NewWriterHandler returns the text handler used for every log sink.
func NewWriterHandler(writer io.Writer, level slog.Level) slog.Handler {
	return charmlog.NewWithOptions(writer, charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
}

// LogLines reads reader to the end and logs every non-empty line at the given
// level. Used to capture the stderr of helper processes.
func LogLines(reader io.Reader, level slog.Level, prefix string) {
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		slog.Log(context.Background(), level, prefix+line)
	}
}
