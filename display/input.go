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
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"fox-mixer/mixer"
)

// LineEventSource reads one event name per line. Blank lines and lines
// starting with # are skipped. It can only be consumed once.
type LineEventSource struct {
	lines     chan string
	done      chan struct{}
	finished  chan struct{}
	closeOnce sync.Once
	err       error
}

func NewLineEventSource(input io.Reader) *LineEventSource {
	source := &LineEventSource{
		lines:    make(chan string),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	go func() {
		defer close(source.finished)

		scanner := bufio.NewScanner(input)

		for scanner.Scan() {
			select {
			case source.lines <- scanner.Text():
			case <-source.done:
				return
			}
		}

		source.err = scanner.Err()
		close(source.lines)
	}()

	return source
}

// Close stops the reader. A read already blocked on the input ends with the
// next line it receives. Next returns io.EOF after Close.
func (source *LineEventSource) Close() {
	source.closeOnce.Do(func() {
		close(source.done)
	})
}

// Next blocks until the next event is available. It returns io.EOF once the
// input is exhausted, ctx.Err() when ctx is cancelled, and a wrapped
// mixer.ErrUnknownEvent (along with the raw line) for lines that do not name
// an event.
func (source *LineEventSource) Next(ctx context.Context) (mixer.Event, string, error) {
	for {
		select {
		case <-ctx.Done():
			return mixer.EventNone, "", ctx.Err()

		case <-source.done:
			return mixer.EventNone, "", io.EOF

		case line, ok := <-source.lines:
			if !ok {
				if source.err != nil {
					return mixer.EventNone, "", source.err
				}

				return mixer.EventNone, "", io.EOF
			}

			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			event, err := mixer.ParseEvent(line)

			return event, line, err
		}
	}
}
