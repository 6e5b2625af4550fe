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
	"context"
	"log/slog"

	"fox-mixer/display"
)

// UiLogHandler passes every record on to the next handler and additionally
// shows records at or above level in the UI.
type UiLogHandler struct {
	level slog.Level
	ui    display.UI
	next  slog.Handler
}

func NewUiLogHandler(out display.UI, level slog.Level, next slog.Handler) *UiLogHandler {
	h := &UiLogHandler{
		level: level,
		ui:    out,
		next:  next,
	}

	return h
}

func (h *UiLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		h.ui.WriteLevelLog(r.Level, r.Message)
	}

	if h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}

	return nil
}

func (h *UiLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level || h.next.Enabled(ctx, level)
}

func (h *UiLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &UiLogHandler{level: h.level, ui: h.ui, next: h.next.WithAttrs(attrs)}
}

func (h *UiLogHandler) WithGroup(name string) slog.Handler {
	return &UiLogHandler{level: h.level, ui: h.ui, next: h.next.WithGroup(name)}
}
