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
	"fmt"
	"io"
	"log/slog"
	"os"

	"fox-mixer/backend"
	"fox-mixer/display"
	"fox-mixer/mixer"
	"fox-mixer/model"
	"fox-mixer/reaper"
	"fox-mixer/shared"
)

// RunEngine runs the panel until the user quits or the process is
// interrupted.
func RunEngine(config *model.Config) error {
	return runEngine(config, os.Stdin, os.Stdout)
}

func runEngine(config *model.Config, input io.Reader, output io.Writer) error {
	previousLogger := slog.Default()

	fileHandler, logCloser, err := configureFileLogger(config)
	if err != nil {
		return err
	}
	defer func() {
		// nothing may log into the file once it is closed
		slog.SetDefault(previousLogger)
		logCloser.Close()
	}()

	slog.Info(fmt.Sprintf("Starting fox-mixer with the %s backend and %s output", config.Backend, config.OutputType))

	reaper := reaper.NewReaper()

	// callbacks run in reverse, so this one runs last
	finished := make(chan bool)
	reaper.Callback("engine", func() { close(finished) })

	mixerBackend, err := openBackend(config, reaper)
	if err != nil {
		return err
	}
	reaper.Callback("backend", mixerBackend.Close)

	panel := mixer.NewPanel(mixerBackend.View())
	panel.SetSteps(config.Step, config.LargeStep)
	backend.Populate(panel, mixerBackend)

	ui, err := newUI(config, panel, reaper, input, output)
	if err == nil {
		err = ui.Initialize()
	}

	if err != nil {
		reaper.Reap()
		return err
	}

	configureUiLogger(ui, fileHandler)

	ui.Start()
	reaper.Callback("ui", ui.Shutdown)

	stopSignals := shared.CatchSigint(func() {
		slog.Info("Caught signal, calling reaper")
		go reaper.Reap()
	})
	defer stopSignals()

	<-finished
	reaper.Wait()

	slog.Info("fox-mixer stopped")

	return nil
}

func configureFileLogger(config *model.Config) (slog.Handler, io.Closer, error) {
	level, err := shared.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	handler, closer, err := shared.NewFileHandler(config.LogFile, level)
	if err != nil {
		return nil, nil, err
	}

	slog.SetDefault(slog.New(handler))

	return handler, closer, nil
}

func configureUiLogger(ui display.UI, fileHandler slog.Handler) {
	handler := shared.NewUiLogHandler(ui, slog.LevelWarn, fileHandler)
	slog.SetDefault(slog.New(handler))
}

func openBackend(config *model.Config, reaper *reaper.Reaper) (backend.Backend, error) {
	mixerBackend, err := backend.New(config)
	if err != nil {
		return nil, err
	}

	if err := mixerBackend.Open(reaper.Context()); err != nil {
		return nil, err
	}

	return mixerBackend, nil
}

func newUI(config *model.Config, panel *mixer.Panel, reaper *reaper.Reaper, input io.Reader, output io.Writer) (display.UI, error) {
	switch config.OutputType {
	case model.OutputJSON:
		return display.NewJsonUI(panel, input, output, reaper), nil

	case model.OutputTUI:
		keymap, err := display.NewKeymap(config.Keys)
		if err != nil {
			return nil, err
		}

		return display.NewTui(panel, keymap, reaper), nil
	}

	return nil, fmt.Errorf("unsupported output type %v", config.OutputType)
}
