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
	"strings"
	"text/tabwriter"

	"fox-mixer/model"
	"fox-mixer/reaper"
)

// ListControls prints the controls the configured backend discovers.
func ListControls(config *model.Config, output io.Writer) error {
	reaper := reaper.NewReaper()
	defer reaper.Reap()

	mixerBackend, err := openBackend(config, reaper)
	if err != nil {
		return err
	}
	defer mixerBackend.Close()

	writer := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "%s (%s)\n", mixerBackend.Name(), mixerBackend.View())
	fmt.Fprintln(writer, "ID\tNAME\tKIND\tVALUES")

	for _, control := range mixerBackend.Controls() {
		if control.IsOptions() {
			options := make([]string, len(control.Options))
			for i, option := range control.Options {
				if i == control.Selected {
					option = "[" + option + "]"
				}
				options[i] = option
			}

			fmt.Fprintf(writer, "%s\t%s\toptions\t%s\n", control.ID, control.Name, strings.Join(options, " "))
			continue
		}

		levels := make([]string, len(control.Channels))
		for i, channel := range control.Channels {
			levels[i] = fmt.Sprintf("%d/%d", channel.Level, channel.MaxLevel)
			if channel.Muted {
				levels[i] += " muted"
			}
		}

		fmt.Fprintf(writer, "%s\t%s\tchannels\t%s\n", control.ID, control.Name, strings.Join(levels, ", "))
	}

	return writer.Flush()
}
