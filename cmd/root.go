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
package cmd

import (
	"os"

	"fox-mixer/app"
	"fox-mixer/util"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// set at build time with -ldflags "-X fox-mixer/cmd.version=..."
var version = "dev"

var (
	// arguments
	argConfigFile string

	rootCmd = &cobra.Command{
		Use:     "fox-mixer",
		Short:   "Keyboard driven terminal mixer control panel",
		Version: version,

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := util.ReadConfig(cmd, argConfigFile)
			if err != nil {
				return err
			}

			return app.RunEngine(config)
		},
	}
)

func init() {
	addConfigFlags(rootCmd.PersistentFlags())
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&argConfigFile, "config", "c", "", "Path of the config file (default: search for fox-mixer.yaml)")

	flags.StringP("backend", "b", "simulation", "Mixer backend: simulation, profile or amixer")
	flags.StringP("profile", "p", "", "Name or path of the profile used by the profile backend")
	flags.StringP("output", "o", "tui", "Output type: tui or json")
	flags.String("view", "playback", "View to show: playback, recording, outputs or inputs")
	flags.Int("step", 1, "Level change for up and down")
	flags.Int("large-step", 5, "Level change for page up and page down")
	flags.String("log-file", "~/.cache/fox-mixer/fox-mixer.log", "File to write the log to")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")

	flags.String("card", "0", "ALSA card used by the amixer backend")
	flags.String("amixer-binary", "amixer", "Path of the amixer binary")

	flags.Int("simulate-groups", 4, "Number of channel groups to simulate")
	flags.Int("simulate-channels", 2, "Number of channels per simulated group")
	flags.Int64("seed", 0, "Seed for the simulation, 0 picks one")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
