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
	"fox-mixer/app"
	"fox-mixer/util"

	"github.com/spf13/cobra"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List the controls of the configured backend and exit",

	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := util.ReadConfig(cmd, argConfigFile)
		if err != nil {
			return err
		}

		return app.ListControls(config, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(controlsCmd)
}
