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
package util

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fox-mixer/mixer"
	"fox-mixer/model"
	"fox-mixer/shared"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "fox-mixer"
	envPrefix  = "foxmixer"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// flag name -> configuration key
var flagKeys = map[string]string{
	"backend":           "backend",
	"profile":           "profile",
	"output":            "output",
	"view":              "view",
	"step":              "step",
	"large-step":        "large_step",
	"log-file":          "log_file",
	"log-level":         "log_level",
	"amixer-binary":     "amixer.binary",
	"card":              "amixer.card",
	"simulate-groups":   "simulation.group_count",
	"simulate-channels": "simulation.channel_count",
	"seed":              "simulation.seed",
}

func configDefaults() map[string]any {
	return map[string]any{
		"backend":    string(model.BackendSimulation),
		"profile":    "",
		"output":     "tui",
		"view":       "playback",
		"step":       mixer.DefaultStep,
		"large_step": mixer.DefaultLargeStep,
		"log_file":   "~/.cache/fox-mixer/fox-mixer.log",
		"log_level":  "info",

		"amixer.binary": "amixer",
		"amixer.card":   "0",

		"simulation.group_count":   4,
		"simulation.channel_count": 2,
		"simulation.seed":          0,
	}
}

// ReadConfig layers defaults, the config file, FOXMIXER_* environment
// variables and the command line flags, in increasing precedence. An empty
// configFile searches for fox-mixer.yaml; a missing file is not an error
// unless it was named explicitly.
func ReadConfig(cmd *cobra.Command, configFile string) (*model.Config, error) {
	v := viper.New()

	for key, value := range configDefaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if configFile != "" {
		resolved, err := ResolveHomeDirPath(configFile)
		if err != nil {
			return nil, err
		}

		v.SetConfigFile(resolved)
	}

	for _, dir := range SearchPaths() {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for flagName, key := range flagKeys {
			flag := cmd.Flags().Lookup(flagName)
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	config := &model.Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := prepareConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func prepareConfig(config *model.Config) error {
	config.Backend = model.BackendType(strings.ToLower(string(config.Backend)))
	if !slices.Contains(model.BackendTypes, config.Backend) {
		return fmt.Errorf("%w: backend %q, valid options: simulation, profile, amixer", ErrInvalidConfig, config.Backend)
	}

	outputType, ok := model.OutputTypeMap[strings.ToLower(config.Output)]
	if !ok {
		return fmt.Errorf("%w: output %q, valid options: %s", ErrInvalidConfig, config.Output, strings.Join(model.OutputTypeNames(), ", "))
	}
	config.OutputType = outputType

	if config.Backend == model.BackendProfile && config.Profile == "" {
		return fmt.Errorf("%w: the profile backend needs a profile", ErrInvalidConfig)
	}

	if _, err := mixer.ParseView(config.View); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if config.Step < 1 || config.LargeStep < 1 {
		return fmt.Errorf("%w: step and large_step must be at least 1", ErrInvalidConfig)
	}

	if _, err := shared.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	logFile, err := ResolveHomeDirPath(config.LogFile)
	if err != nil {
		return err
	}
	config.LogFile = logFile

	return nil
}
