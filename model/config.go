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
package model

import (
	"slices"
)

type OutputType int

const (
	OutputTUI OutputType = iota
	OutputJSON
)

var OutputTypeMap = map[string]OutputType{
	"tui":  OutputTUI,
	"json": OutputJSON,
}

func (outputType OutputType) String() string {
	for name, value := range OutputTypeMap {
		if value == outputType {
			return name
		}
	}

	return "unknown"
}

type BackendType string

const (
	BackendSimulation BackendType = "simulation"
	BackendProfile    BackendType = "profile"
	BackendAmixer     BackendType = "amixer"
)

var BackendTypes = []BackendType{BackendSimulation, BackendProfile, BackendAmixer}

type Config struct {
	Backend   BackendType `mapstructure:"backend" yaml:"backend,omitempty"`
	Profile   string      `mapstructure:"profile" yaml:"profile,omitempty"`
	Output    string      `mapstructure:"output" yaml:"output,omitempty"`
	View      string      `mapstructure:"view" yaml:"view,omitempty"`
	Step      int         `mapstructure:"step" yaml:"step,omitempty"`
	LargeStep int         `mapstructure:"large_step" yaml:"large_step,omitempty"`
	LogFile   string      `mapstructure:"log_file" yaml:"log_file,omitempty"`
	LogLevel  string      `mapstructure:"log_level" yaml:"log_level,omitempty"`

	Amixer     AmixerOptions       `mapstructure:"amixer" yaml:"amixer"`
	Simulation SimulationOptions   `mapstructure:"simulation" yaml:"simulation"`
	Keys       map[string][]string `mapstructure:"keys" yaml:"keys,omitempty"`

	// resolved from Output after loading
	OutputType OutputType `mapstructure:"-" yaml:"-"`
}

type AmixerOptions struct {
	Binary string `mapstructure:"binary" yaml:"binary,omitempty"`
	Card   string `mapstructure:"card" yaml:"card,omitempty"`
}

type SimulationOptions struct {
	GroupCount   int   `mapstructure:"group_count" yaml:"group_count,omitempty"`
	ChannelCount int   `mapstructure:"channel_count" yaml:"channel_count,omitempty"`
	Seed         int64 `mapstructure:"seed" yaml:"seed,omitempty"`
}

// OutputTypeNames lists the accepted output names, sorted.
func OutputTypeNames() []string {
	names := make([]string, 0, len(OutputTypeMap))
	for name := range OutputTypeMap {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
