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
	"os"
	"path/filepath"
	"testing"

	"fox-mixer/model"

	"github.com/spf13/cobra"
)

const testProfile = `name: desk
view: outputs
widgets:
  - name: Master
    id: master
    channels:
      - max_level: 100
        level: 40
      - max_level: 100
        level: 40
        mutable: false
  - name: Output
    options: [Speakers, Headphones]
    selected: 1
`

func writeFile(t *testing.T, dir string, name string, contents string) string {
	t.Helper()

	filePath := filepath.Join(dir, name)
	if err := os.WriteFile(filePath, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing %s: %v", filePath, err)
	}

	return filePath
}

func TestReadProfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "desk.profile", testProfile)

	profile, err := ReadProfile(filepath.Join(dir, "desk"))
	if err != nil {
		t.Fatalf("ReadProfile: %v", err)
	}

	if profile.View != "outputs" || len(profile.Widgets) != 2 {
		t.Fatalf("unexpected profile %+v", profile)
	}

	master := profile.Widgets[0]
	if len(master.Channels) != 2 || master.Channels[0].Level != 40 {
		t.Fatalf("unexpected master widget %+v", master)
	}

	if !master.Channels[0].IsMutable() || master.Channels[1].IsMutable() {
		t.Fatalf("mutable should default to true and honour false")
	}

	if profile.Widgets[1].Selected != 1 {
		t.Fatalf("expected option 1 selected, got %d", profile.Widgets[1].Selected)
	}
}

func TestReadProfile_Missing(t *testing.T) {
	if _, err := ReadProfile(filepath.Join(t.TempDir(), "nothing")); !errors.Is(err, ErrYamlNotFound) {
		t.Fatalf("expected ErrYamlNotFound, got %v", err)
	}
}

func TestValidateProfile(t *testing.T) {
	cases := map[string]model.Profile{
		"bad view":     {View: "mixdown"},
		"no name":      {Widgets: []model.ProfileWidget{{Options: []string{"a"}}}},
		"empty widget": {Widgets: []model.ProfileWidget{{Name: "x"}}},
		"both kinds": {Widgets: []model.ProfileWidget{{
			Name: "x", Options: []string{"a"}, Channels: []model.ProfileChannel{{MaxLevel: 1}},
		}}},
		"bad selection": {Widgets: []model.ProfileWidget{{Name: "x", Options: []string{"a"}, Selected: 1}}},
		"duplicate id": {Widgets: []model.ProfileWidget{
			{Name: "x", Options: []string{"a"}},
			{Name: "x", Options: []string{"b"}},
		}},
	}

	for name, profile := range cases {
		if err := ValidateProfile(&profile); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("%s: expected ErrInvalidProfile, got %v", name, err)
		}
	}
}

func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("backend", "simulation", "")
	cmd.Flags().String("output", "tui", "")
	cmd.Flags().Int("step", 1, "")
	cmd.Flags().String("card", "0", "")

	return cmd
}

func TestReadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := ReadConfig(nil, "")
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if config.Backend != model.BackendSimulation || config.OutputType != model.OutputTUI {
		t.Fatalf("unexpected defaults %+v", config)
	}

	if config.Step != 1 || config.LargeStep != 5 || config.Amixer.Binary != "amixer" {
		t.Fatalf("unexpected defaults %+v", config)
	}

	if !filepath.IsAbs(config.LogFile) {
		t.Fatalf("expected the log file to be resolved, got %q", config.LogFile)
	}
}

func TestReadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	configFile := writeFile(t, dir, "mixer.yaml", `backend: amixer
output: json
step: 2
large_step: 10
amixer:
  card: "1"
keys:
  mute: [space]
`)

	t.Setenv("FOXMIXER_LARGE_STEP", "20")
	t.Setenv("FOXMIXER_AMIXER_CARD", "2")

	cmd := newFlagCommand()
	if err := cmd.Flags().Set("card", "3"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}

	config, err := ReadConfig(cmd, configFile)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	// file beats the unchanged flag defaults
	if config.Backend != model.BackendAmixer || config.OutputType != model.OutputJSON || config.Step != 2 {
		t.Fatalf("config file values not applied: %+v", config)
	}

	// environment beats the file
	if config.LargeStep != 20 {
		t.Fatalf("expected large_step 20 from the environment, got %d", config.LargeStep)
	}

	// a changed flag beats everything
	if config.Amixer.Card != "3" {
		t.Fatalf("expected card 3 from the flag, got %q", config.Amixer.Card)
	}

	if keys := config.Keys["mute"]; len(keys) != 1 || keys[0] != "space" {
		t.Fatalf("unexpected key bindings %v", config.Keys)
	}
}

func TestReadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	cases := map[string]string{
		"backend":   "backend: pulse\n",
		"output":    "output: html\n",
		"profile":   "backend: profile\n",
		"view":      "view: mixdown\n",
		"step":      "step: 0\n",
		"log level": "log_level: loud\n",
	}

	for name, contents := range cases {
		configFile := writeFile(t, dir, "bad.yaml", contents)

		if _, err := ReadConfig(nil, configFile); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}

	if _, err := ReadConfig(nil, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing explicit config file")
	}
}
