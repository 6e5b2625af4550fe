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
	"strings"

	"fox-mixer/mixer"
	"fox-mixer/model"
)

var ErrInvalidProfile = errors.New("invalid profile")

// ReadProfile loads a mixer profile by name or path. The .profile suffix is
// optional.
func ReadProfile(profilePath string) (*model.Profile, error) {
	if !strings.HasSuffix(profilePath, ".profile") {
		profilePath += ".profile"
	}

	profile := &model.Profile{}

	if err := ReadYamlFile(profile, profilePath); err != nil {
		return nil, err
	}

	if err := ValidateProfile(profile); err != nil {
		return nil, fmt.Errorf("%s: %w", profilePath, err)
	}

	return profile, nil
}

func ValidateProfile(profile *model.Profile) error {
	if profile.View != "" {
		if _, err := mixer.ParseView(profile.View); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
	}

	ids := make(map[string]bool, len(profile.Widgets))

	for i, widget := range profile.Widgets {
		if widget.Name == "" {
			return fmt.Errorf("%w: widget %d has no name", ErrInvalidProfile, i)
		}

		hasChannels := len(widget.Channels) > 0
		hasOptions := len(widget.Options) > 0

		if hasChannels == hasOptions {
			return fmt.Errorf("%w: widget %q needs either channels or options", ErrInvalidProfile, widget.Name)
		}

		if hasOptions && (widget.Selected < 0 || widget.Selected >= len(widget.Options)) {
			return fmt.Errorf("%w: widget %q selects option %d of %d", ErrInvalidProfile, widget.Name, widget.Selected, len(widget.Options))
		}

		id := widget.ID
		if id == "" {
			id = widget.Name
		}

		if ids[id] {
			return fmt.Errorf("%w: duplicate widget id %q", ErrInvalidProfile, id)
		}
		ids[id] = true
	}

	return nil
}
