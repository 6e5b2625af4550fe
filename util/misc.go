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
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

const configDirName = "fox-mixer"

var ErrYamlNotFound = errors.New("no yaml file found")

func FileExists(path string) bool {
	// if an error occurred or its a directory, we throw up
	if stat, err := os.Stat(path); err != nil || stat.IsDir() {
		return false
	}

	return true
}

func ResolveHomeDirPath(testPath string) (string, error) {
	if strings.HasPrefix(testPath, "~/") {
		homeDir, err := os.UserHomeDir()

		if err != nil {
			return "", fmt.Errorf("could not find user home dir: %w", err)
		}

		return path.Join(homeDir, testPath[2:]), nil
	}

	return testPath, nil
}

// SearchPaths lists the directories a bare file name is looked up in: next
// to the executable, the working directory, then ~/.config/fox-mixer.
func SearchPaths() []string {
	paths := make([]string, 0, 3)

	if binPath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(binPath))
	}

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, path.Join(homeDir, ".config", configDirName))
	}

	return paths
}

// FindFile resolves fileName to an existing file. Absolute and ~/ paths are
// used as given, relative paths are looked up in SearchPaths.
func FindFile(fileName string) (string, error) {
	if path.IsAbs(fileName) || strings.HasPrefix(fileName, "~/") {
		filePath, err := ResolveHomeDirPath(fileName)
		if err != nil {
			return "", err
		}

		if !FileExists(filePath) {
			return "", fmt.Errorf("%w: %s", ErrYamlNotFound, filePath)
		}

		return filePath, nil
	}

	for _, dir := range SearchPaths() {
		sidecarPath := path.Join(dir, fileName)

		if FileExists(sidecarPath) {
			return sidecarPath, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrYamlNotFound, fileName)
}

func ReadYamlFile(cfg interface{}, fileName string) error {
	filePath, err := FindFile(fileName)
	if err != nil {
		return err
	}

	slog.Info("Reading yaml from " + filePath)

	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.SetStrict(true)

	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("decoding %s: %w", filePath, err)
	}

	return nil
}
