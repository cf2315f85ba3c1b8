//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the noted configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/timburks/noted/pkg/editor"
	gott "github.com/timburks/noted/pkg/types"
)

const (
	DriverTcell   = "tcell"
	DriverTermbox = "termbox"

	// DataDirEnv overrides the configured data directory.
	DataDirEnv = "NOTED_DATA_DIR"
)

type Config struct {
	DataDir       string         `yaml:"data_dir"`
	LogFile       string         `yaml:"log_file"`
	Driver        string         `yaml:"driver"`
	Palette       map[string]int `yaml:"palette"`
	FallbackColor *int           `yaml:"fallback_color"`
	TabWidth      int            `yaml:"tab_width"`
}

// DefaultPath is where the configuration file is looked for.
func DefaultPath() string {
	return filepath.Join(home(), ".config", "noted", "config.yaml")
}

func home() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}

func Default() *Config {
	return &Config{
		DataDir:  filepath.Join(home(), ".noted"),
		LogFile:  filepath.Join(home(), ".notedlog"),
		Driver:   DriverTcell,
		TabWidth: 4,
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if dir := os.Getenv(DataDirEnv); dir != "" {
		c.DataDir = dir
	}
	c.DataDir = expand(c.DataDir)
	c.LogFile = expand(c.LogFile)
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	switch c.Driver {
	case "":
		c.Driver = DriverTcell
	case DriverTcell, DriverTermbox:
	default:
		return nil, fmt.Errorf("unknown driver %q", c.Driver)
	}
	return c, nil
}

func expand(path string) string {
	if path == "~" {
		return home()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home(), path[2:])
	}
	return path
}

// TagPalette returns the tag palette, starting from the built-in colors.
func (c *Config) TagPalette() editor.Palette {
	p := editor.DefaultPalette()
	for tag, color := range c.Palette {
		p.Colors[tag] = gott.Color(color)
	}
	if c.FallbackColor != nil {
		p.Fallback = gott.Color(*c.FallbackColor)
	}
	return p
}
