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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/noted/pkg/types"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(DataDirEnv, "")
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(DataDirEnv, "")
	path := writeConfig(t, `
data_dir: /tmp/notes
driver: termbox
tab_width: 2
palette:
  work: 99
  productivity: 10
fallback_color: 7
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/notes", c.DataDir)
	assert.Equal(t, DriverTermbox, c.Driver)
	assert.Equal(t, 2, c.TabWidth)

	p := c.TagPalette()
	assert.Equal(t, gott.Color(99), p.ColorFor("work"))
	assert.Equal(t, gott.Color(10), p.ColorFor("productivity"))
	assert.Equal(t, gott.Color(7), p.ColorFor("elsewhere"))
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv(DataDirEnv, "/srv/noted")
	c, err := Load(writeConfig(t, "data_dir: /tmp/ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/noted", c.DataDir)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(DataDirEnv, "")
	_, err := Load(writeConfig(t, "tab_width: [1"))
	assert.Error(t, err)
	_, err = Load(writeConfig(t, "driver: curses\n"))
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	t.Setenv(DataDirEnv, "")
	c, err := Load(writeConfig(t, "data_dir: ~/somewhere\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home(), "somewhere"), c.DataDir)
}
