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

// Package storage keeps notes on disk or in memory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	gott "github.com/timburks/noted/pkg/types"
)

// ErrNotFound is returned when a note does not exist.
var ErrNotFound = gott.ErrNotFound

const untitledPrefix = "Untitled"

var untitledPattern = regexp.MustCompile(`^` + untitledPrefix + `(\d+)$`)

// nextUntitled returns the name for an unnamed note: one past the highest
// UntitledN in use, or Untitled0 if there is none.
func nextUntitled(notes []gott.Note) string {
	next := 0
	for _, n := range notes {
		m := untitledPattern.FindStringSubmatch(n.Filename)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if v+1 > next {
			next = v + 1
		}
	}
	return untitledPrefix + strconv.Itoa(next)
}

// splitContent converts stored text into buffer lines.
func splitContent(text string) []string {
	return strings.Split(text, "\n")
}

func joinContent(lines []string) string {
	return strings.Join(lines, "\n")
}

// writeFileAtomic writes data to a temporary file and renames it into place.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".noted-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}
	return nil
}
