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

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	gott "github.com/timburks/noted/pkg/types"
)

const (
	indexFile = "notes.yaml"
	notesDir  = "notes"
	noteExt   = ".txt"
)

type index struct {
	Notes []gott.Note `yaml:"notes"`
}

// A FileStorage keeps an index of notes in notes.yaml and the text of each
// note in notes/<id>.txt under its directory.
type FileStorage struct {
	mu    sync.Mutex
	dir   string
	now   func() time.Time
	newID func() string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Join(dir, notesDir), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &FileStorage{
		dir:   dir,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

func (s *FileStorage) Dir() string {
	return s.dir
}

// NotesDir is the directory holding note contents.
func (s *FileStorage) NotesDir() string {
	return filepath.Join(s.dir, notesDir)
}

// NotePath returns the path of the file holding the note's text.
func (s *FileStorage) NotePath(id string) string {
	return filepath.Join(s.dir, notesDir, id+noteExt)
}

func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\`) && id != "." && id != ".."
}

func (s *FileStorage) readIndex() (*index, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, indexFile))
	if errors.Is(err, fs.ErrNotExist) {
		return &index{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	idx := &index{}
	if err := yaml.Unmarshal(data, idx); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return idx, nil
}

func (s *FileStorage) writeIndex(idx *index) error {
	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	return writeFileAtomic(filepath.Join(s.dir, indexFile), data, 0o644)
}

// LoadNote returns the lines of a note.
func (s *FileStorage) LoadNote(ctx context.Context, id string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, fmt.Errorf("load %q: %w", id, ErrNotFound)
	}
	data, err := os.ReadFile(s.NotePath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", id, err)
	}
	return splitContent(string(data)), nil
}

// SaveNote writes a note and its content. A note without an id is created;
// a note without a filename is given the next UntitledN name.
func (s *FileStorage) SaveNote(ctx context.Context, note gott.Note, content []string) (gott.Note, error) {
	if err := ctx.Err(); err != nil {
		return gott.Note{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.readIndex()
	if err != nil {
		return gott.Note{}, err
	}
	now := s.now()
	if note.ID == "" {
		note.ID = s.newID()
		note.CreationDate = now
	} else if !validID(note.ID) {
		return gott.Note{}, fmt.Errorf("save: invalid note id %q", note.ID)
	}
	if note.Filename == "" {
		note.Filename = nextUntitled(idx.Notes)
	}
	if note.CreationDate.IsZero() {
		note.CreationDate = now
	}
	note.LastEditDate = now

	if err := writeFileAtomic(s.NotePath(note.ID), []byte(joinContent(content)), 0o644); err != nil {
		return gott.Note{}, fmt.Errorf("save %q: %w", note.ID, err)
	}
	replaced := false
	for i := range idx.Notes {
		if idx.Notes[i].ID == note.ID {
			idx.Notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		idx.Notes = append(idx.Notes, note)
	}
	if err := s.writeIndex(idx); err != nil {
		return gott.Note{}, fmt.Errorf("save %q: %w", note.ID, err)
	}
	return note, nil
}

// ListNotes returns all notes, most recently edited first.
func (s *FileStorage) ListNotes(ctx context.Context) ([]gott.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	idx, err := s.readIndex()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	notes := append([]gott.Note(nil), idx.Notes...)
	sortByLastEdit(notes)
	return notes, nil
}

// FindByFilename returns the most recently edited note with a filename.
func (s *FileStorage) FindByFilename(ctx context.Context, filename string) (gott.Note, error) {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return gott.Note{}, err
	}
	return findByFilename(notes, filename)
}

func sortByLastEdit(notes []gott.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].LastEditDate.After(notes[j].LastEditDate)
	})
}

func findByFilename(notes []gott.Note, filename string) (gott.Note, error) {
	for _, n := range notes {
		if n.Filename == filename {
			return n, nil
		}
	}
	return gott.Note{}, fmt.Errorf("find %q: %w", filename, ErrNotFound)
}
