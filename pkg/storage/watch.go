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
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange whenever the file of note id is written or replaced,
// until ctx is done. Each call runs on its own tracked goroutine; a panic in
// onChange is logged and the watch continues.
func (s *FileStorage) Watch(ctx context.Context, id string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// the directory is watched because saves replace the file
	if err := watcher.Add(s.NotesDir()); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", s.NotesDir(), err)
	}
	target := filepath.Base(s.NotePath(id))
	notify := func(ctx context.Context) error {
		onChange()
		return nil
	}
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					slog.Debug("note changed on disk", "note", id, "op", event.Op.String())
					lifecycle.Go(ctx, notify, lifecycle.WithErrorHandler(func(err error) {
						slog.Error("note change handler failed", "note", id, "error", err)
					}))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Error("fsnotify error", "error", err)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		slog.Error("note watcher failed", "note", id, "error", err)
	}))
	return nil
}
