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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/timburks/noted/pkg/config"
	"github.com/timburks/noted/pkg/storage"
	gott "github.com/timburks/noted/pkg/types"
)

var (
	verbose    bool
	demo       bool
	configPath string

	cfg     *config.Config
	logFile *os.File
)

// noteStore is the storage used by the commands.
type noteStore interface {
	gott.Storage
	ListNotes(ctx context.Context) ([]gott.Note, error)
	FindByFilename(ctx context.Context, filename string) (gott.Note, error)
}

var rootCmd = &cobra.Command{
	Use:   "noted",
	Short: "A terminal note editor",
	Long: `noted edits plain-text notes in a terminal buffer.
Notes are kept in a data directory with an index of their names and dates.
Words marked with #tags are highlighted.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		logFile, err = os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

// Execute runs the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&demo, "demo", false, "Use in-memory demo notes")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Configuration file")
}

func openStorage() (noteStore, error) {
	if demo {
		return storage.NewDemoStorage(), nil
	}
	return storage.NewFileStorage(cfg.DataDir)
}

// findNote looks up a note by filename.
func findNote(ctx context.Context, store noteStore, filename string) (gott.Note, error) {
	note, err := store.FindByFilename(ctx, filename)
	if err != nil {
		return gott.Note{}, fmt.Errorf("no note named %q: %w", filename, err)
	}
	return note, nil
}
