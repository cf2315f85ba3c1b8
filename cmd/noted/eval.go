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
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/timburks/noted/pkg/clipboard"
	"github.com/timburks/noted/pkg/commander"
	"github.com/timburks/noted/pkg/dispatch"
	"github.com/timburks/noted/pkg/session"
	gott "github.com/timburks/noted/pkg/types"
)

var evalScript string

var evalCmd = &cobra.Command{
	Use:   "eval [filename]",
	Short: "Run a script against a note without a terminal",
	Long: `eval opens a note (or a new one), runs a lisp script against it
and prints the value of the last expression and the final status.
Scripts call the editor's actions, for example:

  (type "Buy milk #todo") (enter) (select-word-left) (copy) (exit)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if evalScript == "" {
			return fmt.Errorf("--script is required")
		}
		source, err := os.ReadFile(evalScript)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		store, err := openStorage()
		if err != nil {
			return err
		}
		note := gott.Note{}
		if len(args) == 1 {
			if note, err = findNote(cmd.Context(), store, args[0]); err != nil {
				return err
			}
		}

		d := &dispatch.Manual{}
		closed := false
		s := session.New(cmd.Context(), note, session.Config{
			Storage:    store,
			Clipboard:  clipboard.System{},
			Dispatcher: d,
			OnClose:    func() { closed = true },
		})
		d.Flush()

		c := commander.NewCommander(s, cfg.TabWidth, cfg.TagPalette())
		value, err := c.Eval(string(source))
		d.Flush()
		if err != nil {
			return fmt.Errorf("eval %s: %w", evalScript, err)
		}
		slog.Info("evaluated script", "script", evalScript, "closed", closed)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, value)
		status, _ := s.Status()
		fmt.Fprintln(out, status)
		if closed {
			fmt.Fprintf(out, "closed %s\n", s.Note().Filename)
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalScript, "script", "s", "", "Script file to evaluate")
	rootCmd.AddCommand(evalCmd)
}
