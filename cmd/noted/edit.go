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
	"github.com/spf13/cobra"

	gott "github.com/timburks/noted/pkg/types"
)

var editCmd = &cobra.Command{
	Use:   "edit <filename>",
	Short: "Edit a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStorage()
		if err != nil {
			return err
		}
		note, err := findNote(cmd.Context(), store, args[0])
		if err != nil {
			return err
		}
		return runEditor(cmd.Context(), store, note)
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Write a new note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStorage()
		if err != nil {
			return err
		}
		return runEditor(cmd.Context(), store, gott.Note{})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(newCmd)
}
