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

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var listMatch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, most recently edited first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listMatch != "" && !doublestar.ValidatePattern(listMatch) {
			return fmt.Errorf("invalid pattern %q", listMatch)
		}
		store, err := openStorage()
		if err != nil {
			return err
		}
		notes, err := store.ListNotes(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, note := range notes {
			if listMatch != "" {
				ok, err := doublestar.Match(listMatch, note.Filename)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}
			fmt.Fprintf(out, "%-24s %s\n", note.Filename, note.LastEditDate.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listMatch, "match", "m", "", "Only list notes whose names match a glob pattern")
	rootCmd.AddCommand(listCmd)
}
