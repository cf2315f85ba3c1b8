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

// Package editor implements the text buffer at the center of noted.
// A buffer holds the lines of a note, a cursor and an optional selection,
// and provides the primitive edits that modes apply in response to keys.
// The buffer never has fewer than one line; an empty note is a single
// empty line. Columns count characters, and a column equal to the line
// length places the cursor at the end of the line.
package editor
