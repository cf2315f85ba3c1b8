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

// Package clipboard writes copied text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	clipboardWrite       = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

var ErrUnsupported = errors.New("clipboard unsupported on this system")

// System is the desktop clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if clipboardUnsupported() {
		return ErrUnsupported
	}
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Func adapts a function to the clipboard interface.
type Func func(text string) error

func (f Func) WriteText(text string) error {
	return f(text)
}
