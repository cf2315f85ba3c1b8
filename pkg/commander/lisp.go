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

package commander

import (
	"errors"
	"fmt"
	"sync"

	"github.com/steelseries/golisp"
)

// the commander that primitives act on while Eval runs
var (
	evalMutex sync.Mutex
	active    *Commander
)

var errNoCommander = errors.New("no active editor")

func init() {
	for name, a := range actions {
		golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			if active == nil {
				return nil, errNoCommander
			}
			return golisp.BooleanWithValue(a(active)), nil
		})
	}
	golisp.MakePrimitiveFunction("type", "1", TypeImpl)
	golisp.MakePrimitiveFunction("status", "0", StatusImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("line", "1", LineImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("mode", "0", ModeImpl)
	golisp.MakePrimitiveFunction("filename", "0", FilenameImpl)
	golisp.MakePrimitiveFunction("dirty", "0", DirtyImpl)
	golisp.MakePrimitiveFunction("selection", "0", SelectionImpl)
}

// Eval evaluates a script against the commander's session and returns the
// printed value of the last expression.
func (c *Commander) Eval(source string) (string, error) {
	evalMutex.Lock()
	defer evalMutex.Unlock()
	active = c
	defer func() { active = nil }()

	value, err := golisp.ParseAndEval(fmt.Sprintf("(begin %s)", source))
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

func TypeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("type requires a string argument")
	}
	active.TypeText(golisp.StringValue(val))
	return golisp.BooleanWithValue(true), nil
}

func StatusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	status, _ := active.session.Status()
	return golisp.StringWithValue(status), nil
}

func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	p := active.session.Buffer().Cursor()
	return golisp.InternalMakeList(
		golisp.IntegerWithValue(int64(p.Row)),
		golisp.IntegerWithValue(int64(p.Col)),
	), nil
}

func LineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	var n int
	switch val := golisp.Car(args); {
	case golisp.IntegerP(val):
		n = int(golisp.IntegerValue(val))
	case golisp.FloatP(val):
		n = int(golisp.FloatValue(val))
	default:
		return nil, errors.New("line requires a number")
	}
	lines := active.session.Buffer().Lines()
	if n < 0 || n >= len(lines) {
		return nil, fmt.Errorf("line %d out of range", n)
	}
	return golisp.StringWithValue(lines[n]), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.IntegerWithValue(int64(active.session.Buffer().GetRowCount())), nil
}

func ModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.StringWithValue(active.session.Mode().String()), nil
}

func FilenameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.StringWithValue(active.session.Note().Filename), nil
}

func DirtyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.BooleanWithValue(active.session.Dirty()), nil
}

func SelectionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return golisp.StringWithValue(active.session.Buffer().SelectionText()), nil
}
