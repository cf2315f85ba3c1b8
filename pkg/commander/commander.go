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
	"log/slog"
	"strings"
	"unicode"

	"github.com/timburks/noted/pkg/editor"
	"github.com/timburks/noted/pkg/session"
	gott "github.com/timburks/noted/pkg/types"
)

const defaultTabWidth = 4

// The Commander converts user input into operations on a session.
type Commander struct {
	session  *session.Session
	tabWidth int
	palette  editor.Palette
	debug    bool // debug mode logs every event
}

func NewCommander(s *session.Session, tabWidth int, palette editor.Palette) *Commander {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return &Commander{session: s, tabWidth: tabWidth, palette: palette}
}

func (c *Commander) Session() *session.Session {
	return c.session
}

// SetSession replaces the session that receives input.
func (c *Commander) SetSession(s *session.Session) {
	c.session = s
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

// ProcessEvent handles an input event and reports whether it was consumed.
func (c *Commander) ProcessEvent(event *gott.Event) bool {
	if c.debug {
		slog.Debug("event", "type", event.Type, "key", event.Key, "ch", event.Ch, "mod", event.Mod)
	}
	switch event.Type {
	case gott.EventKey:
		consumed := c.processKey(event)
		if !consumed {
			slog.Debug("key not consumed", "key", event.Key, "ch", string(event.Ch), "mod", event.Mod)
		}
		return consumed
	default:
		return false
	}
}

func (c *Commander) processKey(event *gott.Event) bool {
	shift := event.Has(gott.ModShift)
	ctrl := event.Has(gott.ModCtrl)
	alt := event.Has(gott.ModAlt)

	// modified characters are commands
	if event.Key == gott.KeyNone && event.Ch != 0 {
		switch {
		case ctrl:
			return c.perform(controlActions[unicode.ToLower(event.Ch)])
		case alt:
			return c.perform(altActions[unicode.ToLower(event.Ch)])
		default:
			c.session.Type(event.Ch)
			return true
		}
	}
	if alt {
		return false
	}

	switch event.Key {
	case gott.KeyArrowUp:
		c.session.MoveCursor(gott.MoveUp, ctrl, shift)
	case gott.KeyArrowDown:
		c.session.MoveCursor(gott.MoveDown, ctrl, shift)
	case gott.KeyArrowLeft:
		c.session.MoveCursor(gott.MoveLeft, ctrl, shift)
	case gott.KeyArrowRight:
		c.session.MoveCursor(gott.MoveRight, ctrl, shift)
	case gott.KeyDelete:
		c.session.Delete(ctrl)
	case gott.KeyBackspace:
		c.session.Backspace(ctrl)
	case gott.KeyEnter:
		c.session.Enter()
	case gott.KeyHome:
		c.session.Home()
	case gott.KeyEnd:
		c.session.End()
	case gott.KeyTab:
		c.TypeText(strings.Repeat(" ", c.tabWidth))
	default:
		return false
	}
	return true
}

// control and alt letters that run actions
var (
	controlActions = map[rune]string{
		'x': "exit",
		'r': "reload",
		'c': "cancel",
		'g': "help",
	}
	altActions = map[rune]string{
		'v': "copy",
		'x': "cut",
	}
)

func (c *Commander) perform(name string) bool {
	action, ok := actions[name]
	if !ok {
		return false
	}
	return action(c)
}

// Perform runs the named action and reports whether it was consumed.
func (c *Commander) Perform(name string) bool {
	return c.perform(name)
}

// TypeText types each character of text.
func (c *Commander) TypeText(text string) {
	for _, ch := range text {
		c.session.Type(ch)
	}
}

type action func(c *Commander) bool

func move(d gott.Direction, wordJump, extend bool) action {
	return func(c *Commander) bool {
		c.session.MoveCursor(d, wordJump, extend)
		return true
	}
}

func command(cmd gott.Command) action {
	return func(c *Commander) bool {
		return c.session.HandleCommand(cmd)
	}
}

// actions are shared by keys and scripts
var actions = map[string]action{
	"up":                move(gott.MoveUp, false, false),
	"down":              move(gott.MoveDown, false, false),
	"left":              move(gott.MoveLeft, false, false),
	"right":             move(gott.MoveRight, false, false),
	"word-left":         move(gott.MoveLeft, true, false),
	"word-right":        move(gott.MoveRight, true, false),
	"select-up":         move(gott.MoveUp, false, true),
	"select-down":       move(gott.MoveDown, false, true),
	"select-left":       move(gott.MoveLeft, false, true),
	"select-right":      move(gott.MoveRight, false, true),
	"select-word-left":  move(gott.MoveLeft, true, true),
	"select-word-right": move(gott.MoveRight, true, true),
	"home": func(c *Commander) bool {
		c.session.Home()
		return true
	},
	"end": func(c *Commander) bool {
		c.session.End()
		return true
	},
	"delete": func(c *Commander) bool {
		c.session.Delete(false)
		return true
	},
	"delete-word": func(c *Commander) bool {
		c.session.Delete(true)
		return true
	},
	"backspace": func(c *Commander) bool {
		c.session.Backspace(false)
		return true
	},
	"backspace-word": func(c *Commander) bool {
		c.session.Backspace(true)
		return true
	},
	"enter": func(c *Commander) bool {
		c.session.Enter()
		return true
	},
	"tab": func(c *Commander) bool {
		c.TypeText(strings.Repeat(" ", c.tabWidth))
		return true
	},
	"exit":   command(gott.CommandExit),
	"reload": command(gott.CommandReload),
	"cancel": command(gott.CommandCancel),
	"copy":   command(gott.CommandCopy),
	"cut":    command(gott.CommandCut),
	"help":   command(gott.CommandHelp),
}
