package geng

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Op selects what a Command does.
type Op uint8

const (
	OpNone           Op = iota // do nothing
	OpBackground               // set the background color
	OpRemove                   // remove the item with Command.ID
	OpSelect                   // select the item with Command.ID
	OpDeselect                 // clear the selection
	OpRemoveSelected           // remove whatever is selected
	OpClose                    // close the window
)

var opNames = [...]string{"none", "background", "remove", "select", "deselect", "remove-selected", "close"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// ParseOp looks up an Op by its String name, case-insensitively.
func ParseOp(s string) (Op, error) {
	for i, name := range opNames {
		if strings.EqualFold(s, name) {
			return Op(i), nil
		}
	}
	return OpNone, fmt.Errorf("unknown op %q", s)
}

// Command is a single input effect. Only the fields its Op uses are read.
type Command struct {
	Op    Op
	Color Color
	ID    ID
}

func CmdBackground(c Color) Command { return Command{Op: OpBackground, Color: c} }
func CmdRemove(id ID) Command       { return Command{Op: OpRemove, ID: id} }
func CmdSelect(id ID) Command       { return Command{Op: OpSelect, ID: id} }
func CmdDeselect() Command          { return Command{Op: OpDeselect} }
func CmdRemoveSelected() Command    { return Command{Op: OpRemoveSelected} }
func CmdClose() Command             { return Command{Op: OpClose} }

// Apply runs cmd against r. It returns true when cmd asks for the window to
// close; the registry is not touched in that case.
func Apply(r *Registry, cmd Command) (closed bool) {
	switch cmd.Op {
	case OpBackground:
		r.SetBackground(cmd.Color)
	case OpRemove:
		r.Remove(cmd.ID)
	case OpSelect:
		r.Select(cmd.ID)
	case OpDeselect:
		r.Deselect()
	case OpRemoveSelected:
		if id, ok := r.Selected(); ok {
			r.Remove(id)
		}
	case OpClose:
		return true
	}
	return false
}

// Keymap binds keys to commands. Keys without a binding are ignored.
type Keymap map[ebiten.Key]Command

// DefaultKeymap returns the stock bindings: Q/W/E/R pick a background,
// A..G remove items 1..5, Z..B select items 1..5, Delete removes the
// selection, Backspace clears it, and Escape closes the window.
func DefaultKeymap() Keymap {
	return Keymap{
		ebiten.KeyQ: CmdBackground(0xFF770000),
		ebiten.KeyW: CmdBackground(0xFF007700),
		ebiten.KeyE: CmdBackground(0xFF000077),
		ebiten.KeyR: CmdBackground(0xFFCCCCCC),

		ebiten.KeyA: CmdRemove(1),
		ebiten.KeyS: CmdRemove(2),
		ebiten.KeyD: CmdRemove(3),
		ebiten.KeyF: CmdRemove(4),
		ebiten.KeyG: CmdRemove(5),

		ebiten.KeyZ: CmdSelect(1),
		ebiten.KeyX: CmdSelect(2),
		ebiten.KeyC: CmdSelect(3),
		ebiten.KeyV: CmdSelect(4),
		ebiten.KeyB: CmdSelect(5),

		ebiten.KeyDelete:    CmdRemoveSelected(),
		ebiten.KeyBackspace: CmdDeselect(),
		ebiten.KeyEscape:    CmdClose(),
	}
}

// keyNames maps lower-cased ebiten key names ("q", "escape", "digit1") to keys.
var keyNames map[string]ebiten.Key

// ParseKey looks up an ebiten key by the name its String method reports,
// case-insensitively.
func ParseKey(name string) (ebiten.Key, error) {
	if keyNames == nil {
		keyNames = make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
		for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
			n := strings.ToLower(k.String())
			if _, dup := keyNames[n]; !dup {
				keyNames[n] = k
			}
		}
	}
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}
