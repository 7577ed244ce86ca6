package input

import "github.com/gdamore/tcell/v2"

const wheelButtons = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Machine turns tcell events into intents
type Machine struct {
	keys *KeyTable
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keys: DefaultKeyTable()}
}

// NewMachineWithKeys creates a machine with custom bindings
func NewMachineWithKeys(keys *KeyTable) *Machine {
	return &Machine{keys: keys}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events without meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		if t, ok := m.keys.Runes[ev.Rune()]; ok {
			return &Intent{Type: t}
		}
		return nil
	}
	if t, ok := m.keys.SpecialKeys[ev.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}

// processMouse maps hover motion, presses and drags to pointer movement
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	if ev.Buttons()&wheelButtons != 0 {
		return nil
	}
	x, y := ev.Position()
	return &Intent{Type: IntentPointer, X: x, Y: y}
}
