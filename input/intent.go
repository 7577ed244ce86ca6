package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, Esc, Ctrl+C, closed screen
	IntentStart       // s, Enter: reset score and play
	IntentTogglePause // p, Space
	IntentResize      // Terminal resize event

	// Mouse motion or button drag, both count as pointer movement
	IntentPointer
)

// Intent is a parsed terminal event
// X, Y carry the cell for IntentPointer and the new size for IntentResize
type Intent struct {
	Type IntentType
	X, Y int
}
