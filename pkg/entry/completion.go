package entry

import (
	"bytes"
	"encoding/json"
)

// Completion is the per-todo completion state machine. A todo is either in
// the Auto state, where effective completion derives from log matching, or
// Pinned, where the user has explicitly fixed it until the next toggle.
//
// It serializes as the blob's nullable manualOverride field: null for Auto,
// true/false for Pinned.
type Completion struct {
	Pinned bool
	Value  bool
}

// Auto is the derived (unpinned) completion state.
var Auto = Completion{}

// Pin returns a Pinned state holding the given completion value.
func Pin(done bool) Completion {
	return Completion{Pinned: true, Value: done}
}

// Effective resolves the state against the derived match result.
func (c Completion) Effective(derived bool) bool {
	if c.Pinned {
		return c.Value
	}
	return derived
}

// Toggled returns the state after a user toggle given the current derived
// match result: always Pinned to the negation of the current effective
// value, so a toggle has the expected visible effect regardless of prior
// override state.
func (c Completion) Toggled(derived bool) Completion {
	return Pin(!c.Effective(derived))
}

var nullLiteral = []byte("null")

func (c Completion) MarshalJSON() ([]byte, error) {
	if !c.Pinned {
		return nullLiteral, nil
	}
	return json.Marshal(c.Value)
}

func (c *Completion) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), nullLiteral) {
		*c = Auto
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Pin(v)
	return nil
}
