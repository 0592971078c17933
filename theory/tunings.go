package theory

import "fmt"

// NamedTunings are the built-in tunings a chord sheet can select by name.
var NamedTunings = map[string]Tuning{
	"standard": StandardTuning(),
	"drop_d":   NewTuning(Note{D, 2}, Note{A, 2}, Note{D, 3}, Note{G, 3}, Note{B, 3}, Note{E, 4}),
	"open_g":   NewTuning(Note{D, 2}, Note{G, 2}, Note{D, 3}, Note{G, 3}, Note{B, 3}, Note{D, 4}),
	"open_d":   NewTuning(Note{D, 2}, Note{A, 2}, Note{D, 3}, Note{FSharp, 3}, Note{A, 3}, Note{D, 4}),
	"dadgad":   NewTuning(Note{D, 2}, Note{A, 2}, Note{D, 3}, Note{G, 3}, Note{A, 3}, Note{D, 4}),
}

// TuningNames lists the built-in tunings in a stable display order.
var TuningNames = []string{"standard", "drop_d", "open_g", "open_d", "dadgad"}

// GetTuning resolves a tuning name, falling back to standard tuning for an
// unrecognized name.
func GetTuning(name string) Tuning {
	if t, ok := NamedTunings[name]; ok {
		return t
	}
	return StandardTuning()
}

// ParseTuning resolves a named tuning or, failing that, returns an error
// instead of silently falling back — used where a chord sheet author's
// typo should surface rather than be silently repaired.
func ParseTuning(name string) (Tuning, error) {
	if t, ok := NamedTunings[name]; ok {
		return t, nil
	}
	return Tuning{}, fmt.Errorf("theory: unknown tuning %q", name)
}
