package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSource indicates an unrecognized sync source name.
var ErrInvalidSource = errors.New("invalid sync source")

// Mode selects which store is authoritative for a run.
type Mode int

// Sync modes.
const (
	// Merge writes the union of both stores to each store.
	Merge Mode = iota
	// AdoptShell copies the shell tags into the embedded store.
	AdoptShell
	// AdoptEmbedded copies the embedded tags into the shell store.
	AdoptEmbedded
)

// Source names accepted on the command line.
const (
	SourceShell    = "shell"
	SourceEmbedded = "embedded"
	SourceBoth     = "both"
)

// SourceNames lists the canonical source names in help order.
var SourceNames = []string{SourceShell, SourceEmbedded, SourceBoth}

// ParseMode maps a source name to a Mode. "finder" and "iptc" are accepted
// as aliases of "shell" and "embedded", "merge" as an alias of "both".
func ParseMode(source string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case SourceShell, "finder":
		return AdoptShell, nil
	case SourceEmbedded, "iptc":
		return AdoptEmbedded, nil
	case SourceBoth, "merge", "":
		return Merge, nil
	default:
		return Merge, fmt.Errorf("%w %q: must be one of %s", ErrInvalidSource, source, strings.Join(SourceNames, ", "))
	}
}

// String returns the canonical source name of the mode.
func (m Mode) String() string {
	switch m {
	case AdoptShell:
		return SourceShell
	case AdoptEmbedded:
		return SourceEmbedded
	case Merge:
		return SourceBoth
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML encodes the mode as its source name.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
