// Package history provides undo/redo functionality via a linear snapshot log.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/bethropolis/stylo/internal/style"
)

// ChangeKind names the edit that produced a snapshot.
type ChangeKind int

const (
	ChangeInitial ChangeKind = iota
	ChangeFontFamily
	ChangeFontSize
	ChangeColor
	ChangeText
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInitial:
		return "initial"
	case ChangeFontFamily:
		return "font"
	case ChangeFontSize:
		return "size"
	case ChangeColor:
		return "color"
	case ChangeText:
		return "text"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Policy controls what Record does when the cursor is not at the last entry.
type Policy int

const (
	// PolicyAppend appends unconditionally; entries past the cursor remain in the log.
	PolicyAppend Policy = iota
	// PolicyTruncate drops entries past the cursor before appending.
	PolicyTruncate
)

func (p Policy) String() string {
	if p == PolicyTruncate {
		return "truncate"
	}
	return "append"
}

// ParsePolicy maps a config value ("append" or "truncate") to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "append":
		return PolicyAppend, nil
	case "truncate":
		return PolicyTruncate, nil
	default:
		return PolicyAppend, fmt.Errorf("unknown history policy %q (want append or truncate)", s)
	}
}

// Entry is one snapshot in the log.
type Entry struct {
	State style.State
	Kind  ChangeKind
	At    time.Time // When the snapshot was recorded (or last coalesced into)
}
