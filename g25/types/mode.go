package types

import (
	"strings"
)

// Mode selects how samples are combined into a result.
type Mode string

const (
	// ModeSimple weights every sample equally.
	ModeSimple Mode = "simple"
	// ModeGrouped averages each group first, then weights every group equally.
	ModeGrouped Mode = "grouped"
)

// ParseMode converts a case-insensitive mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeSimple, ModeGrouped:
		return m, nil
	default:
		return "", ErrUsage.Wrapf("mode must be %q or %q, got %q", ModeSimple, ModeGrouped, s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool {
	return m == ModeSimple || m == ModeGrouped
}

