package entity

import (
	"errors"
	"fmt"
	"time"
)

// LayoutSnapshotVersion is the current version of the persisted layout
// document. Increment when the XML layout format changes incompatibly.
const LayoutSnapshotVersion = 1

// MaxLayoutNameLength bounds layout names so they stay usable as file names.
const MaxLayoutNameLength = 64

// ErrInvalidLayoutName is returned for names that cannot be stored.
var ErrInvalidLayoutName = errors.New("invalid layout name")

// LayoutName identifies a saved layout.
type LayoutName string

// ValidateLayoutName checks that name is non-empty, short enough, and made
// only of letters, digits, '.', '_' and '-', without a leading dot.
func ValidateLayoutName(name LayoutName) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidLayoutName)
	}
	if len(name) > MaxLayoutNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidLayoutName, MaxLayoutNameLength)
	}
	if name[0] == '.' {
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidLayoutName, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidLayoutName, name, r)
		}
	}
	return nil
}

// LayoutSnapshot is a serialized layout together with the summary counts
// shown when listing layouts.
type LayoutSnapshot struct {
	Name          LayoutName
	Version       int
	Data          []byte
	ContentCount  int
	FloatingCount int
	HiddenCount   int
	SavedAt       time.Time
}

// LayoutInfo is the listing view of a stored layout, without its data.
type LayoutInfo struct {
	Name          LayoutName
	Version       int
	SizeBytes     int64
	ContentCount  int
	FloatingCount int
	HiddenCount   int
	SavedAt       time.Time
}

// Info returns the listing view of s.
func (s *LayoutSnapshot) Info() LayoutInfo {
	return LayoutInfo{
		Name:          s.Name,
		Version:       s.Version,
		SizeBytes:     int64(len(s.Data)),
		ContentCount:  s.ContentCount,
		FloatingCount: s.FloatingCount,
		HiddenCount:   s.HiddenCount,
		SavedAt:       s.SavedAt,
	}
}
