package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDockMin is the default minimum dock width and height.
const DefaultDockMin = 25.0

// LengthUnit is how a DockLength value is interpreted.
type LengthUnit uint8

const (
	UnitStar LengthUnit = iota
	UnitPixel
	UnitAuto
)

// DockLength is the size a positionable element asks for along one axis:
// a pixel count, a weighted share of the remaining space, or auto.
type DockLength struct {
	Value float64
	Unit  LengthUnit
}

// Star returns a weighted share of the remaining space.
func Star(v float64) DockLength { return DockLength{Value: v, Unit: UnitStar} }

// Pixels returns a fixed length.
func Pixels(v float64) DockLength { return DockLength{Value: v, Unit: UnitPixel} }

// AutoLength returns a length sized to content.
func AutoLength() DockLength { return DockLength{Value: 1, Unit: UnitAuto} }

func (l DockLength) IsStar() bool { return l.Unit == UnitStar }

// String formats the length as "Auto", "<n>" pixels or "<n>*" stars.
func (l DockLength) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	switch l.Unit {
	case UnitAuto:
		return "Auto"
	case UnitPixel:
		return v
	default:
		if l.Value == 1 {
			return "*"
		}
		return v + "*"
	}
}

// ParseDockLength parses the String form.
func ParseDockLength(s string) (DockLength, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "auto"):
		return AutoLength(), nil
	case s == "*":
		return Star(1), nil
	case strings.HasSuffix(s, "*"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "*"), 64)
		if err != nil {
			return DockLength{}, fmt.Errorf("parse dock length %q: %w", s, err)
		}
		return Star(v), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return DockLength{}, fmt.Errorf("parse dock length %q: %w", s, err)
		}
		return Pixels(v), nil
	}
}

// DockSize is the sizing payload of positionable containers.
type DockSize struct {
	Width     DockLength
	Height    DockLength
	MinWidth  float64
	MinHeight float64
}

func defaultDockSize() DockSize {
	return DockSize{
		Width:     Star(1),
		Height:    Star(1),
		MinWidth:  DefaultDockMin,
		MinHeight: DefaultDockMin,
	}
}

// DockSize returns the sizing payload; zero for kinds that have none.
func (n *Node) DockSize() DockSize {
	if !n.kind.isPositionable() {
		return DockSize{}
	}
	return n.dock
}

func (n *Node) SetDockWidth(l DockLength) {
	if !n.kind.isPositionable() || n.dock.Width == l {
		return
	}
	n.change(PropDockWidth, n.dock.Width, l, func() { n.dock.Width = l })
}

func (n *Node) SetDockHeight(l DockLength) {
	if !n.kind.isPositionable() || n.dock.Height == l {
		return
	}
	n.change(PropDockHeight, n.dock.Height, l, func() { n.dock.Height = l })
}

// SetDockMinSize sets the minimum dock width and height.
func (n *Node) SetDockMinSize(w, h float64) error {
	if w < 0 || h < 0 {
		return ErrNegativeLength
	}
	if n.kind.isPositionable() {
		n.dock.MinWidth, n.dock.MinHeight = w, h
	}
	return nil
}

// FixChildrenDockLengths normalizes child lengths along n's axis. Pane
// groups size every child by star weight. Panels keep fixed sizes but make
// sure at least one child absorbs the remaining space.
func (n *Node) FixChildrenDockLengths() {
	if !n.kind.IsOrientable() || len(n.children) == 0 || !n.dockGuard.CanEnter() {
		return
	}
	release := n.dockGuard.Enter()
	defer release()

	along := func(c *Node) DockLength {
		if n.orientation == Horizontal {
			return c.dock.Width
		}
		return c.dock.Height
	}
	set := func(c *Node, l DockLength) {
		if n.orientation == Horizontal {
			c.SetDockWidth(l)
		} else {
			c.SetDockHeight(l)
		}
	}

	if n.kind != KindPanel {
		for _, c := range n.Children() {
			if !along(c).IsStar() {
				set(c, Star(1))
			}
		}
		return
	}
	for _, c := range n.children {
		if along(c).IsStar() {
			return
		}
	}
	set(n.children[len(n.children)-1], Star(1))
}
