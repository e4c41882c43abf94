package layout

import (
	"fmt"
	"strconv"
	"time"
)

// AttributeWriter receives the persisted attributes of one node.
type AttributeWriter interface {
	WriteAttribute(name, value string)
}

// AttributeReader looks up persisted attributes of one node.
type AttributeReader interface {
	Attribute(name string) (string, bool)
}

// WriteAttributes emits n's persisted attributes. Only values that differ
// from their defaults are written.
func (n *Node) WriteAttributes(w AttributeWriter) {
	if n.kind.IsPaneSerializable() && n.paneID != "" {
		w.WriteAttribute("Id", n.paneID)
	}
	if n.kind.IsOrientable() && n.orientation != Horizontal {
		w.WriteAttribute("Orientation", n.orientation.String())
	}
	if n.kind.isPositionable() {
		d := n.dock
		if d.Width != Star(1) {
			w.WriteAttribute("DockWidth", d.Width.String())
		}
		if d.Height != Star(1) {
			w.WriteAttribute("DockHeight", d.Height.String())
		}
		writeFloat(w, "DockMinWidth", d.MinWidth, DefaultDockMin)
		writeFloat(w, "DockMinHeight", d.MinHeight, DefaultDockMin)
	}
	if n.kind == KindAnchorGroup {
		n.writePrevious(w, false)
	}
	if n.content == nil {
		return
	}

	c := n.content
	if n.kind == KindAnchorable {
		writeBool(w, "CanHide", c.canHide, true)
		writeBool(w, "CanAutoHide", c.canAutoHide, true)
		writeFloat(w, "AutoHideWidth", c.autoHideWidth, 0)
		writeFloat(w, "AutoHideHeight", c.autoHideHeight, 0)
		writeFloat(w, "AutoHideMinWidth", c.autoHideMinWidth, DefaultAutoHideMin)
		writeFloat(w, "AutoHideMinHeight", c.autoHideMinHeight, DefaultAutoHideMin)
	}
	if c.title != "" {
		w.WriteAttribute("Title", c.title)
	}
	writeBool(w, "IsSelected", c.selected, false)
	writeBool(w, "IsLastFocusedDocument", c.lastFocused, false)
	if c.contentID != "" {
		w.WriteAttribute("ContentId", c.contentID)
	}
	if c.toolTip != "" {
		w.WriteAttribute("ToolTip", c.toolTip)
	}
	writeFloat(w, "FloatingLeft", c.floating.Left, 0)
	writeFloat(w, "FloatingTop", c.floating.Top, 0)
	writeFloat(w, "FloatingWidth", c.floating.Width, 0)
	writeFloat(w, "FloatingHeight", c.floating.Height, 0)
	writeBool(w, "IsMaximized", c.maximized, false)
	writeBool(w, "CanClose", c.canClose, true)
	writeBool(w, "CanFloat", c.canFloat, true)
	if !c.lastActivation.IsZero() {
		w.WriteAttribute("LastActivationTimeStamp", c.lastActivation.UTC().Format(time.RFC3339Nano))
	}
	n.writePrevious(w, true)
}

func (n *Node) writePrevious(w AttributeWriter, withIndex bool) {
	prev := n.PreviousContainer()
	if prev == nil || !prev.kind.IsPaneSerializable() {
		return
	}
	prev.ensurePaneID()
	w.WriteAttribute("PreviousContainerId", prev.paneID)
	if withIndex {
		w.WriteAttribute("PreviousContainerIndex", strconv.Itoa(n.prev.index))
	}
}

func writeBool(w AttributeWriter, name string, v, def bool) {
	if v == def {
		return
	}
	if v {
		w.WriteAttribute(name, "True")
	} else {
		w.WriteAttribute(name, "False")
	}
}

func writeFloat(w AttributeWriter, name string, v, def float64) {
	if v != def {
		w.WriteAttribute(name, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

// ReadAttributes applies persisted attributes to a detached node built by
// a loader. Previous-container ids are kept pending until
// Root.ResolveReferences runs over the finished tree.
func (n *Node) ReadAttributes(r AttributeReader) error {
	a := attrReader{r: r, kind: n.kind}

	if id, ok := r.Attribute("Id"); ok {
		n.SetPaneID(id)
	}
	if v, ok := r.Attribute("Orientation"); ok && n.kind.IsOrientable() {
		o, valid := ParseOrientation(v)
		if !valid {
			return fmt.Errorf("%s attribute Orientation: unknown value %q", n.kind, v)
		}
		n.orientation = o
	}
	if n.kind.isPositionable() {
		a.readLength("DockWidth", &n.dock.Width)
		a.readLength("DockHeight", &n.dock.Height)
		a.readSize("DockMinWidth", &n.dock.MinWidth)
		a.readSize("DockMinHeight", &n.dock.MinHeight)
	}
	if n.kind == KindAnchorGroup || n.content != nil {
		if id, ok := r.Attribute("PreviousContainerId"); ok {
			n.prev.pendingID = id
		}
		n.prev.index = -1
		a.readInt("PreviousContainerIndex", &n.prev.index)
	}
	if n.content == nil {
		return a.err
	}

	c := n.content
	if n.kind == KindAnchorable {
		a.readBool("CanHide", &c.canHide)
		a.readBool("CanAutoHide", &c.canAutoHide)
		a.readSize("AutoHideMinWidth", &c.autoHideMinWidth)
		a.readSize("AutoHideMinHeight", &c.autoHideMinHeight)
		a.readSize("AutoHideWidth", &c.autoHideWidth)
		a.readSize("AutoHideHeight", &c.autoHideHeight)
		if c.autoHideWidth > 0 {
			c.autoHideWidth = max(c.autoHideWidth, c.autoHideMinWidth)
		}
		if c.autoHideHeight > 0 {
			c.autoHideHeight = max(c.autoHideHeight, c.autoHideMinHeight)
		}
	}
	if v, ok := r.Attribute("Title"); ok {
		c.title = v
	}
	if v, ok := r.Attribute("ContentId"); ok {
		c.contentID = v
	}
	if v, ok := r.Attribute("ToolTip"); ok {
		c.toolTip = v
	}
	var selected bool
	a.readBool("IsSelected", &selected)
	a.readBool("IsLastFocusedDocument", &c.lastFocused)
	a.readFloat("FloatingLeft", &c.floating.Left)
	a.readFloat("FloatingTop", &c.floating.Top)
	a.readSize("FloatingWidth", &c.floating.Width)
	a.readSize("FloatingHeight", &c.floating.Height)
	a.readBool("IsMaximized", &c.maximized)
	a.readBool("CanClose", &c.canClose)
	a.readBool("CanFloat", &c.canFloat)
	if v, ok := r.Attribute("LastActivationTimeStamp"); ok {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			a.fail("LastActivationTimeStamp", err)
		}
		c.lastActivation = t
	}
	if a.err != nil {
		return a.err
	}
	n.SetSelected(selected)
	return nil
}

// attrReader parses typed attributes, keeping the first error.
type attrReader struct {
	r    AttributeReader
	kind Kind
	err  error
}

func (a *attrReader) fail(name string, err error) {
	if a.err == nil {
		a.err = fmt.Errorf("%s attribute %s: %w", a.kind, name, err)
	}
}

func (a *attrReader) readBool(name string, dst *bool) {
	if v, ok := a.r.Attribute(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			a.fail(name, err)
			return
		}
		*dst = b
	}
}

func (a *attrReader) readFloat(name string, dst *float64) {
	if v, ok := a.r.Attribute(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			a.fail(name, err)
			return
		}
		*dst = f
	}
}

func (a *attrReader) readSize(name string, dst *float64) {
	f := *dst
	a.readFloat(name, &f)
	if f < 0 {
		a.fail(name, ErrNegativeLength)
		return
	}
	*dst = f
}

func (a *attrReader) readInt(name string, dst *int) {
	if v, ok := a.r.Attribute(name); ok {
		i, err := strconv.Atoi(v)
		if err != nil {
			a.fail(name, err)
			return
		}
		*dst = i
	}
}

func (a *attrReader) readLength(name string, dst *DockLength) {
	if v, ok := a.r.Attribute(name); ok {
		l, err := ParseDockLength(v)
		if err != nil {
			a.fail(name, err)
			return
		}
		*dst = l
	}
}
