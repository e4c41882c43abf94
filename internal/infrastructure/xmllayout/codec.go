// Package xmllayout reads and writes layout trees as XML documents. Every
// node becomes one element named after its kind, carrying the node's
// persisted attributes.
package xmllayout

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/docklayout/internal/domain/layout"
)

// ErrUnexpectedElement is returned when a document contains an element
// that cannot appear at its position.
var ErrUnexpectedElement = errors.New("unexpected element")

const (
	elemRoot            = "LayoutRoot"
	elemRootPanel       = "RootPanel"
	elemFloatingWindows = "FloatingWindows"
	elemHidden          = "Hidden"
)

var sideElements = [...]struct {
	name string
	side layout.Side
}{
	{"TopSide", layout.SideTop},
	{"RightSide", layout.SideRight},
	{"BottomSide", layout.SideBottom},
	{"LeftSide", layout.SideLeft},
}

// Codec implements port.LayoutCodec.
type Codec struct {
	indent string
}

// New creates a codec writing two-space indented documents.
func New() *Codec {
	return &Codec{indent: "  "}
}

// Encode writes r as an XML document. It may assign pane ids to panes
// referenced as previous containers, so it must run on the goroutine that
// owns the layout.
func (c *Codec) Encode(r *layout.Root) ([]byte, error) {
	if r == nil {
		return nil, layout.ErrNilNode
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", c.indent)

	root := xml.StartElement{Name: xml.Name{Local: elemRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	if err := encodeNode(enc, elemRootPanel, r.RootPanel()); err != nil {
		return nil, err
	}
	for _, s := range sideElements {
		if err := encodeList(enc, s.name, r.Side(s.side).Children()); err != nil {
			return nil, err
		}
	}
	if err := encodeList(enc, elemFloatingWindows, r.FloatingWindows()); err != nil {
		return nil, err
	}
	if err := encodeList(enc, elemHidden, r.Hidden()); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeList(enc *xml.Encoder, name string, nodes []*layout.Node) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, n := range nodes {
		if err := encodeNode(enc, n.Kind().String(), n); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func encodeNode(enc *xml.Encoder, name string, n *layout.Node) error {
	var w attrWriter
	n.WriteAttributes(&w)
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: w}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := encodeNode(enc, child.Kind().String(), child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Decode builds a detached root from an XML document. Previous-container
// ids and the last focused document are resolved once the whole tree is
// built. Unknown elements directly under the document element are skipped.
func (c *Codec) Decode(data []byte) (*layout.Root, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	start, err := firstElement(d)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if start.Name.Local != elemRoot {
		return nil, fmt.Errorf("%w: %s, want %s", ErrUnexpectedElement, start.Name.Local, elemRoot)
	}

	r := layout.NewRoot()
	err = eachChild(d, func(el xml.StartElement) error {
		switch el.Name.Local {
		case elemRootPanel:
			p, err := decodeNode(d, el, layout.KindPanel)
			if err != nil {
				return err
			}
			return r.SetRootPanel(p)
		case elemFloatingWindows:
			return eachNode(d, r.AddFloatingWindow)
		case elemHidden:
			return eachNode(d, r.AppendHidden)
		}
		for _, s := range sideElements {
			if s.name == el.Name.Local {
				return eachNode(d, r.Side(s.side).AddChild)
			}
		}
		return d.Skip()
	})
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	r.ResolveReferences()
	return r, nil
}

func firstElement(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// eachChild calls fn for every child element of the element whose start
// tag was just read, then consumes its end tag. fn must consume the
// child's end tag.
func eachChild(d *xml.Decoder, fn func(xml.StartElement) error) error {
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// eachNode decodes every child element as a node and hands it to add.
func eachNode(d *xml.Decoder, add func(*layout.Node) error) error {
	return eachChild(d, func(el xml.StartElement) error {
		n, err := decodeElement(d, el)
		if err != nil {
			return err
		}
		if err := add(n); err != nil {
			return fmt.Errorf("%s: %w", el.Name.Local, err)
		}
		return nil
	})
}

func decodeElement(d *xml.Decoder, start xml.StartElement) (*layout.Node, error) {
	kind, ok := layout.ParseKind(start.Name.Local)
	if !ok || kind == layout.KindRoot || kind == layout.KindAnchorSide {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedElement, start.Name.Local)
	}
	return decodeNode(d, start, kind)
}

func decodeNode(d *xml.Decoder, start xml.StartElement, kind layout.Kind) (*layout.Node, error) {
	n := layout.New(kind)
	if err := n.ReadAttributes(attrReader(start.Attr)); err != nil {
		return nil, err
	}
	err := eachNode(d, func(child *layout.Node) error {
		if err := n.AddChild(child); err != nil {
			return fmt.Errorf("in %s: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

type attrWriter []xml.Attr

func (w *attrWriter) WriteAttribute(name, value string) {
	*w = append(*w, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

type attrReader []xml.Attr

func (a attrReader) Attribute(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}
