package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDockLength(t *testing.T) {
	tests := []struct {
		in      string
		want    DockLength
		wantErr bool
	}{
		{in: "*", want: Star(1)},
		{in: "2.5*", want: Star(2.5)},
		{in: "200", want: Pixels(200)},
		{in: "auto", want: AutoLength()},
		{in: " Auto ", want: AutoLength()},
		{in: "x*", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDockLength(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDockLength_String(t *testing.T) {
	assert.Equal(t, "*", Star(1).String())
	assert.Equal(t, "2*", Star(2).String())
	assert.Equal(t, "200", Pixels(200).String())
	assert.Equal(t, "Auto", AutoLength().String())
}

func TestFixChildrenDockLengths_PaneGroupMakesEveryChildStar(t *testing.T) {
	a, b := NewAnchorablePane(), NewAnchorablePane()
	a.SetDockHeight(Pixels(120))
	b.SetDockWidth(Pixels(80))
	g := NewAnchorablePaneGroup(Vertical, a, b)

	g.FixChildrenDockLengths()

	assert.Equal(t, Star(1), a.DockSize().Height)
	assert.Equal(t, Star(1), b.DockSize().Height)
	assert.Equal(t, Pixels(80), b.DockSize().Width, "cross axis untouched")
}

func TestFixChildrenDockLengths_PanelKeepsOneStarChild(t *testing.T) {
	left, doc := NewAnchorablePane(), NewDocumentPane()
	left.SetDockWidth(Pixels(150))
	doc.SetDockWidth(Pixels(600))
	panel := NewPanel(Horizontal, left, doc)
	r := rootWith(t, panel)

	r.FixDockLengths()

	assert.Equal(t, Pixels(150), left.DockSize().Width)
	assert.Equal(t, Star(1), doc.DockSize().Width)

	doc.SetDockWidth(Star(3))
	left.SetDockWidth(Pixels(90))
	r.FixDockLengths()
	assert.Equal(t, Pixels(90), left.DockSize().Width)
	assert.Equal(t, Star(3), doc.DockSize().Width)
}

func TestSetDockMinSize(t *testing.T) {
	p := NewDocumentPane()

	require.NoError(t, p.SetDockMinSize(0, 40))
	assert.Equal(t, 40.0, p.DockSize().MinHeight)
	assert.ErrorIs(t, p.SetDockMinSize(-1, 0), ErrNegativeLength)
	assert.Equal(t, DockSize{}, NewDocument("d").DockSize())
}
