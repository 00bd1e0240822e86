package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/hangman/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws lines of text centered on the screen.
type TextOverlayObject struct {
	*BaseObject

	lines []string
	face  font.Face
	color color.Color
}

type NewTextOverlayOptions struct {
	// Face defaults to fonts.TTFLargeFont.
	Face font.Face
	// Color defaults to white.
	Color color.Color
	// ZIndex is the z-index of the overlay.
	ZIndex int
}

func NewTextOverlayObject(id string, msg string, opts *NewTextOverlayOptions) *TextOverlayObject {
	if opts == nil {
		opts = &NewTextOverlayOptions{}
	}
	face := opts.Face
	if face == nil {
		face = fonts.TTFLargeFont
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		lines:      strings.Split(msg, "\n"),
		face:       face,
		color:      clr,
	}
}

func (o *TextOverlayObject) SetText(msg string) {
	o.lines = strings.Split(msg, "\n")
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	lineHeight := float64(o.face.Metrics().Height.Ceil())
	top := float64(screen.Bounds().Dy())/2 - lineHeight*float64(len(o.lines))/2
	for i, line := range o.lines {
		bounds, _ := font.BoundString(o.face, line)
		width := float64((bounds.Max.X - bounds.Min.X).Ceil())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx())/2-width/2, top+lineHeight*float64(i+1))
		op.ColorScale.ScaleWithColor(o.color)
		text.DrawWithOptions(screen, line, o.face, op)
	}
}
