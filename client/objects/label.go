package objects

import (
	"image/color"

	"github.com/cbodonnell/hangman/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// LabelObject draws text whose content is pulled from a function every frame.
// Newlines start a new line.
type LabelObject struct {
	*BaseObject

	textFunc func() string
	x        float64
	y        float64
	face     font.Face
	color    color.Color
}

type NewLabelOptions struct {
	// Text returns the text to draw. Required.
	Text func() string
	// X and Y are the top left corner of the label.
	X, Y float64
	// Face defaults to fonts.TTFNormalFont.
	Face font.Face
	// Color defaults to white.
	Color  color.Color
	ZIndex int
}

func NewLabelObject(id string, opts NewLabelOptions) *LabelObject {
	face := opts.Face
	if face == nil {
		face = fonts.TTFNormalFont
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	textFunc := opts.Text
	if textFunc == nil {
		textFunc = func() string { return "" }
	}
	return &LabelObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		textFunc:   textFunc,
		x:          opts.X,
		y:          opts.Y,
		face:       face,
		color:      clr,
	}
}

func (o *LabelObject) Draw(screen *ebiten.Image) {
	t := o.textFunc()
	if t == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x, o.y+float64(o.face.Metrics().Ascent.Ceil()))
	op.ColorScale.ScaleWithColor(o.color)
	// text.Draw advances by the face line height on each newline.
	text.DrawWithOptions(screen, t, o.face, op)
}
