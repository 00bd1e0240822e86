package objects

import (
	"image"
	"image/color"

	"github.com/cbodonnell/hangman/pkg/figure"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// CanvasWidth and CanvasHeight fit the gallows and the whole figure.
	CanvasWidth  = 330
	CanvasHeight = 430
)

// CanvasSurface is a figure.Surface backed by an offscreen ebiten image.
// Drawing on it persists across frames until the area is cleared.
type CanvasSurface struct {
	image     *ebiten.Image
	color     color.Color
	lineWidth float32
}

var _ figure.Surface = &CanvasSurface{}

func NewCanvasSurface(width, height int, clr color.Color) *CanvasSurface {
	if clr == nil {
		clr = color.White
	}
	return &CanvasSurface{
		image:     ebiten.NewImage(width, height),
		color:     clr,
		lineWidth: 1,
	}
}

func (s *CanvasSurface) Image() *ebiten.Image {
	return s.image
}

func (s *CanvasSurface) Bounds() image.Rectangle {
	return s.image.Bounds()
}

func (s *CanvasSurface) ClearRect(x, y, width, height float32) {
	rect := image.Rect(int(x), int(y), int(x+width), int(y+height)).Intersect(s.image.Bounds())
	if rect.Empty() {
		return
	}
	s.image.SubImage(rect).(*ebiten.Image).Clear()
}

func (s *CanvasSurface) FillRect(x, y, width, height float32) {
	vector.DrawFilledRect(s.image, x, y, width, height, s.color, false)
}

func (s *CanvasSurface) StrokeCircle(cx, cy, radius float32) {
	vector.StrokeCircle(s.image, cx, cy, radius, s.lineWidth, s.color, true)
}

func (s *CanvasSurface) StrokeLine(x0, y0, x1, y1 float32) {
	vector.StrokeLine(s.image, x0, y0, x1, y1, s.lineWidth, s.color, true)
}

func (s *CanvasSurface) SetLineWidth(width float32) {
	s.lineWidth = width
}

// GallowsObject draws a canvas surface at a fixed position on the screen.
type GallowsObject struct {
	*BaseObject

	surface *CanvasSurface
	x       float64
	y       float64
}

func NewGallowsObject(id string, surface *CanvasSurface, x, y float64) *GallowsObject {
	return &GallowsObject{
		BaseObject: NewBaseObject(id, nil),
		surface:    surface,
		x:          x,
		y:          y,
	}
}

func (o *GallowsObject) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x, o.y)
	screen.DrawImage(o.surface.Image(), op)
}
