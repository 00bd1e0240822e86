package figure

import "image"

// Surface is the 2D drawing context the renderer draws on.
// Coordinates are in surface pixels with the origin at the top left.
type Surface interface {
	// Bounds returns the drawable area of the surface.
	Bounds() image.Rectangle
	// ClearRect resets the given rectangle to transparent.
	ClearRect(x, y, width, height float32)
	// FillRect fills the given rectangle with the current color.
	FillRect(x, y, width, height float32)
	// StrokeCircle strokes the outline of a circle using the current line width.
	StrokeCircle(cx, cy, radius float32)
	// StrokeLine strokes a line segment using the current line width.
	StrokeLine(x0, y0, x1, y1 float32)
	// SetLineWidth sets the width used by subsequent strokes.
	SetLineWidth(width float32)
}
