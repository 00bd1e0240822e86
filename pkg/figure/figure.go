package figure

import (
	"errors"
	"fmt"
)

// Step is one of the six body parts drawn as incorrect guesses accumulate.
type Step int

const (
	StepHead Step = iota
	StepBody
	StepLeftArm
	StepRightArm
	StepLeftLeg
	StepRightLeg
)

// StepCount is the number of figure steps. Drawing the last one completes the figure.
const StepCount = 6

// StepNone marks the absence of a step.
const StepNone Step = -1

func (s Step) String() string {
	switch s {
	case StepHead:
		return "Head"
	case StepBody:
		return "Body"
	case StepLeftArm:
		return "LeftArm"
	case StepRightArm:
		return "RightArm"
	case StepLeftLeg:
		return "LeftLeg"
	case StepRightLeg:
		return "RightLeg"
	case StepNone:
		return "None"
	}
	return "Unknown"
}

// Valid reports whether s is one of the six drawable steps.
func (s Step) Valid() bool {
	return s >= StepHead && s <= StepRightLeg
}

const (
	// LineWidth is the stroke width of the figure.
	LineWidth = 4
)

var (
	ErrNoSurface   = errors.New("no drawing surface provided")
	ErrInvalidStep = errors.New("invalid figure step")
)

// Renderer draws the gallows and the figure on a Surface.
// It keeps no state of its own: which step to draw is decided by the caller.
type Renderer struct {
	surface Surface
}

// NewRenderer creates a renderer for the given surface.
func NewRenderer(surface Surface) (*Renderer, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	return &Renderer{
		surface: surface,
	}, nil
}

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() Surface {
	return r.surface
}

// Clear wipes the whole surface.
func (r *Renderer) Clear() {
	b := r.surface.Bounds()
	r.surface.ClearRect(float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()))
}

// DrawBase draws the gallows.
func (r *Renderer) DrawBase() {
	r.surface.FillRect(95, 10, 150, 10)  // top
	r.surface.FillRect(245, 10, 10, 50)  // noose
	r.surface.FillRect(95, 10, 10, 400)  // main beam
	r.surface.FillRect(10, 410, 175, 10) // base
}

// DrawStep draws a single body part.
func (r *Renderer) DrawStep(step Step) error {
	if !step.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	r.surface.SetLineWidth(LineWidth)
	switch step {
	case StepHead:
		r.surface.StrokeCircle(250, 95, 35)
	case StepBody:
		r.surface.StrokeLine(250, 130, 250, 240)
	case StepLeftArm:
		r.surface.StrokeLine(250, 160, 185, 250)
	case StepRightArm:
		r.surface.StrokeLine(250, 160, 315, 250)
	case StepLeftLeg:
		r.surface.StrokeLine(250, 240, 185, 335)
	case StepRightLeg:
		r.surface.StrokeLine(250, 240, 315, 335)
	}
	return nil
}

// DrawUpTo redraws the gallows and the first n steps of the figure.
func (r *Renderer) DrawUpTo(n int) error {
	if n < 0 || n > StepCount {
		return fmt.Errorf("%w: count %d", ErrInvalidStep, n)
	}
	r.Clear()
	r.DrawBase()
	for i := 0; i < n; i++ {
		if err := r.DrawStep(Step(i)); err != nil {
			return err
		}
	}
	return nil
}
