package scenes

import (
	"github.com/cbodonnell/hangman/client/fonts"
	"github.com/cbodonnell/hangman/client/objects"
)

type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

// NewErrorScene shows msg along with how to retry or leave.
func NewErrorScene(msg string) (Scene, error) {
	overlay := objects.NewTextOverlayObject("overlay-error", msg+"\n\nPress Enter to retry\nPress Esc for the menu", &objects.NewTextOverlayOptions{
		Face:  fonts.TTFNormalFont,
		Color: errorColor,
	})
	return &ErrorScene{
		BaseScene: NewBaseScene(overlay),
	}, nil
}
