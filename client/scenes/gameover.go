package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/hangman/client/fonts"
	"github.com/cbodonnell/hangman/client/objects"
)

var (
	winColor  = color.NRGBA{R: 120, G: 220, B: 120, A: 255}
	lossColor = errorColor
)

type GameOverScene struct {
	*BaseScene
}

type GameOverSceneOptions struct {
	// Won is true when every letter of the word was guessed.
	Won bool
	// Word is the revealed target word.
	Word string
	// Incorrect is the number of incorrect guesses made.
	Incorrect int
	// Canvas holds the final figure. Optional.
	Canvas *objects.CanvasSurface
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (Scene, error) {
	root := objects.NewBaseObject("gameover-root", nil)
	if opts.Canvas != nil {
		if err := root.AddChild("gallows", objects.NewGallowsObject("gallows", opts.Canvas, GallowsX, GallowsY)); err != nil {
			return nil, fmt.Errorf("failed to add gallows: %v", err)
		}
	}

	headline, headlineColor := "You lost!", color.Color(lossColor)
	if opts.Won {
		headline, headlineColor = "You won!", winColor
	}
	summary := fmt.Sprintf("The word was:\n%s", opts.Word)
	if opts.Won {
		summary = fmt.Sprintf("%s\nwith %d %s", summary, opts.Incorrect, pluralize(opts.Incorrect, "miss", "misses"))
	}

	labels := []*objects.LabelObject{
		objects.NewLabelObject("label-headline", objects.NewLabelOptions{
			Text:  func() string { return headline },
			X:     PanelX,
			Y:     GallowsY + 40,
			Face:  fonts.TTFLargeFont,
			Color: headlineColor,
		}),
		objects.NewLabelObject("label-summary", objects.NewLabelOptions{
			Text: func() string { return summary },
			X:    PanelX,
			Y:    GallowsY + 100,
		}),
		objects.NewLabelObject("label-hint", objects.NewLabelOptions{
			Text:  func() string { return "Press Enter to play again\nPress Esc for the menu" },
			X:     PanelX,
			Y:     GallowsY + 330,
			Face:  fonts.TTFSmallFont,
			Color: hintColor,
		}),
	}
	for _, label := range labels {
		if err := root.AddChild(label.GetID(), label); err != nil {
			return nil, fmt.Errorf("failed to add label: %v", err)
		}
	}

	return &GameOverScene{
		BaseScene: NewBaseScene(root),
	}, nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
