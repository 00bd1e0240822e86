package scenes

import (
	"image/color"

	"github.com/cbodonnell/hangman/client/fonts"
	"github.com/cbodonnell/hangman/client/objects"
	"github.com/cbodonnell/hangman/pkg/hangman"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onSelect func(difficulty hangman.Difficulty)
	ui       *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnSelect is called when a difficulty button is pressed.
	OnSelect func(difficulty hangman.Difficulty)
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onSelect:  opts.OnSelect,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    90,
				Left:   200,
				Right:  200,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Hangman", fonts.MPlusTitleFont, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))
	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Choose a difficulty", fonts.TTFSmallFont, hintColor),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	for _, difficulty := range hangman.Difficulties {
		difficulty := difficulty
		button := newButton(difficultyLabel(difficulty), fontFace, widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
			Stretch:  true,
		})
		button.ClickedEvent.AddHandler(func(args interface{}) {
			if s.onSelect != nil {
				s.onSelect(difficulty)
			}
		})
		rootContainer.AddChild(button)
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func difficultyLabel(d hangman.Difficulty) string {
	switch d {
	case hangman.DifficultyEasy:
		return "Easy"
	case hangman.DifficultyMedium:
		return "Medium"
	case hangman.DifficultyHard:
		return "Hard"
	}
	return d.String()
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
