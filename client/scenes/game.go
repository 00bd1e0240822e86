package scenes

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/hangman/client/fonts"
	"github.com/cbodonnell/hangman/client/objects"
	"github.com/cbodonnell/hangman/pkg/hangman"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// PanelX is the left edge of the text panel next to the gallows.
	PanelX = 370
	// GallowsX and GallowsY place the drawing surface on the screen.
	GallowsX = 20
	GallowsY = 30

	// HistoryLineLength is the number of characters per line of the guess history.
	HistoryLineLength = 30
	// NotificationTTL is how long a rejected guess message stays on screen, in milliseconds.
	NotificationTTL = 2000

	notificationZIndex = 10
)

// GameScene shows the current game: the gallows, the masked word, the guesses made
// so far and an input for the next guess.
type GameScene struct {
	*BaseScene

	session       *hangman.Session
	canvas        *objects.CanvasSurface
	ui            *ebitenui.UI
	guessInput    *widget.TextInput
	loading       *objects.TextOverlayObject
	notifications int
}

type GameSceneOptions struct {
	// Session is the game being played. Required.
	Session *hangman.Session
	// Canvas is the surface the session renders the figure on. Required.
	Canvas *objects.CanvasSurface
}

var _ Scene = &GameScene{}
var _ hangman.Notifier = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if opts.Canvas == nil {
		return nil, fmt.Errorf("canvas is required")
	}
	return &GameScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		session:   opts.Session,
		canvas:    opts.Canvas,
		loading:   objects.NewTextOverlayObject("overlay-loading", "Loading...", nil),
	}, nil
}

func (s *GameScene) Init() error {
	root := s.Root
	session := s.session
	if err := root.AddChild("gallows", objects.NewGallowsObject("gallows", s.canvas, GallowsX, GallowsY)); err != nil {
		return fmt.Errorf("failed to add gallows: %v", err)
	}
	labels := []*objects.LabelObject{
		objects.NewLabelObject("label-difficulty", objects.NewLabelOptions{
			Text:  func() string { return "Difficulty: " + difficultyLabel(session.Difficulty()) },
			X:     PanelX,
			Y:     GallowsY,
			Face:  fonts.TTFSmallFont,
			Color: hintColor,
		}),
		objects.NewLabelObject("label-word", objects.NewLabelOptions{
			Text: session.MaskedWord,
			X:    PanelX,
			Y:    GallowsY + 40,
			Face: fonts.TTFLargeFont,
		}),
		objects.NewLabelObject("label-remaining", objects.NewLabelOptions{
			Text: func() string { return fmt.Sprintf("Misses left: %d", session.State().Remaining()) },
			X:    PanelX,
			Y:    GallowsY + 100,
			Face: fonts.TTFSmallFont,
		}),
		objects.NewLabelObject("label-history", objects.NewLabelOptions{
			Text: func() string { return WrapText(session.GuessHistory(), HistoryLineLength) },
			X:    PanelX,
			Y:    GallowsY + 130,
			Face: fonts.TTFSmallFont,
		}),
	}
	for _, label := range labels {
		if err := root.AddChild(label.GetID(), label); err != nil {
			return fmt.Errorf("failed to add label: %v", err)
		}
	}

	s.renderUI()
	return s.BaseScene.Init()
}

func (s *GameScene) renderUI() {
	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:  330,
				Left: PanelX,
			}))),
	)

	guessInput := newTextInput(fontFace, "Letter", 90)
	rootContainer.AddChild(guessInput)

	button := newButton("Guess", fontFace, widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})
	rootContainer.AddChild(button)

	// register guess handler with relevant widget events
	guessHandler := func(args interface{}) {
		s.submitGuess()
	}
	guessInput.SubmitEvent.AddHandler(guessHandler)
	button.ClickedEvent.AddHandler(guessHandler)

	s.guessInput = guessInput
	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *GameScene) submitGuess() {
	input := s.guessInput.GetText()
	result := s.session.Guess(input)
	log.Trace("Guess %q: %s", input, result.Kind)
	s.guessInput.SetText("")
	s.guessInput.Focus(true)
}

// Ready focuses the guess input once the word has arrived.
func (s *GameScene) Ready() {
	s.guessInput.SetText("")
	s.guessInput.Focus(true)
}

// Notify shows a rejected guess message under the input and hands focus back to it.
func (s *GameScene) Notify(result hangman.Result) {
	root, ok := s.Root.(*objects.SortedZIndexObject)
	if ok {
		if err := root.RemoveChildrenWithZIndex(notificationZIndex); err != nil {
			log.Warn("Failed to clear notifications: %v", err)
		}
	}
	s.notifications++
	id := fmt.Sprintf("notification-%d", s.notifications)
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   result.Message(),
		X:      PanelX + 120,
		Y:      400,
		Color:  errorColor,
		Scroll: true,
		TTL:    NotificationTTL,
		ZIndex: notificationZIndex,
	})
	if err := s.Root.AddChild(id, effect); err != nil {
		log.Error("Failed to add notification: %v", err)
	}
	s.guessInput.Focus(true)
}

func (s *GameScene) isLoading() bool {
	return s.session.Phase() == hangman.PhaseLoading
}

func (s *GameScene) Update() error {
	if s.isLoading() {
		return nil
	}
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.isLoading() {
		s.loading.Draw(screen)
		return
	}
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}

// WrapText breaks msg on spaces so that no line is longer than width, unless a single word is.
func WrapText(msg string, width int) string {
	words := strings.Fields(msg)
	if len(words) == 0 || width <= 0 {
		return msg
	}
	lines := make([]string, 0)
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
