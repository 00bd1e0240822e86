package game

import (
	"context"
	"fmt"

	"github.com/cbodonnell/hangman/client/input"
	"github.com/cbodonnell/hangman/client/objects"
	"github.com/cbodonnell/hangman/client/scenes"
	"github.com/cbodonnell/hangman/client/ui"
	"github.com/cbodonnell/hangman/pkg/figure"
	"github.com/cbodonnell/hangman/pkg/hangman"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/wordsource"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session is the hangman session shared by every game played.
	session *hangman.Session
	// canvas is the drawing surface the session renders the figure on.
	canvas *objects.CanvasSurface
	// difficulty is the difficulty of the last game started.
	difficulty hangman.Difficulty
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModeLoading
	GameModePlay
	GameModeOver
	GameModeWordSourceError
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModeLoading:
		return "Loading"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	case GameModeWordSourceError:
		return "Word Source Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug bool
	// WordSource provides the target words. Required.
	WordSource wordsource.Source
	// Difficulty starts a game right away instead of showing the menu. Optional.
	Difficulty hangman.Difficulty
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:  opts.Debug,
		canvas: objects.NewCanvasSurface(objects.CanvasWidth, objects.CanvasHeight, nil),
	}

	renderer, err := figure.NewRenderer(g.canvas)
	if err != nil {
		return nil, fmt.Errorf("failed to create figure renderer: %v", err)
	}

	session, err := hangman.NewSession(hangman.NewSessionOptions{
		Source:   opts.WordSource,
		Renderer: renderer,
		Notifier: hangman.NotifierFunc(g.notify),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}
	g.session = session

	if opts.Difficulty != "" {
		if err := g.startGame(opts.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to start game: %v", err)
		}
		return g, nil
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	g.session.Stop()
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnSelect: func(difficulty hangman.Difficulty) {
			if err := g.startGame(difficulty); err != nil {
				log.Error("Failed to start game: %v", err)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

// startGame shows the game scene and requests a word. The scene shows a loading
// message until onReady is called from Poll.
func (g *Game) startGame(difficulty hangman.Difficulty) error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Session: g.session,
		Canvas:  g.canvas,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}

	g.difficulty = difficulty
	g.session.Start(context.Background(), difficulty, func(err error) {
		if err != nil {
			if err := g.loadWordSourceError(err); err != nil {
				log.Error("Failed to load word source error scene: %v", err)
			}
			return
		}
		gameScene.Ready()
		g.mode = GameModePlay
	})

	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = GameModeLoading
	return nil
}

func (g *Game) loadGameOver() error {
	state := g.session.State()
	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		Won:       state.DidWin(),
		Word:      state.Reveal(),
		Incorrect: state.Incorrect(),
		Canvas:    g.canvas,
	})
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = GameModeOver
	return nil
}

func (g *Game) loadWordSourceError(cause error) error {
	actionableErr := ui.StartGameError(cause)
	errorScene, err := scenes.NewErrorScene(actionableErr.Message)
	if err != nil {
		return fmt.Errorf("failed to create word source error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set word source error scene: %v", err)
	}
	g.mode = GameModeWordSourceError
	return nil
}

// notify forwards rejected guesses to the current scene.
func (g *Game) notify(result hangman.Result) {
	if notifier, ok := g.scene.(hangman.Notifier); ok {
		notifier.Notify(result)
	}
}

func (g *Game) Update() error {
	// Apply word source outcomes
	if err := g.session.Poll(); err != nil {
		return fmt.Errorf("failed to poll session: %v", err)
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.mode == GameModePlay && g.session.Phase() == hangman.PhaseOver {
		if err := g.loadGameOver(); err != nil {
			return fmt.Errorf("failed to load game over scene: %v", err)
		}
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModeMenu:
	case GameModeLoading, GameModePlay:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	case GameModeOver, GameModeWordSourceError:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
			break
		}
		if input.IsPositiveJustPressed() {
			if err := g.startGame(g.difficulty); err != nil {
				return fmt.Errorf("failed to start game: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Phase: %s", g.session.Phase()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Session: %s", g.session.ID()))
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
