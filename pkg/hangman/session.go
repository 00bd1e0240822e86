package hangman

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/hangman/pkg/figure"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/queue"
	"github.com/cbodonnell/hangman/pkg/wordsource"
	"github.com/google/uuid"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhasePlaying
	PhaseOver
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	case PhaseFailed:
		return "Failed"
	}
	return "Unknown"
}

// Notifier shows rejected and duplicate guesses to the player.
type Notifier interface {
	Notify(result Result)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(result Result)

func (f NotifierFunc) Notify(result Result) {
	f(result)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Result) {}

// fetchResult carries the outcome of a word request back to the host loop.
type fetchResult struct {
	request uint64
	word    string
	err     error
}

// Session is a game as seen by the host: it starts games from the word source,
// applies guesses and keeps the figure on the drawing surface in sync.
//
// All methods except the word request itself run on the host loop. The request
// runs on its own goroutine and its outcome is applied by Poll.
type Session struct {
	source   wordsource.Source
	renderer *figure.Renderer
	notifier Notifier
	results  queue.Queue[fetchResult]
	logger   *log.Logger

	id         uuid.UUID
	state      State
	phase      Phase
	difficulty Difficulty
	err        error

	// request identifies the newest start request; older outcomes are dropped.
	request uint64
	onReady func(error)
	cancel  context.CancelFunc
}

type NewSessionOptions struct {
	// Source provides target words. Required.
	Source wordsource.Source
	// Renderer draws the gallows and figure. Required.
	Renderer *figure.Renderer
	// Notifier receives rejected guesses. Optional.
	Notifier Notifier
}

func NewSession(opts NewSessionOptions) (*Session, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("word source is required")
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Session{
		source:   opts.Source,
		renderer: opts.Renderer,
		notifier: notifier,
		results:  queue.NewInMemoryQueue[fetchResult](queue.QueueBufferSize),
		logger:   log.With("session", uuid.Nil.String()),
		phase:    PhaseIdle,
	}, nil
}

// Start requests a word for difficulty. Once Poll applies the outcome, onReady is
// called exactly once: with nil when the game is ready, or with an error wrapping
// wordsource.ErrWordSource when it could not start. Starting again abandons any
// pending request without calling its onReady.
func (s *Session) Start(ctx context.Context, difficulty Difficulty, onReady func(error)) {
	s.abandon()

	s.request++
	request := s.request
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.onReady = onReady
	s.difficulty = difficulty
	s.state = State{}
	s.err = nil
	s.phase = PhaseLoading

	s.logger.Debug("Requesting %s word (request %d)", difficulty, request)
	source := s.source
	results := s.results
	go func() {
		word, err := source.FetchWord(ctx, difficulty.String())
		if err := results.Enqueue(fetchResult{request: request, word: word, err: err}); err != nil {
			log.Error("Failed to enqueue word result for request %d: %v", request, err)
		}
	}()
}

// Stop abandons the current game and any pending word request.
func (s *Session) Stop() {
	s.abandon()
	s.state = State{}
	s.err = nil
	s.phase = PhaseIdle
}

func (s *Session) abandon() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.onReady = nil
}

// Poll applies pending word request outcomes. It must be called from the host loop.
func (s *Session) Poll() error {
	results, err := s.results.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read word results: %v", err)
	}
	for _, r := range results {
		if r.request != s.request || s.phase != PhaseLoading {
			s.logger.Debug("Dropping outcome of superseded request %d", r.request)
			continue
		}
		s.finishStart(r)
	}
	return nil
}

func (s *Session) finishStart(r fetchResult) {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	onReady := s.onReady
	s.onReady = nil

	err := r.err
	var state State
	if err == nil {
		state, err = NewState(r.word)
		if err != nil {
			err = fmt.Errorf("%w: %w", wordsource.ErrMalformedResponse, err)
		}
	}
	if err != nil {
		if !errors.Is(err, wordsource.ErrWordSource) {
			err = fmt.Errorf("%w: %w", wordsource.ErrWordSource, err)
		}
		s.phase = PhaseFailed
		s.err = err
		s.logger.Error("Failed to start %s game: %v", s.difficulty, err)
		if onReady != nil {
			onReady(err)
		}
		return
	}

	s.id = uuid.New()
	s.logger = log.With("session", s.id.String())
	s.state = state
	s.phase = PhasePlaying
	s.renderer.Clear()
	s.renderer.DrawBase()
	s.logger.Info("Started %s game with a %d letter word", s.difficulty, len(state.Word()))
	if onReady != nil {
		onReady(nil)
	}
}

// Guess applies a guess to the current game. Rejected and duplicate guesses are
// reported to the notifier and leave the game unchanged.
func (s *Session) Guess(input string) Result {
	var result Result
	if s.phase != PhasePlaying && s.phase != PhaseOver {
		result = rejected(KindNotStarted)
	} else {
		s.state, result = s.state.Guess(input)
	}

	switch result.Kind {
	case KindIncorrect:
		if err := s.renderer.DrawStep(result.Step); err != nil {
			s.logger.Error("Failed to draw figure step %s: %v", result.Step, err)
		}
		s.logger.Debug("Incorrect guess %q, drew %s", result.Letter, result.Step)
	case KindCorrect:
		s.logger.Debug("Correct guess %q", result.Letter)
	default:
		s.logger.Debug("Rejected guess: %s", result.Kind)
		s.notifier.Notify(result)
	}

	if s.phase == PhasePlaying && s.state.IsOver() {
		s.phase = PhaseOver
		if s.state.DidWin() {
			s.logger.Info("Game won with %d incorrect guesses", s.state.Incorrect())
		} else {
			s.logger.Info("Game lost, the word was %q", s.state.Word())
		}
	}

	return result
}

// State returns a snapshot of the current game.
func (s *Session) State() State {
	return s.state
}

func (s *Session) Phase() Phase {
	return s.phase
}

// ID identifies the current game. It changes on every successful start.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Err returns the error of the last failed start, if any.
func (s *Session) Err() error {
	return s.err
}

func (s *Session) MaskedWord() string {
	return s.state.MaskedWord()
}

func (s *Session) GuessHistory() string {
	return s.state.GuessHistory()
}
