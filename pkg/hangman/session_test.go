package hangman

import (
	"context"
	"errors"
	"fmt"
	"image"
	"testing"
	"time"

	"github.com/cbodonnell/hangman/pkg/figure"
	"github.com/cbodonnell/hangman/pkg/wordsource"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface records the drawing calls made by the renderer.
type recordingSurface struct {
	calls []string
}

func (s *recordingSurface) Bounds() image.Rectangle { return image.Rect(0, 0, 400, 440) }

func (s *recordingSurface) ClearRect(x, y, w, h float32) { s.calls = append(s.calls, "clear") }

func (s *recordingSurface) FillRect(x, y, w, h float32) { s.calls = append(s.calls, "fill") }

func (s *recordingSurface) StrokeCircle(cx, cy, r float32) {
	s.calls = append(s.calls, fmt.Sprintf("circle %v %v", cx, cy))
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float32) {
	s.calls = append(s.calls, fmt.Sprintf("line %v %v %v %v", x0, y0, x1, y1))
}

func (s *recordingSurface) SetLineWidth(w float32) {}

// strokes returns the figure strokes drawn so far.
func (s *recordingSurface) strokes() []string {
	var out []string
	for _, c := range s.calls {
		if c != "clear" && c != "fill" {
			out = append(out, c)
		}
	}
	return out
}

type recordingNotifier struct {
	results []Result
}

func (n *recordingNotifier) Notify(r Result) {
	n.results = append(n.results, r)
}

type testSession struct {
	*Session
	surface  *recordingSurface
	notifier *recordingNotifier
}

func newTestSession(t *testing.T, source wordsource.Source) *testSession {
	t.Helper()
	surface := &recordingSurface{}
	renderer, err := figure.NewRenderer(surface)
	require.NoError(t, err)
	notifier := &recordingNotifier{}
	session, err := NewSession(NewSessionOptions{
		Source:   source,
		Renderer: renderer,
		Notifier: notifier,
	})
	require.NoError(t, err)
	return &testSession{Session: session, surface: surface, notifier: notifier}
}

func staticSource(word string) wordsource.Source {
	return wordsource.SourceFunc(func(ctx context.Context, difficulty string) (string, error) {
		return word, nil
	})
}

// startAndWait starts the session and polls it until onReady fires.
func startAndWait(t *testing.T, s *Session, difficulty Difficulty) (int, error) {
	t.Helper()
	var readyErr error
	calls := 0
	s.Start(context.Background(), difficulty, func(err error) {
		readyErr = err
		calls++
	})
	deadline := time.Now().Add(2 * time.Second)
	for calls == 0 {
		require.NoError(t, s.Poll())
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the session to start")
		}
		time.Sleep(time.Millisecond)
	}
	// later polls must not call onReady again
	require.NoError(t, s.Poll())
	return calls, readyErr
}

func TestNewSession_requiresCollaborators(t *testing.T) {
	renderer, err := figure.NewRenderer(&recordingSurface{})
	require.NoError(t, err)

	_, err = NewSession(NewSessionOptions{Renderer: renderer})
	assert.Error(t, err)

	_, err = NewSession(NewSessionOptions{Source: staticSource("book")})
	assert.Error(t, err)
}

func TestSession_Start(t *testing.T) {
	var gotDifficulty string
	source := wordsource.SourceFunc(func(ctx context.Context, difficulty string) (string, error) {
		gotDifficulty = difficulty
		return "Book", nil
	})
	s := newTestSession(t, source)
	assert.Equal(t, PhaseIdle, s.Phase())

	calls, err := startAndWait(t, s.Session, DifficultyMedium)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "medium", gotDifficulty)

	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, DifficultyMedium, s.Difficulty())
	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, "book", s.State().Word())
	assert.Empty(t, s.State().Guessed())
	assert.Equal(t, 0, s.State().Incorrect())
	assert.False(t, s.State().IsOver())
	assert.Equal(t, "_ _ _ _", s.MaskedWord())
	assert.Equal(t, []string{"clear", "fill", "fill", "fill", "fill"}, s.surface.calls)
}

func TestSession_Start_resetsPreviousGame(t *testing.T) {
	s := newTestSession(t, staticSource("cat"))
	_, _ = startAndWait(t, s.Session, DifficultyEasy)
	firstID := s.ID()
	s.Guess("x")
	s.Guess("c")
	require.Equal(t, 1, s.State().Incorrect())

	_, err := startAndWait(t, s.Session, DifficultyEasy)
	require.NoError(t, err)
	assert.NotEqual(t, firstID, s.ID())
	assert.Empty(t, s.State().Guessed())
	assert.Equal(t, 0, s.State().Incorrect())
	assert.Equal(t, "Picked so far: ", s.GuessHistory())
}

func TestSession_Start_wordSourceFailure(t *testing.T) {
	tests := []struct {
		name          string
		source        wordsource.Source
		wantMalformed bool
	}{
		{
			name: "source error",
			source: wordsource.SourceFunc(func(ctx context.Context, difficulty string) (string, error) {
				return "", fmt.Errorf("%w: connection refused", wordsource.ErrWordSource)
			}),
		},
		{
			name: "unwrapped source error",
			source: wordsource.SourceFunc(func(ctx context.Context, difficulty string) (string, error) {
				return "", errors.New("boom")
			}),
		},
		{
			name:          "empty word",
			source:        staticSource(""),
			wantMalformed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.source)
			calls, err := startAndWait(t, s.Session, DifficultyHard)
			assert.Equal(t, 1, calls)
			assert.ErrorIs(t, err, wordsource.ErrWordSource)
			if tt.wantMalformed {
				assert.ErrorIs(t, err, wordsource.ErrMalformedResponse)
			}
			assert.Equal(t, PhaseFailed, s.Phase())
			assert.Equal(t, err, s.Err())
			assert.False(t, s.State().Started())
			assert.Empty(t, s.surface.calls)

			r := s.Guess("a")
			assert.Equal(t, KindNotStarted, r.Kind)
		})
	}
}

func TestSession_Start_dropsSupersededRequest(t *testing.T) {
	release := map[string]chan struct{}{
		"easy": make(chan struct{}),
		"hard": make(chan struct{}),
	}
	source := wordsource.SourceFunc(func(ctx context.Context, difficulty string) (string, error) {
		<-release[difficulty]
		return difficulty + "word", nil
	})
	s := newTestSession(t, source)

	easyCalls := 0
	s.Start(context.Background(), DifficultyEasy, func(err error) { easyCalls++ })
	assert.Equal(t, PhaseLoading, s.Phase())

	hardCalls := 0
	s.Start(context.Background(), DifficultyHard, func(err error) { hardCalls++ })

	close(release["easy"])
	close(release["hard"])

	deadline := time.Now().Add(2 * time.Second)
	for hardCalls == 0 {
		require.NoError(t, s.Poll())
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the session to start")
		}
		time.Sleep(time.Millisecond)
	}
	// give the superseded request time to land, then make sure it is dropped
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.Poll())

	assert.Equal(t, 0, easyCalls)
	assert.Equal(t, 1, hardCalls)
	assert.Equal(t, "hardword", s.State().Word())
}

func TestSession_Guess_beforeStart(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	source := wordsource.SourceFunc(func(ctx context.Context, difficulty string) (string, error) {
		<-block
		return "book", nil
	})
	s := newTestSession(t, source)

	r := s.Guess("a")
	assert.Equal(t, KindNotStarted, r.Kind)

	s.Start(context.Background(), DifficultyEasy, func(error) {})
	r = s.Guess("a")
	assert.Equal(t, KindNotStarted, r.Kind)
	assert.ErrorIs(t, r.Err(), ErrNotStarted)

	require.Len(t, s.notifier.results, 2)
	assert.Empty(t, s.surface.strokes())
}

func TestSession_Guess_win(t *testing.T) {
	s := newTestSession(t, staticSource("book"))
	_, _ = startAndWait(t, s.Session, DifficultyEasy)

	assert.Equal(t, KindCorrect, s.Guess("b").Kind)
	assert.Equal(t, KindCorrect, s.Guess("o").Kind)
	assert.Equal(t, "b o o _", s.MaskedWord())
	assert.Equal(t, PhasePlaying, s.Phase())

	assert.Equal(t, KindCorrect, s.Guess("k").Kind)
	assert.True(t, s.State().IsOver())
	assert.True(t, s.State().DidWin())
	assert.Equal(t, PhaseOver, s.Phase())
	assert.Equal(t, "Picked so far: b | o | k", s.GuessHistory())

	r := s.Guess("z")
	assert.Equal(t, KindGameAlreadyOver, r.Kind)
	assert.Empty(t, s.surface.strokes())
	require.Len(t, s.notifier.results, 1)
	assert.Equal(t, KindGameAlreadyOver, s.notifier.results[0].Kind)
}

func TestSession_Guess_lossDrawsEveryStepOnce(t *testing.T) {
	s := newTestSession(t, staticSource("cat"))
	_, _ = startAndWait(t, s.Session, DifficultyEasy)

	for _, l := range []string{"x", "y", "z", "q", "w", "e"} {
		assert.Equal(t, KindIncorrect, s.Guess(l).Kind)
	}

	assert.True(t, s.State().IsOver())
	assert.False(t, s.State().DidWin())
	assert.Equal(t, PhaseOver, s.Phase())
	assert.Equal(t, []string{
		"circle 250 95",
		"line 250 130 250 240",
		"line 250 160 185 250",
		"line 250 160 315 250",
		"line 250 240 185 335",
		"line 250 240 315 335",
	}, s.surface.strokes())

	s.Guess("c")
	assert.Len(t, s.surface.strokes(), figure.StepCount)
}

func TestSession_Guess_rejectionsAreNotified(t *testing.T) {
	s := newTestSession(t, staticSource("book"))
	_, _ = startAndWait(t, s.Session, DifficultyEasy)

	tests := []struct {
		input string
		want  Kind
	}{
		{input: "", want: KindEmptyGuess},
		{input: "5", want: KindInvalidCharacter},
		{input: "ab", want: KindMultiCharacterGuess},
		{input: "b", want: KindCorrect},
		{input: "b", want: KindDuplicateGuess},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Guess(tt.input).Kind, "input %q", tt.input)
	}

	kinds := make([]Kind, 0, len(s.notifier.results))
	for _, r := range s.notifier.results {
		kinds = append(kinds, r.Kind)
	}
	assert.Equal(t, []Kind{KindEmptyGuess, KindInvalidCharacter, KindMultiCharacterGuess, KindDuplicateGuess}, kinds)
	assert.Equal(t, []rune{'b'}, s.State().Guessed())
	assert.Equal(t, 0, s.State().Incorrect())
}

func TestSession_Stop(t *testing.T) {
	s := newTestSession(t, staticSource("book"))
	_, _ = startAndWait(t, s.Session, DifficultyEasy)

	s.Stop()
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Equal(t, KindNotStarted, s.Guess("b").Kind)
}
