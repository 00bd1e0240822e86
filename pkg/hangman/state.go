package hangman

import (
	"strings"

	"github.com/cbodonnell/hangman/pkg/figure"
)

const (
	// MaxIncorrect is the number of misses that completes the figure and loses the game.
	MaxIncorrect = figure.StepCount

	placeholder      = "_"
	maskDelimiter    = " "
	historyPrefix    = "Picked so far: "
	historyDelimiter = " | "
)

// State is an immutable snapshot of one game. Guess returns a new State and
// never modifies its receiver, so a State can be kept and compared freely.
// The zero value is a game that has not started.
type State struct {
	word      string
	guessed   []rune
	incorrect int
	over      bool
	won       bool
}

// NewState returns a fresh game for word.
func NewState(word string) (State, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return State{}, ErrEmptyWord
	}
	return State{word: word}, nil
}

// Guess evaluates input against the state and returns the resulting state.
// Rejected guesses return the receiver unchanged.
func (s State) Guess(input string) (State, Result) {
	if !s.Started() {
		return s, rejected(KindNotStarted)
	}
	if s.over {
		return s, rejected(KindGameAlreadyOver)
	}

	letter, kind, ok := validateGuess(input)
	if !ok {
		return s, rejected(kind)
	}

	if s.HasGuessed(letter) {
		return s, Result{Kind: KindDuplicateGuess, Letter: letter, Step: figure.StepNone}
	}

	next := s.withGuess(letter)
	if strings.ContainsRune(next.word, letter) {
		next.checkWin()
		return next, Result{Kind: KindCorrect, Letter: letter, Step: figure.StepNone}
	}

	step := next.onWrongGuess()
	return next, Result{Kind: KindIncorrect, Letter: letter, Step: step}
}

// validateGuess checks, in order, for empty input, characters outside a-z/A-Z
// and input longer than one letter.
func validateGuess(input string) (rune, Kind, bool) {
	if input == "" {
		return 0, KindEmptyGuess, false
	}
	for _, c := range input {
		if !isASCIILetter(c) {
			return 0, KindInvalidCharacter, false
		}
	}
	if len(input) > 1 {
		return 0, KindMultiCharacterGuess, false
	}
	return toLower(rune(input[0])), 0, true
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (s State) withGuess(letter rune) State {
	guessed := make([]rune, len(s.guessed), len(s.guessed)+1)
	copy(guessed, s.guessed)
	s.guessed = append(guessed, letter)
	return s
}

// checkWin ends the game as a win once every distinct letter of the word was guessed.
func (s *State) checkWin() {
	for _, c := range s.word {
		if !s.HasGuessed(c) {
			return
		}
	}
	s.over = true
	s.won = true
}

// onWrongGuess returns the figure step for the current miss count, then counts the miss.
// The last step ends the game as a loss.
func (s *State) onWrongGuess() figure.Step {
	if s.incorrect >= MaxIncorrect {
		s.over = true
		s.won = false
		return figure.StepNone
	}
	step := figure.Step(s.incorrect)
	if step == figure.StepRightLeg {
		s.over = true
		s.won = false
	}
	s.incorrect++
	return step
}

// HasGuessed reports whether letter was already guessed.
func (s State) HasGuessed(letter rune) bool {
	for _, g := range s.guessed {
		if g == letter {
			return true
		}
	}
	return false
}

// Started reports whether the state holds a word.
func (s State) Started() bool {
	return s.word != ""
}

func (s State) Word() string {
	return s.word
}

// Guessed returns the guessed letters in the order they were guessed.
func (s State) Guessed() []rune {
	out := make([]rune, len(s.guessed))
	copy(out, s.guessed)
	return out
}

func (s State) Incorrect() int {
	return s.incorrect
}

// Remaining returns how many more misses the player can afford.
func (s State) Remaining() int {
	return MaxIncorrect - s.incorrect
}

func (s State) IsOver() bool {
	return s.over
}

// DidWin is only meaningful once IsOver is true.
func (s State) DidWin() bool {
	return s.over && s.won
}

// MaskedWord shows guessed letters and a placeholder for every other position,
// separated by spaces, e.g. "b o o _".
func (s State) MaskedWord() string {
	parts := make([]string, 0, len(s.word))
	for _, c := range s.word {
		if s.HasGuessed(c) {
			parts = append(parts, string(c))
		} else {
			parts = append(parts, placeholder)
		}
	}
	return strings.Join(parts, maskDelimiter)
}

// Reveal returns the whole word in the same layout as MaskedWord.
func (s State) Reveal() string {
	parts := make([]string, 0, len(s.word))
	for _, c := range s.word {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, maskDelimiter)
}

// GuessHistory lists the guesses in order, e.g. "Picked so far: a | b".
func (s State) GuessHistory() string {
	parts := make([]string, 0, len(s.guessed))
	for _, g := range s.guessed {
		parts = append(parts, string(g))
	}
	return historyPrefix + strings.Join(parts, historyDelimiter)
}
