package hangman

import (
	"errors"

	"github.com/cbodonnell/hangman/pkg/figure"
)

// Kind classifies the outcome of a guess.
type Kind int

const (
	// KindCorrect means the letter is in the word.
	KindCorrect Kind = iota
	// KindIncorrect means the letter is not in the word and a figure step was drawn.
	KindIncorrect
	KindEmptyGuess
	KindInvalidCharacter
	KindMultiCharacterGuess
	KindDuplicateGuess
	KindGameAlreadyOver
	KindNotStarted
)

func (k Kind) String() string {
	switch k {
	case KindCorrect:
		return "Correct"
	case KindIncorrect:
		return "Incorrect"
	case KindEmptyGuess:
		return "EmptyGuess"
	case KindInvalidCharacter:
		return "InvalidCharacter"
	case KindMultiCharacterGuess:
		return "MultiCharacterGuess"
	case KindDuplicateGuess:
		return "DuplicateGuess"
	case KindGameAlreadyOver:
		return "GameAlreadyOver"
	case KindNotStarted:
		return "NotStarted"
	}
	return "Unknown"
}

var (
	ErrEmptyGuess          = errors.New("you didn't provide a guess")
	ErrInvalidCharacter    = errors.New("letters only please")
	ErrMultiCharacterGuess = errors.New("only one letter please")
	ErrDuplicateGuess      = errors.New("letter already guessed")
	ErrGameAlreadyOver     = errors.New("game is already over")
	ErrNotStarted          = errors.New("game has not started")
	ErrEmptyWord           = errors.New("word cannot be empty")
)

// Result describes what a guess did.
type Result struct {
	Kind Kind
	// Letter is the normalized letter, set once the input passed validation.
	Letter rune
	// Step is the figure step to draw for an incorrect guess, otherwise figure.StepNone.
	Step figure.Step
}

// Accepted reports whether the guess changed the game state.
func (r Result) Accepted() bool {
	return r.Kind == KindCorrect || r.Kind == KindIncorrect
}

// Err returns the sentinel error for a rejected or duplicate guess, or nil.
func (r Result) Err() error {
	switch r.Kind {
	case KindEmptyGuess:
		return ErrEmptyGuess
	case KindInvalidCharacter:
		return ErrInvalidCharacter
	case KindMultiCharacterGuess:
		return ErrMultiCharacterGuess
	case KindDuplicateGuess:
		return ErrDuplicateGuess
	case KindGameAlreadyOver:
		return ErrGameAlreadyOver
	case KindNotStarted:
		return ErrNotStarted
	}
	return nil
}

// Message returns the text shown to the player for a rejected or duplicate guess.
func (r Result) Message() string {
	switch r.Kind {
	case KindEmptyGuess:
		return "You didn't provide a guess."
	case KindInvalidCharacter:
		return "Letters only please."
	case KindMultiCharacterGuess:
		return "Only one letter please."
	case KindDuplicateGuess:
		return "You've already guessed this letter!"
	case KindGameAlreadyOver:
		return "The game is over. Start a new one!"
	case KindNotStarted:
		return "The game hasn't started yet."
	}
	return ""
}

func rejected(kind Kind) Result {
	return Result{Kind: kind, Step: figure.StepNone}
}
