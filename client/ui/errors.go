package ui

import (
	"errors"

	"github.com/cbodonnell/hangman/pkg/wordsource"
)

// ActionableError is an error whose message can be shown to the player as is.
type ActionableError struct {
	Message string
	Err     error
}

func (e *ActionableError) Error() string {
	return e.Message
}

func (e *ActionableError) Unwrap() error {
	return e.Err
}

// StartGameError turns a failed game start into a message for the player.
func StartGameError(err error) *ActionableError {
	if actionableErr := (&ActionableError{}); errors.As(err, &actionableErr) {
		return actionableErr
	}
	msg := "Could not start game.\nPlease try again."
	if errors.Is(err, wordsource.ErrMalformedResponse) {
		msg = "Could not start game.\nThe word service sent an invalid word."
	}
	return &ActionableError{
		Message: msg,
		Err:     err,
	}
}
