// Package wordsource fetches target words for a difficulty tier from an external service.
package wordsource

import (
	"context"
	"errors"
)

var (
	// ErrWordSource is wrapped by every error returned from a Source.
	ErrWordSource = errors.New("could not start game")
	// ErrMalformedResponse is wrapped when the service answered with something that is not a word.
	ErrMalformedResponse = errors.New("malformed word response")
)

// Source returns a random word for a difficulty tier.
type Source interface {
	FetchWord(ctx context.Context, difficulty string) (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, difficulty string) (string, error)

func (f SourceFunc) FetchWord(ctx context.Context, difficulty string) (string, error) {
	return f(ctx, difficulty)
}
