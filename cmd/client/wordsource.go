//go:build !js

package main

import "github.com/cbodonnell/hangman/pkg/wordsource"

func defaultWordSourceURL() string {
	return wordsource.DefaultBaseURL
}
