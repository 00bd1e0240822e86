//go:build js

package main

import (
	"syscall/js"

	"github.com/cbodonnell/hangman/pkg/wordsource"
)

// defaultWordSourceURL points the browser build at the /word proxy of the server that served it.
func defaultWordSourceURL() string {
	location := js.Global().Get("location")
	if location.IsUndefined() || location.IsNull() {
		return wordsource.DefaultBaseURL
	}
	return location.Get("origin").String() + "/word"
}
