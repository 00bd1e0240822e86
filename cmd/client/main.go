package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/hangman/client/game"
	"github.com/cbodonnell/hangman/pkg/hangman"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/version"
	"github.com/cbodonnell/hangman/pkg/wordsource"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	wordSourceURL := flag.String("word-source-url", defaultWordSourceURL(), "URL of the word service")
	fetchTimeout := flag.Duration("fetch-timeout", wordsource.DefaultTimeout, "Timeout of a single word request")
	fetchAttempts := flag.Uint("fetch-attempts", wordsource.DefaultMaxAttempts, "Number of attempts made to fetch a word")
	difficulty := flag.String("difficulty", "", "Start a game of this difficulty (easy, medium, hard) instead of showing the menu")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	var startDifficulty hangman.Difficulty
	if *difficulty != "" {
		startDifficulty, err = hangman.ParseDifficulty(*difficulty)
		if err != nil {
			panic(fmt.Sprintf("Failed to parse difficulty: %v", err))
		}
	}

	source, err := wordsource.NewHTTPSource(wordsource.NewHTTPSourceOptions{
		BaseURL:        *wordSourceURL,
		Timeout:        *fetchTimeout,
		MaxAttempts:    *fetchAttempts,
		InitialBackoff: 250 * time.Millisecond,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create word source: %v", err))
	}
	log.Debug("Using word source %s", *wordSourceURL)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:      *debug,
		WordSource: source,
		Difficulty: startDifficulty,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Hangman")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
