package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cbodonnell/hangman/pkg/api/middleware"
	"github.com/cbodonnell/hangman/pkg/hangman"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/wordsource"
)

// WordResponseBody matches the body served by the upstream word service.
type WordResponseBody struct {
	Word string `json:"word"`
}

type ErrorResponseBody struct {
	Error string `json:"error"`
}

// HandleGetWord proxies GET /word?difficulty=<tier> to the word source.
func HandleGetWord(source wordsource.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With("request", middleware.RequestID(r.Context()))

		difficulty, err := hangman.ParseDifficulty(r.URL.Query().Get("difficulty"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, &ErrorResponseBody{Error: err.Error()})
			return
		}

		word, err := source.FetchWord(r.Context(), difficulty.String())
		if err != nil {
			logger.Error("failed to fetch %s word: %v", difficulty, err)
			status := http.StatusBadGateway
			if r.Context().Err() != nil {
				status = http.StatusServiceUnavailable
			}
			writeJSON(w, status, &ErrorResponseBody{Error: "Failed to fetch word"})
			return
		}

		logger.Debug("served %s word", difficulty)
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, &WordResponseBody{Word: word})
	}
}

// HandleHealth reports that the server is up.
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
