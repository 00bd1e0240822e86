package wordsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cenkalti/backoff/v5"
)

const (
	DefaultBaseURL        = "https://hangman-micro-service.herokuapp.com/"
	DefaultTimeout        = 5 * time.Second
	DefaultMaxAttempts    = 3
	DefaultInitialBackoff = 250 * time.Millisecond
)

// HTTPSource fetches words from a service answering GET <base>?difficulty=<tier>
// with a JSON body of the form {"word": "book"}.
type HTTPSource struct {
	baseURL        *url.URL
	client         *http.Client
	maxAttempts    uint
	initialBackoff time.Duration
}

var _ Source = &HTTPSource{}

type NewHTTPSourceOptions struct {
	// BaseURL is the URL of the word service. Defaults to DefaultBaseURL.
	BaseURL string
	// Client is the HTTP client used for requests. Defaults to a client with Timeout.
	Client *http.Client
	// Timeout bounds a single attempt when Client is not set.
	Timeout time.Duration
	// MaxAttempts is the number of attempts made before giving up.
	MaxAttempts uint
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration
}

type wordResponse struct {
	Word string `json:"word"`
}

func NewHTTPSource(opts NewHTTPSourceOptions) (*HTTPSource, error) {
	rawURL := opts.BaseURL
	if rawURL == "" {
		rawURL = DefaultBaseURL
	}
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse word source url: %v", err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported word source url scheme %q", baseURL.Scheme)
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	initialBackoff := opts.InitialBackoff
	if initialBackoff <= 0 {
		initialBackoff = DefaultInitialBackoff
	}

	return &HTTPSource{
		baseURL:        baseURL,
		client:         client,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}, nil
}

// FetchWord requests a word for difficulty, retrying transient failures.
func (s *HTTPSource) FetchWord(ctx context.Context, difficulty string) (string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialBackoff

	word, err := backoff.Retry(ctx, func() (string, error) {
		return s.fetchOnce(ctx, difficulty)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(s.maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn("Word request failed, retrying in %s: %v", next, err)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWordSource, err)
	}
	return word, nil
}

func (s *HTTPSource) fetchOnce(ctx context.Context, difficulty string) (string, error) {
	u := *s.baseURL
	q := u.Query()
	q.Set("difficulty", difficulty)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("failed to create word request: %v", err))
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting %s word from %s", difficulty, u.Host)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send word request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("word request failed: status: %s, body: %s", resp.Status, strings.TrimSpace(string(b)))
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return "", err
		}
		return "", backoff.Permanent(err)
	}

	body := &wordResponse{}
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}

	word := strings.ToLower(strings.TrimSpace(body.Word))
	if word == "" {
		return "", backoff.Permanent(fmt.Errorf("%w: empty word", ErrMalformedResponse))
	}

	return word, nil
}
