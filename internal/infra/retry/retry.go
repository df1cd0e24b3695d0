package retry

// Retry mechanism with exponential backoff and full jitter
// Retries Telegram API errors that are worth repeating (429 and 5xx)
// Honors retry_after from 429 responses
// Applies random delay (full jitter) to prevent thundering herd

import (
	"context"
	"errors"
	"math/rand"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Options struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// apiError extracts the Telegram API error from err, if any.
func apiError(err error) (tgbotapi.Error, bool) {
	var pe *tgbotapi.Error
	if errors.As(err, &pe) && pe != nil {
		return *pe, true
	}
	var ve tgbotapi.Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return tgbotapi.Error{}, false
}

func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if te, ok := apiError(err); ok {
		switch te.Code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}
	return false
}

// RetryAfter returns the wait requested by a 429 response, or 0.
func RetryAfter(err error) time.Duration {
	te, ok := apiError(err)
	if !ok || te.Code != 429 || te.RetryAfter <= 0 {
		return 0
	}
	return time.Duration(te.RetryAfter) * time.Second
}

func clamp(d, max time.Duration) time.Duration {
	if max > 0 && d > max {
		return max
	}
	return d
}

func FullJitterSleep(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if baseDelay <= 0 {
		return 0
	}
	maxForAttempt := baseDelay << attempt
	maxForAttempt = clamp(maxForAttempt, maxDelay)
	if maxForAttempt <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(maxForAttempt) + 1))
}

func Do(ctx context.Context, opts Options, fn func() error) error {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 300 * time.Millisecond
	}

	totalAttempts := 1 + opts.MaxRetries
	var lastErr error

	for attempt := 0; attempt < totalAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetryable(err) || attempt == totalAttempts-1 {
			return lastErr
		}

		sleep := FullJitterSleep(attempt, opts.BaseDelay, opts.MaxDelay)

		// Prefer retry_after for 429 if present.
		if ra := RetryAfter(err); ra > 0 {
			sleep = clamp(ra, opts.MaxDelay)
		}

		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	return lastErr
}
